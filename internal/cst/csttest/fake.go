// Package csttest provides in-memory cst implementations with scripted
// shapes, so repair logic can be tested without a real grammar.
package csttest

import (
	"context"
	"fmt"

	"github.com/mole-works/mend/internal/cst"
)

// FakeNode is a hand-built parse node.
type FakeNode struct {
	Kind     string
	Start    int
	End      int
	Error    bool
	Missing  bool
	Children []*FakeNode

	parent *FakeNode
}

// Link wires parent pointers through the subtree rooted at n. Call it once
// on the root after building a shape.
func (n *FakeNode) Link() *FakeNode {
	for _, child := range n.Children {
		child.parent = n
		child.Link()
	}

	return n
}

func (n *FakeNode) Type() string    { return n.Kind }
func (n *FakeNode) StartByte() int  { return n.Start }
func (n *FakeNode) EndByte() int    { return n.End }
func (n *FakeNode) IsError() bool   { return n.Error }
func (n *FakeNode) IsMissing() bool { return n.Missing }

func (n *FakeNode) HasError() bool {
	if n.Error || n.Missing {
		return true
	}

	for _, child := range n.Children {
		if child.HasError() {
			return true
		}
	}

	return false
}

func (n *FakeNode) Parent() cst.Node {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

func (n *FakeNode) ChildCount() int { return len(n.Children) }

func (n *FakeNode) Child(i int) cst.Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

func (n *FakeNode) Text(src []byte) string {
	if n.Start < 0 || n.End > len(src) || n.Start > n.End {
		return ""
	}

	return string(src[n.Start:n.End])
}

// FakeTree wraps a root FakeNode.
type FakeTree struct {
	RootNode *FakeNode
	Closed   bool
}

// NewFakeTree links the shape and returns it as a tree.
func NewFakeTree(root *FakeNode) *FakeTree {
	return &FakeTree{RootNode: root.Link()}
}

func (t *FakeTree) Root() cst.Node   { return t.RootNode }
func (t *FakeTree) HasError() bool   { return t.RootNode.HasError() }
func (t *FakeTree) Close()           { t.Closed = true }
func (t *FakeTree) Walk() cst.Cursor { return &FakeCursor{current: t.RootNode} }

// FakeCursor navigates a FakeNode shape.
type FakeCursor struct {
	current *FakeNode
}

// NewFakeCursor returns a cursor positioned at node.
func NewFakeCursor(node *FakeNode) *FakeCursor {
	return &FakeCursor{current: node}
}

func (c *FakeCursor) Node() cst.Node {
	if c.current == nil {
		return nil
	}

	return c.current
}

func (c *FakeCursor) GoToFirstChild() bool {
	if c.current == nil || len(c.current.Children) == 0 {
		return false
	}

	c.current = c.current.Children[0]

	return true
}

func (c *FakeCursor) GoToNextSibling() bool {
	if c.current == nil || c.current.parent == nil {
		return false
	}

	siblings := c.current.parent.Children
	for i, sibling := range siblings {
		if sibling == c.current && i+1 < len(siblings) {
			c.current = siblings[i+1]
			return true
		}
	}

	return false
}

func (c *FakeCursor) GoToParent() bool {
	if c.current == nil || c.current.parent == nil {
		return false
	}

	c.current = c.current.parent

	return true
}

// ScriptedProvider returns pre-built trees in sequence: the first Parse or
// Reparse call returns Trees[0], the next Trees[1], and so on. When the
// script runs out the last tree is returned again, which models a repair
// that keeps producing the same shape.
type ScriptedProvider struct {
	Trees []cst.Tree
	Calls int
}

func (p *ScriptedProvider) Parse(_ context.Context, _ []byte) (cst.Tree, error) {
	return p.next()
}

func (p *ScriptedProvider) Reparse(_ context.Context, _ cst.Tree, _ []byte) (cst.Tree, error) {
	return p.next()
}

func (p *ScriptedProvider) next() (cst.Tree, error) {
	if len(p.Trees) == 0 {
		return nil, fmt.Errorf("scripted provider has no trees")
	}

	idx := p.Calls
	if idx >= len(p.Trees) {
		idx = len(p.Trees) - 1
	}

	p.Calls++

	return p.Trees[idx], nil
}
