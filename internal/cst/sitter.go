package cst

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

const errorNodeType = "ERROR"

// CProvider parses C source with tree-sitter. The underlying parser is
// reused across Parse calls but is not safe for concurrent use.
type CProvider struct {
	parser *sitter.Parser
}

// NewCProvider constructs a provider for the C grammar.
func NewCProvider() *CProvider {
	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())

	return &CProvider{parser: parser}
}

// Parse produces a fresh tree for src.
func (p *CProvider) Parse(ctx context.Context, src []byte) (Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}

	return &sitterTree{tree: tree}, nil
}

// Reparse performs a full parse of src. The previous tree only informs
// resource handling: nodes whose byte offsets predate the patch must not
// survive into the new tree, so subtree reuse is deliberately not attempted.
func (p *CProvider) Reparse(ctx context.Context, old Tree, src []byte) (Tree, error) {
	if st, ok := old.(*sitterTree); ok && st != nil {
		st.Close()
	}

	return p.Parse(ctx, src)
}

type sitterTree struct {
	tree *sitter.Tree
}

func (t *sitterTree) Root() Node {
	return wrapNode(t.tree.RootNode())
}

func (t *sitterTree) Walk() Cursor {
	return &sitterCursor{cursor: sitter.NewTreeCursor(t.tree.RootNode())}
}

func (t *sitterTree) HasError() bool {
	return t.tree.RootNode().HasError()
}

func (t *sitterTree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

type sitterNode struct {
	node *sitter.Node
}

func wrapNode(n *sitter.Node) Node {
	if n == nil {
		return nil
	}

	return &sitterNode{node: n}
}

func (n *sitterNode) Type() string    { return n.node.Type() }
func (n *sitterNode) StartByte() int  { return int(n.node.StartByte()) }
func (n *sitterNode) EndByte() int    { return int(n.node.EndByte()) }
func (n *sitterNode) IsError() bool   { return n.node.Type() == errorNodeType }
func (n *sitterNode) IsMissing() bool { return n.node.IsMissing() }
func (n *sitterNode) HasError() bool  { return n.node.HasError() }

func (n *sitterNode) Parent() Node {
	return wrapNode(n.node.Parent())
}

func (n *sitterNode) ChildCount() int {
	return int(n.node.ChildCount())
}

func (n *sitterNode) Child(i int) Node {
	return wrapNode(n.node.Child(i))
}

func (n *sitterNode) Text(src []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start < 0 || end > len(src) || start > end {
		return ""
	}

	return string(src[start:end])
}

type sitterCursor struct {
	cursor *sitter.TreeCursor
}

func (c *sitterCursor) Node() Node {
	return wrapNode(c.cursor.CurrentNode())
}

func (c *sitterCursor) GoToFirstChild() bool  { return c.cursor.GoToFirstChild() }
func (c *sitterCursor) GoToNextSibling() bool { return c.cursor.GoToNextSibling() }
func (c *sitterCursor) GoToParent() bool      { return c.cursor.GoToParent() }
