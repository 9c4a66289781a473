// Package cst defines the concrete-syntax-tree contract the repair pipeline
// consumes, together with a tree-sitter backed implementation for C.
package cst

import "context"

// Node is an immutable view into a single parse node. Children are owned by
// the tree, not by the node; a Node must not be used after its tree is closed
// or after the backing buffer has been patched.
type Node interface {
	// Type returns the grammar node type tag (e.g. "declaration", "ERROR").
	Type() string
	// StartByte and EndByte delimit the half-open byte range [start, end).
	StartByte() int
	EndByte() int
	// IsError reports whether this node is an error node.
	IsError() bool
	// IsMissing reports whether this node was inserted by error recovery to
	// stand in for a token absent from the source.
	IsMissing() bool
	// HasError reports whether this node or any descendant is an error.
	HasError() bool
	Parent() Node
	ChildCount() int
	Child(i int) Node
	// Text returns the source bytes the node spans within src.
	Text(src []byte) string
}

// Cursor walks a tree. Navigation methods return false and leave the cursor
// in place when there is no node to move to.
type Cursor interface {
	// Node returns the node at the cursor, or nil when the cursor is empty.
	Node() Node
	GoToFirstChild() bool
	GoToNextSibling() bool
	GoToParent() bool
}

// Tree is one parse of one buffer. It is disposable: after the buffer is
// patched a fresh tree must be obtained before any further traversal.
type Tree interface {
	Root() Node
	// Walk returns a new cursor positioned at the root.
	Walk() Cursor
	// HasError reports whether any error node remains in the tree.
	HasError() bool
	// Close releases parser-owned resources. The tree must not be used after.
	Close()
}

// Provider turns byte buffers into trees. Implementations need not be safe
// for concurrent use; the workflow gives each worker its own provider.
type Provider interface {
	Parse(ctx context.Context, src []byte) (Tree, error)
	// Reparse produces a tree for src, given the tree parsed from the
	// previous version of the buffer. Implementations may reuse unaffected
	// subtrees or perform a full parse; callers must treat the result as a
	// fresh tree either way.
	Reparse(ctx context.Context, old Tree, src []byte) (Tree, error)
}
