// Package domain contains the core parse-and-repair workflow and logic.
package domain

import (
	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// Fixer is a single repair strategy bound to one CST node type.
//
// CanFix must be a pure predicate: it inspects the node at the cursor and
// its structural context (parent and sibling shape, surrounding token text)
// and must not mutate the tree or the buffer. Fix is only called after
// CanFix returned true for the same cursor position; it returns a CodeFix
// whose range covers at least the erroneous node and whose replacement is
// well-formed C for the grammatical slot. Actual mutation is performed by
// the buffer patcher, never by the fixer.
type Fixer interface {
	NodeType() string
	CanFix(tree cst.Tree, cursor cst.Cursor, src []byte) bool
	Fix(tree cst.Tree, cursor cst.Cursor, src []byte) m.CodeFix
}
