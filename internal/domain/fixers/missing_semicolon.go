package fixers

import (
	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// MissingSemicolon inserts a statement terminator where error recovery
// placed a zero-width MISSING ";" token — the usual residue of a macro
// whose definition swallows the semicolon.
type MissingSemicolon struct{}

// NewMissingSemicolon returns the missing-terminator fixer.
func NewMissingSemicolon() *MissingSemicolon {
	return &MissingSemicolon{}
}

// Name identifies the fixer in CLI output and configuration.
func (f *MissingSemicolon) Name() string { return "missing-semicolon" }

// NodeType returns the CST node type this fixer repairs.
func (f *MissingSemicolon) NodeType() string { return ";" }

// CanFix claims missing ";" tokens.
func (f *MissingSemicolon) CanFix(_ cst.Tree, cursor cst.Cursor, _ []byte) bool {
	node := cursor.Node()

	return node != nil && node.IsMissing()
}

// Fix inserts a literal semicolon at the missing token's position. Missing
// nodes are zero-width, so the range is empty and the patch is a pure insert.
func (f *MissingSemicolon) Fix(_ cst.Tree, cursor cst.Cursor, _ []byte) m.CodeFix {
	node := cursor.Node()

	return m.CodeFix{
		Start:       node.StartByte(),
		End:         node.StartByte(),
		Replacement: []byte(";"),
	}
}
