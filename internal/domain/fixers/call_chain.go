// Package fixers contains the built-in repair strategies for CST shapes
// that macro use produces in un-preprocessed C.
package fixers

import (
	"regexp"

	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// errorNodeType is the type tag tree-sitter gives unrecognized regions.
const errorNodeType = "ERROR"

// callChainRe matches `NAME(arg)(arg)` — a macro invocation applied to a
// second argument list, which no C grammar rule covers at file scope.
var callChainRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*\(\s*([A-Za-z_]\w*)\s*\)\s*\(\s*([A-Za-z_]\w*)\s*\)\s*;?\s*$`)

// CallChainDecl rewrites a top-level macro call-chain into an explicit
// extern declaration so the region occupies a valid declaration slot. The
// synthesized name joins the two argument identifiers, preserving them for
// later analysis; what the macro would actually expand to is never resolved.
type CallChainDecl struct{}

// NewCallChainDecl returns the call-chain fixer.
func NewCallChainDecl() *CallChainDecl {
	return &CallChainDecl{}
}

// Name identifies the fixer in CLI output and configuration.
func (f *CallChainDecl) Name() string { return "call-chain-declaration" }

// NodeType returns the CST node type this fixer repairs.
func (f *CallChainDecl) NodeType() string { return errorNodeType }

// CanFix claims top-level error nodes whose text has the call-chain shape
// with plain identifiers in both argument positions.
func (f *CallChainDecl) CanFix(_ cst.Tree, cursor cst.Cursor, src []byte) bool {
	node := cursor.Node()
	if node == nil || !node.IsError() || !atTopLevel(node) {
		return false
	}

	return callChainRe.MatchString(node.Text(src))
}

// Fix replaces the whole error region with an extern int declaration named
// after the two captured identifiers.
func (f *CallChainDecl) Fix(_ cst.Tree, cursor cst.Cursor, src []byte) m.CodeFix {
	node := cursor.Node()
	groups := callChainRe.FindStringSubmatch(node.Text(src))

	replacement := "extern int " + groups[2] + "_" + groups[3] + ";\n"

	return m.CodeFix{
		Start:       node.StartByte(),
		End:         node.EndByte(),
		Replacement: []byte(replacement),
	}
}

// atTopLevel reports whether node sits directly under the translation unit.
func atTopLevel(node cst.Node) bool {
	parent := node.Parent()

	return parent == nil || parent.Type() == "translation_unit"
}
