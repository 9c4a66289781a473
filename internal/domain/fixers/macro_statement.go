package fixers

import (
	"regexp"
	"strings"

	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// bareCallRe matches a single `NAME(args)` invocation with no terminator.
// Nested parentheses disqualify the region; those shapes need a more
// specific fixer.
var bareCallRe = regexp.MustCompile(`^\s*[A-Za-z_]\w*\s*\([^()]*\)\s*$`)

// MacroCallStatement repairs a bare top-level macro invocation by appending
// the missing statement terminator. tree-sitter's C grammar accepts
// expression statements at file scope precisely to tolerate such macros, so
// the terminated form parses cleanly.
type MacroCallStatement struct{}

// NewMacroCallStatement returns the bare-invocation fixer.
func NewMacroCallStatement() *MacroCallStatement {
	return &MacroCallStatement{}
}

// Name identifies the fixer in CLI output and configuration.
func (f *MacroCallStatement) Name() string { return "macro-call-statement" }

// NodeType returns the CST node type this fixer repairs.
func (f *MacroCallStatement) NodeType() string { return errorNodeType }

// CanFix claims top-level error nodes shaped like a lone macro invocation.
func (f *MacroCallStatement) CanFix(_ cst.Tree, cursor cst.Cursor, src []byte) bool {
	node := cursor.Node()
	if node == nil || !node.IsError() || !atTopLevel(node) {
		return false
	}

	return bareCallRe.MatchString(node.Text(src))
}

// Fix keeps the invocation text and appends a semicolon.
func (f *MacroCallStatement) Fix(_ cst.Tree, cursor cst.Cursor, src []byte) m.CodeFix {
	node := cursor.Node()
	call := strings.TrimSpace(node.Text(src))

	return m.CodeFix{
		Start:       node.StartByte(),
		End:         node.EndByte(),
		Replacement: []byte(call + ";\n"),
	}
}
