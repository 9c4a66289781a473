// Package astbuild converts a repaired concrete syntax tree into the
// simplified semantic AST the analysis layers consume. It expects an
// error-free tree; when handed a best-effort tree after a stuck repair it
// still extracts what it can and flags every remaining error region.
package astbuild

import (
	"strings"

	"github.com/mole-works/mend/internal/cst"
)

// ByteRange is a half-open [Start, End) span into the final source buffer.
type ByteRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Kind classifies a top-level item of a translation unit.
type Kind string

const (
	KindFunction      Kind = "function"
	KindDeclaration   Kind = "declaration"
	KindTypedef       Kind = "typedef"
	KindMacro         Kind = "macro"
	KindFunctionMacro Kind = "function-macro"
	KindInclude       Kind = "include"
	KindPreproc       Kind = "preproc"
	KindStatement     Kind = "statement"
	KindOther         Kind = "other"
)

// Decl is one external item of the translation unit.
type Decl struct {
	Kind  Kind      `json:"kind"`
	Name  string    `json:"name,omitempty"`
	Range ByteRange `json:"range"`
}

// ErrorRegion flags an error or missing node that survived repair.
type ErrorRegion struct {
	NodeType string    `json:"node_type"`
	Range    ByteRange `json:"range"`
}

// TranslationUnit is the semantic view of one source file.
type TranslationUnit struct {
	Range  ByteRange     `json:"range"`
	Decls  []Decl        `json:"decls"`
	Errors []ErrorRegion `json:"errors,omitempty"`
}

// Build maps the tree's top-level nodes to Decls and collects every
// remaining error region. src must be the buffer the tree was parsed from.
func Build(tree cst.Tree, src []byte) *TranslationUnit {
	root := tree.Root()
	unit := &TranslationUnit{
		Range: nodeRange(root),
	}

	for i := 0; i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil || child.Type() == "comment" {
			continue
		}

		unit.Decls = append(unit.Decls, buildDecl(child, src))
	}

	collectErrors(root, &unit.Errors)

	return unit
}

func buildDecl(node cst.Node, src []byte) Decl {
	decl := Decl{Range: nodeRange(node)}

	switch node.Type() {
	case "function_definition":
		decl.Kind = KindFunction
		decl.Name = declaratorName(findChildByType(node, "function_declarator"), src)
	case "declaration":
		if fn := findDescendantByType(node, "function_declarator"); fn != nil {
			decl.Kind = KindDeclaration
			decl.Name = declaratorName(fn, src)
		} else {
			decl.Kind = KindDeclaration
			decl.Name = variableName(node, src)
		}
	case "type_definition":
		decl.Kind = KindTypedef
		decl.Name = typedefName(node, src)
	case "preproc_def":
		decl.Kind = KindMacro
		decl.Name = childText(node, "identifier", src)
	case "preproc_function_def":
		decl.Kind = KindFunctionMacro
		decl.Name = childText(node, "identifier", src)
	case "preproc_include":
		decl.Kind = KindInclude
		decl.Name = includeTarget(node, src)
	case "preproc_if", "preproc_ifdef", "preproc_call":
		decl.Kind = KindPreproc
		decl.Name = firstLine(node.Text(src))
	case "expression_statement":
		decl.Kind = KindStatement
		decl.Name = statementCallee(node, src)
	default:
		decl.Kind = KindOther
		decl.Name = node.Type()
	}

	return decl
}

// declaratorName digs the identifier out of a (possibly pointer- or
// array-wrapped) declarator, skipping parameter lists.
func declaratorName(node cst.Node, src []byte) string {
	if node == nil {
		return ""
	}

	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "identifier":
			return child.Text(src)
		case "pointer_declarator", "array_declarator", "function_declarator", "parenthesized_declarator":
			if name := declaratorName(child, src); name != "" {
				return name
			}
		case "parameter_list":
			continue
		}
	}

	return ""
}

func variableName(node cst.Node, src []byte) string {
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "identifier":
			return child.Text(src)
		case "init_declarator", "pointer_declarator", "array_declarator":
			if name := declaratorName(child, src); name != "" {
				return name
			}
		}
	}

	return ""
}

// typedefName takes the last type_identifier outside any nested specifier
// body; that is the name being introduced.
func typedefName(node cst.Node, src []byte) string {
	name := ""

	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Type() == "type_identifier" {
			name = child.Text(src)
		}
	}

	return name
}

func includeTarget(node cst.Node, src []byte) string {
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "string_literal", "system_lib_string":
			return strings.Trim(child.Text(src), `"<>`)
		}
	}

	return ""
}

func statementCallee(node cst.Node, src []byte) string {
	call := findDescendantByType(node, "call_expression")
	if call == nil {
		return ""
	}

	if ident := findChildByType(call, "identifier"); ident != nil {
		return ident.Text(src)
	}

	return ""
}

func collectErrors(node cst.Node, out *[]ErrorRegion) {
	if node == nil || !node.HasError() {
		return
	}

	if node.IsError() || node.IsMissing() {
		*out = append(*out, ErrorRegion{
			NodeType: node.Type(),
			Range:    nodeRange(node),
		})

		return
	}

	for i := 0; i < node.ChildCount(); i++ {
		collectErrors(node.Child(i), out)
	}
}

func findChildByType(node cst.Node, nodeType string) cst.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return child
		}
	}

	return nil
}

func findDescendantByType(node cst.Node, nodeType string) cst.Node {
	if node == nil {
		return nil
	}

	if node.Type() == nodeType {
		return node
	}

	for i := 0; i < node.ChildCount(); i++ {
		if found := findDescendantByType(node.Child(i), nodeType); found != nil {
			return found
		}
	}

	return nil
}

func childText(node cst.Node, nodeType string, src []byte) string {
	if child := findChildByType(node, nodeType); child != nil {
		return child.Text(src)
	}

	return ""
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

func nodeRange(node cst.Node) ByteRange {
	return ByteRange{Start: node.StartByte(), End: node.EndByte()}
}
