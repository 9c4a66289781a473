package astbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mole-works/mend/internal/astbuild"
	"github.com/mole-works/mend/internal/cst/csttest"
)

// The shapes below mirror what the C grammar produces for the embedded
// source; offsets are byte positions into src.
//
//	#include <stdio.h>   [0,18)   system_lib_string [9,18)
//	int main() {}        [19,32)  function_declarator [23,29), identifier [23,27)
//	FOO(bar);            [33,42)  call_expression [33,41), identifier [33,36)
//	@                    [43,44)  ERROR
const builderSrc = "#include <stdio.h>\nint main() {}\nFOO(bar);\n@\n"

func builderTree() *csttest.FakeTree {
	return csttest.NewFakeTree(&csttest.FakeNode{
		Kind: "translation_unit",
		End:  len(builderSrc),
		Children: []*csttest.FakeNode{
			{
				Kind:  "preproc_include",
				Start: 0,
				End:   19,
				Children: []*csttest.FakeNode{
					{Kind: "#include", Start: 0, End: 8},
					{Kind: "system_lib_string", Start: 9, End: 18},
				},
			},
			{
				Kind:  "function_definition",
				Start: 19,
				End:   32,
				Children: []*csttest.FakeNode{
					{Kind: "primitive_type", Start: 19, End: 22},
					{
						Kind:  "function_declarator",
						Start: 23,
						End:   29,
						Children: []*csttest.FakeNode{
							{Kind: "identifier", Start: 23, End: 27},
							{Kind: "parameter_list", Start: 27, End: 29},
						},
					},
					{Kind: "compound_statement", Start: 30, End: 32},
				},
			},
			{
				Kind:  "expression_statement",
				Start: 33,
				End:   42,
				Children: []*csttest.FakeNode{
					{
						Kind:  "call_expression",
						Start: 33,
						End:   41,
						Children: []*csttest.FakeNode{
							{Kind: "identifier", Start: 33, End: 36},
							{Kind: "argument_list", Start: 36, End: 41},
						},
					},
					{Kind: ";", Start: 41, End: 42},
				},
			},
			{Kind: "comment", Start: 42, End: 42},
			{Kind: "ERROR", Start: 43, End: 44, Error: true},
		},
	})
}

func TestBuildExtractsTopLevelDecls(t *testing.T) {
	unit := astbuild.Build(builderTree(), []byte(builderSrc))

	require.Equal(t, astbuild.ByteRange{Start: 0, End: len(builderSrc)}, unit.Range)
	require.Len(t, unit.Decls, 4) // comment nodes are skipped

	require.Equal(t, astbuild.KindInclude, unit.Decls[0].Kind)
	require.Equal(t, "stdio.h", unit.Decls[0].Name)

	require.Equal(t, astbuild.KindFunction, unit.Decls[1].Kind)
	require.Equal(t, "main", unit.Decls[1].Name)
	require.Equal(t, astbuild.ByteRange{Start: 19, End: 32}, unit.Decls[1].Range)

	require.Equal(t, astbuild.KindStatement, unit.Decls[2].Kind)
	require.Equal(t, "FOO", unit.Decls[2].Name)

	require.Equal(t, astbuild.KindOther, unit.Decls[3].Kind)
	require.Equal(t, "ERROR", unit.Decls[3].Name)
}

func TestBuildFlagsSurvivingErrors(t *testing.T) {
	unit := astbuild.Build(builderTree(), []byte(builderSrc))

	require.Len(t, unit.Errors, 1)
	require.Equal(t, "ERROR", unit.Errors[0].NodeType)
	require.Equal(t, astbuild.ByteRange{Start: 43, End: 44}, unit.Errors[0].Range)
}

func TestBuildCleanTreeHasNoErrors(t *testing.T) {
	src := "int x = 1;\n"
	tree := csttest.NewFakeTree(&csttest.FakeNode{
		Kind: "translation_unit",
		End:  len(src),
		Children: []*csttest.FakeNode{
			{
				Kind:  "declaration",
				Start: 0,
				End:   10,
				Children: []*csttest.FakeNode{
					{Kind: "primitive_type", Start: 0, End: 3},
					{
						Kind:  "init_declarator",
						Start: 4,
						End:   9,
						Children: []*csttest.FakeNode{
							{Kind: "identifier", Start: 4, End: 5},
							{Kind: "number_literal", Start: 8, End: 9},
						},
					},
				},
			},
		},
	})

	unit := astbuild.Build(tree, []byte(src))
	require.Empty(t, unit.Errors)
	require.Len(t, unit.Decls, 1)
	require.Equal(t, astbuild.KindDeclaration, unit.Decls[0].Kind)
	require.Equal(t, "x", unit.Decls[0].Name)
}

func TestBuildDeclKinds(t *testing.T) {
	src := "typedef unsigned int uint;\n#define MAX 10\n#define SQ(x) ((x)*(x))\n"

	tree := csttest.NewFakeTree(&csttest.FakeNode{
		Kind: "translation_unit",
		End:  len(src),
		Children: []*csttest.FakeNode{
			{
				Kind:  "type_definition",
				Start: 0,
				End:   26,
				Children: []*csttest.FakeNode{
					{Kind: "typedef", Start: 0, End: 7},
					{Kind: "sized_type_specifier", Start: 8, End: 20},
					{Kind: "type_identifier", Start: 21, End: 25},
				},
			},
			{
				Kind:  "preproc_def",
				Start: 27,
				End:   42,
				Children: []*csttest.FakeNode{
					{Kind: "#define", Start: 27, End: 34},
					{Kind: "identifier", Start: 35, End: 38},
					{Kind: "preproc_arg", Start: 39, End: 41},
				},
			},
			{
				Kind:  "preproc_function_def",
				Start: 42,
				End:   65,
				Children: []*csttest.FakeNode{
					{Kind: "#define", Start: 42, End: 49},
					{Kind: "identifier", Start: 50, End: 52},
					{Kind: "preproc_params", Start: 52, End: 55},
					{Kind: "preproc_arg", Start: 56, End: 65},
				},
			},
		},
	})

	unit := astbuild.Build(tree, []byte(src))
	require.Len(t, unit.Decls, 3)

	require.Equal(t, astbuild.KindTypedef, unit.Decls[0].Kind)
	require.Equal(t, "uint", unit.Decls[0].Name)

	require.Equal(t, astbuild.KindMacro, unit.Decls[1].Kind)
	require.Equal(t, "MAX", unit.Decls[1].Name)

	require.Equal(t, astbuild.KindFunctionMacro, unit.Decls[2].Kind)
	require.Equal(t, "SQ", unit.Decls[2].Name)
}

func TestBuildPointerFunctionName(t *testing.T) {
	src := "char *dup(const char *s);\n"

	tree := csttest.NewFakeTree(&csttest.FakeNode{
		Kind: "translation_unit",
		End:  len(src),
		Children: []*csttest.FakeNode{
			{
				Kind:  "declaration",
				Start: 0,
				End:   25,
				Children: []*csttest.FakeNode{
					{Kind: "primitive_type", Start: 0, End: 4},
					{
						Kind:  "pointer_declarator",
						Start: 5,
						End:   24,
						Children: []*csttest.FakeNode{
							{Kind: "*", Start: 5, End: 6},
							{
								Kind:  "function_declarator",
								Start: 6,
								End:   24,
								Children: []*csttest.FakeNode{
									{Kind: "identifier", Start: 6, End: 9},
									{Kind: "parameter_list", Start: 9, End: 24},
								},
							},
						},
					},
				},
			},
		},
	})

	unit := astbuild.Build(tree, []byte(src))
	require.Len(t, unit.Decls, 1)
	require.Equal(t, astbuild.KindDeclaration, unit.Decls[0].Kind)
	require.Equal(t, "dup", unit.Decls[0].Name)
}
