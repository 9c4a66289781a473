package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mole-works/mend/internal/model"
)

func TestCodeFixEqual(t *testing.T) {
	tests := []struct {
		name  string
		a     m.CodeFix
		b     m.CodeFix
		equal bool
	}{
		{
			name:  "identical",
			a:     m.CodeFix{Start: 3, End: 7, Replacement: []byte(";")},
			b:     m.CodeFix{Start: 3, End: 7, Replacement: []byte(";")},
			equal: true,
		},
		{
			name:  "different start",
			a:     m.CodeFix{Start: 3, End: 7, Replacement: []byte(";")},
			b:     m.CodeFix{Start: 4, End: 7, Replacement: []byte(";")},
			equal: false,
		},
		{
			name:  "different end",
			a:     m.CodeFix{Start: 3, End: 7, Replacement: []byte(";")},
			b:     m.CodeFix{Start: 3, End: 8, Replacement: []byte(";")},
			equal: false,
		},
		{
			name:  "different replacement",
			a:     m.CodeFix{Start: 3, End: 7, Replacement: []byte(";")},
			b:     m.CodeFix{Start: 3, End: 7, Replacement: []byte("{}")},
			equal: false,
		},
		{
			name:  "nil and empty replacement are the same text",
			a:     m.CodeFix{Start: 0, End: 0, Replacement: nil},
			b:     m.CodeFix{Start: 0, End: 0, Replacement: []byte{}},
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.equal, tt.a.Equal(tt.b))
			require.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestCodeFixDelta(t *testing.T) {
	tests := []struct {
		name  string
		fix   m.CodeFix
		delta int
	}{
		{
			name:  "pure insert grows the buffer",
			fix:   m.CodeFix{Start: 5, End: 5, Replacement: []byte(";")},
			delta: 1,
		},
		{
			name:  "pure delete shrinks the buffer",
			fix:   m.CodeFix{Start: 2, End: 6, Replacement: nil},
			delta: -4,
		},
		{
			name:  "same-length replacement is neutral",
			fix:   m.CodeFix{Start: 0, End: 3, Replacement: []byte("int")},
			delta: 0,
		},
		{
			name:  "longer replacement",
			fix:   m.CodeFix{Start: 0, End: 13, Replacement: []byte("extern int bar_baz;\n")},
			delta: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.delta, tt.fix.Delta())
		})
	}
}
