// Package model defines the data structures for C source repair.
package model

import "bytes"

// CodeFix describes a single atomic byte-range substitution proposed by a
// fixer. Start is inclusive, End exclusive, both relative to the buffer the
// fix was derived from. A CodeFix is immutable once constructed; applying it
// is the buffer patcher's job.
type CodeFix struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Replacement []byte `json:"replacement"`
}

// Equal reports whether two fixes describe the same substitution.
func (f CodeFix) Equal(other CodeFix) bool {
	return f.Start == other.Start &&
		f.End == other.End &&
		bytes.Equal(f.Replacement, other.Replacement)
}

// Delta returns the signed length change the fix causes when applied.
func (f CodeFix) Delta() int {
	return len(f.Replacement) - (f.End - f.Start)
}
