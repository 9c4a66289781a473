package domain

import (
	m "github.com/mole-works/mend/internal/model"
)

// ApplyFix splices fix into buf and returns the patched buffer together with
// the signed length delta. The input buffer is never modified; a RangeError
// is returned when the fix range does not satisfy 0 <= Start <= End <= len(buf).
func ApplyFix(buf []byte, fix m.CodeFix) ([]byte, int, error) {
	if fix.Start < 0 || fix.Start > fix.End || fix.End > len(buf) {
		return nil, 0, &RangeError{Start: fix.Start, End: fix.End, BufLen: len(buf)}
	}

	patched := make([]byte, 0, len(buf)+fix.Delta())
	patched = append(patched, buf[:fix.Start]...)
	patched = append(patched, fix.Replacement...)
	patched = append(patched, buf[fix.End:]...)

	return patched, fix.Delta(), nil
}
