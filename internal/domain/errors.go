package domain

import "fmt"

// RangeError reports a CodeFix whose byte range does not fit the buffer it
// was applied to. It signals a programming defect in a fixer and is never
// silently clamped.
type RangeError struct {
	Start  int
	End    int
	BufLen int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fix range [%d, %d) invalid for buffer of %d bytes", e.Start, e.End, e.BufLen)
}

// UnrepairableSyntaxError reports an error node no registered fixer claimed.
type UnrepairableSyntaxError struct {
	Offset   int
	NodeType string
}

func (e *UnrepairableSyntaxError) Error() string {
	return fmt.Sprintf("unrepairable syntax error: %s node at byte %d", e.NodeType, e.Offset)
}

// RepairBudgetExceededError reports that the iteration bound was hit before
// the tree became error-free, which usually means a fixer keeps producing
// an equivalent error.
type RepairBudgetExceededError struct {
	Budget   int
	Offset   int
	NodeType string
}

func (e *RepairBudgetExceededError) Error() string {
	return fmt.Sprintf("repair budget of %d iterations exhausted; %s node at byte %d still erroneous",
		e.Budget, e.NodeType, e.Offset)
}
