package model

// Outcome classifies the terminal state of a per-file repair run.
type Outcome string

const (
	// OutcomeClean means the file parsed without error nodes and needed no repair.
	OutcomeClean Outcome = "clean"
	// OutcomeRepaired means one or more fixes were applied and the final tree is error-free.
	OutcomeRepaired Outcome = "repaired"
	// OutcomeUnrepairable means an error node remained that no registered fixer claimed.
	OutcomeUnrepairable Outcome = "unrepairable"
	// OutcomeBudgetExceeded means the repair iteration bound was hit before convergence.
	OutcomeBudgetExceeded Outcome = "budget-exceeded"
	// OutcomeLoadFailed means the file could not be read or parsed at all.
	OutcomeLoadFailed Outcome = "load-failed"
)

// AppliedFix records a single fix the driver applied, with the node type that
// triggered it and the iteration it happened on.
type AppliedFix struct {
	NodeType  string  `json:"node_type"`
	Iteration int     `json:"iteration"`
	Fix       CodeFix `json:"fix"`
}

// FileReport holds the analysis result for a single source file.
type FileReport struct {
	Source     Source       `json:"source"`
	Outcome    Outcome      `json:"outcome"`
	Iterations int          `json:"iterations"`
	Fixes      []AppliedFix `json:"fixes,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`

	// ErrOffset and ErrNodeType locate the first unrepaired error when the
	// outcome is unrepairable or budget-exceeded.
	ErrOffset   int    `json:"err_offset,omitempty"`
	ErrNodeType string `json:"err_node_type,omitempty"`

	// Decls is the number of top-level items the AST builder extracted.
	Decls int `json:"decls"`

	// Err carries the failure message for load-failed outcomes.
	Err string `json:"err,omitempty"`
}

// Failed reports whether the file ended in a non-success outcome.
func (r FileReport) Failed() bool {
	return r.Outcome != OutcomeClean && r.Outcome != OutcomeRepaired
}
