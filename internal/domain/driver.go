package domain

import (
	"context"
	"fmt"

	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// DefaultRepairBudget bounds the number of fix/reparse cycles per file. The
// bound is a safety valve against fixers whose replacement reintroduces an
// equivalent error, not a correctness argument.
const DefaultRepairBudget = 32

// Driver runs the repair fixpoint loop: scan the tree for the first error
// node, look up a fixer, patch the buffer, reparse, and repeat until the
// tree is error-free or no further progress is possible.
type Driver struct {
	provider cst.Provider
	registry *Registry
	budget   int
}

// NewDriver constructs a driver. A non-positive budget selects
// DefaultRepairBudget.
func NewDriver(provider cst.Provider, registry *Registry, budget int) *Driver {
	if budget <= 0 {
		budget = DefaultRepairBudget
	}

	return &Driver{
		provider: provider,
		registry: registry,
		budget:   budget,
	}
}

// RepairResult carries the terminal state of one repair run. Tree and Source
// are always populated after a successful initial parse, even when the run
// ends stuck, so the AST builder can do a best-effort conversion; remaining
// error nodes stay flagged in the tree.
type RepairResult struct {
	Tree       cst.Tree
	Source     []byte
	Iterations int
	Fixes      []m.AppliedFix
	Warnings   []string
}

// Repair drives the Scanning/Fixing/Reparsing loop over src.
//
// A nil error means the final tree has no error nodes. Stuck outcomes are
// reported as *UnrepairableSyntaxError (no fixer claims the error node) or
// *RepairBudgetExceededError (iteration bound hit); a defective fix range
// surfaces as *RangeError. All of them come back as values, never panics,
// so one file's failure cannot abort sibling analyses.
func (d *Driver) Repair(ctx context.Context, src []byte) (RepairResult, error) {
	res := RepairResult{Source: src}

	tree, err := d.provider.Parse(ctx, src)
	if err != nil {
		return res, fmt.Errorf("initial parse: %w", err)
	}

	res.Tree = tree

	for {
		// Scanning
		cursor, found := firstError(res.Tree)
		if !found {
			return res, nil
		}

		node := cursor.Node()
		if res.Iterations >= d.budget {
			return res, &RepairBudgetExceededError{
				Budget:   d.budget,
				Offset:   node.StartByte(),
				NodeType: node.Type(),
			}
		}

		// Fixing
		fixer, warnings := d.registry.Lookup(res.Tree, cursor, res.Source)
		res.Warnings = append(res.Warnings, warnings...)

		if fixer == nil {
			return res, &UnrepairableSyntaxError{
				Offset:   node.StartByte(),
				NodeType: node.Type(),
			}
		}

		fix := fixer.Fix(res.Tree, cursor, res.Source)

		patched, _, err := ApplyFix(res.Source, fix)
		if err != nil {
			return res, err
		}

		// Reparsing: the old tree and every cursor into it are invalid the
		// moment the buffer changes, so a fresh parse is obtained before the
		// next error lookup.
		newTree, err := d.provider.Reparse(ctx, res.Tree, patched)
		if err != nil {
			return res, fmt.Errorf("reparse after fix: %w", err)
		}

		res.Iterations++
		res.Fixes = append(res.Fixes, m.AppliedFix{
			NodeType:  node.Type(),
			Iteration: res.Iterations,
			Fix:       fix,
		})
		res.Source = patched
		res.Tree = newTree
	}
}

// firstError walks the tree pre-order, depth-first, and returns a cursor
// positioned at the first error or missing node. Subtrees without errors
// are skipped wholesale.
func firstError(tree cst.Tree) (cst.Cursor, bool) {
	cursor := tree.Walk()

	root := cursor.Node()
	if root == nil || !root.HasError() {
		return nil, false
	}

	for {
		node := cursor.Node()
		if node.IsError() || node.IsMissing() {
			return cursor, true
		}

		if node.HasError() && cursor.GoToFirstChild() {
			continue
		}

		for {
			if cursor.GoToNextSibling() {
				break
			}

			if !cursor.GoToParent() {
				return nil, false
			}
		}
	}
}
