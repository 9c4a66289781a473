package domain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mole-works/mend/internal/adapter"
	"github.com/mole-works/mend/internal/astbuild"
	"github.com/mole-works/mend/internal/controller"
	"github.com/mole-works/mend/internal/cst"
	m "github.com/mole-works/mend/internal/model"
)

// ProviderFactory yields a fresh CST provider. Providers are not safe for
// concurrent use, so every worker gets its own.
type ProviderFactory func() cst.Provider

// AnalyzeArgs parameterizes a multi-file analysis run.
type AnalyzeArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	// Budget bounds repair iterations per file; non-positive selects the
	// driver default.
	Budget int
	// Reports, when set, is where the run's reports are persisted.
	Reports m.Path
}

// Workflow defines the analysis operations exposed to the CLI.
type Workflow interface {
	Sources(paths []m.Path, exclude []string) ([]m.Source, error)
	Analyze(ctx context.Context, args AnalyzeArgs) ([]m.FileReport, error)
	View(reports m.Path) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	store       adapter.ReportStore
	ui          controller.UI
	registry    *Registry
	newProvider ProviderFactory
}

// NewWorkflow creates a Workflow. The registry must be fully populated
// before Analyze is called: it is shared read-only across workers.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	registry *Registry,
	newProvider ProviderFactory,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		store:       store,
		ui:          ui,
		registry:    registry,
		newProvider: newProvider,
	}
}

// Sources scans the given roots for C source files.
func (w *workflow) Sources(paths []m.Path, exclude []string) ([]m.Source, error) {
	return w.fsAdapter.Get(paths, exclude)
}

// Analyze repairs and analyzes every discovered file. Files are independent:
// each worker owns its buffer, tree and provider, and a failed file becomes
// a failed report rather than aborting its siblings.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) ([]m.FileReport, error) {
	sources, err := w.Sources(args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(len(sources)); err != nil {
		return nil, fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports := make([]m.FileReport, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			w.ui.FileStarted(source.Origin)

			reports[i] = w.analyzeOne(ctx, source, args.Budget)

			w.ui.FileCompleted(reports[i])

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if args.Reports != "" {
		if err := w.store.SaveReports(args.Reports, reports); err != nil {
			return nil, err
		}
	}

	if err := w.ui.Summary(reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// View renders a previously stored report set.
func (w *workflow) View(reports m.Path) error {
	stored, err := w.store.LoadReports(reports)
	if err != nil {
		return err
	}

	return w.ui.Summary(stored)
}

// analyzeOne runs the repair loop and AST build for a single file. All
// terminal repair outcomes map onto the report; only load problems are
// recorded as plain error text.
func (w *workflow) analyzeOne(ctx context.Context, source m.Source, budget int) m.FileReport {
	report := m.FileReport{Source: source}

	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		report.Outcome = m.OutcomeLoadFailed
		report.Err = err.Error()

		return report
	}

	driver := NewDriver(w.newProvider(), w.registry, budget)

	res, repairErr := driver.Repair(ctx, content)
	report.Iterations = res.Iterations
	report.Fixes = res.Fixes
	report.Warnings = res.Warnings

	if res.Tree != nil {
		defer res.Tree.Close()

		unit := astbuild.Build(res.Tree, res.Source)
		report.Decls = len(unit.Decls)
	}

	report.Outcome, report.ErrOffset, report.ErrNodeType = classify(repairErr, res.Iterations)
	if report.Outcome == m.OutcomeLoadFailed && repairErr != nil {
		report.Err = repairErr.Error()
	}

	return report
}

func classify(err error, iterations int) (m.Outcome, int, string) {
	if err == nil {
		if iterations == 0 {
			return m.OutcomeClean, 0, ""
		}

		return m.OutcomeRepaired, 0, ""
	}

	var unrepairable *UnrepairableSyntaxError
	if errors.As(err, &unrepairable) {
		return m.OutcomeUnrepairable, unrepairable.Offset, unrepairable.NodeType
	}

	var budget *RepairBudgetExceededError
	if errors.As(err, &budget) {
		return m.OutcomeBudgetExceeded, budget.Offset, budget.NodeType
	}

	return m.OutcomeLoadFailed, 0, ""
}
