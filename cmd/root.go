// Package cmd provides the root command and CLI setup for mend.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mole-works/mend/internal/adapter"
	"github.com/mole-works/mend/internal/controller"
	"github.com/mole-works/mend/internal/cst"
	"github.com/mole-works/mend/internal/domain"
	"github.com/mole-works/mend/internal/domain/fixers"
	m "github.com/mole-works/mend/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var registry *domain.Registry

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	registry = domain.NewRegistry()
}

var parallelFlag int
var budgetFlag int
var excludeFlags []string
var reportsFlag string
var configFlag string
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mend [paths...]",
		Short: "Error-tolerant C source analysis",
		Long: `Mend parses un-preprocessed C source into an analyzable AST. Macro
invocations routinely produce token sequences that break the C grammar, so
mend repairs the parse instead of preprocessing: it locates error regions in
the syntax tree, applies pattern-specific rewrites, and re-parses until the
tree is clean or no repair applies.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a.c ./lib    analyze a file and a directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fixers.RegisterDefaults(registry, cfg.DisabledFixers...)

			workflow := newWorkflow(cmd, plainFlag)

			_, err = workflow.Analyze(cmd.Context(), analyzeArgs(cmd, cfg, args))

			return err
		},
	}

	addRunFlags(cmd)

	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for file analysis")
	cmd.Flags().IntVarP(&budgetFlag, "budget", "b", 0, "max repair iterations per file (0 = default)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&reportsFlag, "reports", "r", ".mend-reports", "directory to store analysis reports")
	cmd.Flags().StringVarP(&configFlag, "config", "c", adapter.DefaultConfigFile, "path to TOML config file")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "disable the interactive progress display")
}

// newWorkflow wires a workflow for one run. The UI is picked here so the
// --plain flag can override TTY detection.
func newWorkflow(cmd *cobra.Command, plain bool) domain.Workflow {
	ui := controller.NewUI(cmd, !plain && controller.IsTTY(os.Stdout))

	return domain.NewWorkflow(fsAdapter, reportStore, ui, registry, func() cst.Provider {
		return cst.NewCProvider()
	})
}

func loadConfig() (adapter.Config, error) {
	return adapter.LoadConfig(configFlag)
}

// analyzeArgs merges flags over config file values: an explicitly set flag
// wins, otherwise a non-zero config value applies.
func analyzeArgs(cmd *cobra.Command, cfg adapter.Config, args []string) domain.AnalyzeArgs {
	parallel := parallelFlag
	if !cmd.Flags().Changed("parallel") && cfg.Parallel > 0 {
		parallel = cfg.Parallel
	}

	budget := budgetFlag
	if !cmd.Flags().Changed("budget") && cfg.MaxRepairIterations > 0 {
		budget = cfg.MaxRepairIterations
	}

	reports := reportsFlag
	if !cmd.Flags().Changed("reports") && cfg.Reports != "" {
		reports = cfg.Reports
	}

	return domain.AnalyzeArgs{
		Paths:   parsePaths(args),
		Exclude: append(append([]string{}, cfg.Exclude...), excludeFlags...),
		Threads: parallel,
		Budget:  budget,
		Reports: m.Path(reports),
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		args = []string{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
