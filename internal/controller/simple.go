package controller

import (
	"fmt"
	"sync"

	m "github.com/mole-works/mend/internal/model"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain line output, suitable for pipes and CI.
type SimpleUI struct {
	cmd *cobra.Command

	mu    sync.Mutex
	total int
	done  int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the run.
func (s *SimpleUI) Start(total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = total
	s.done = 0

	if total == 0 {
		s.printf("No C source files found\n")
		return nil
	}

	s.printf("Analyzing %d file(s)\n", total)

	return nil
}

// FileStarted is a no-op for plain output; per-file lines are printed on
// completion to keep concurrent output readable.
func (s *SimpleUI) FileStarted(_ m.Path) {}

// FileCompleted prints one line per finished file.
func (s *SimpleUI) FileCompleted(report m.FileReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.done++
	s.printf("[%d/%d] %s %s (fixes: %d)\n",
		s.done, s.total, colorOutcome(report.Outcome), report.Source.Origin, len(report.Fixes))
}

// Summary renders the outcome table.
func (s *SimpleUI) Summary(reports []m.FileReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n")

	return renderSummary(s.cmd.OutOrStdout(), reports)
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
