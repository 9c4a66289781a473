package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mole-works/mend/internal/model"
)

// TUI implements UI with a Bubble Tea progress display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start(total int) error {
	model := newProgressModel(total)

	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
		}
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// FileStarted forwards the event into the running program.
func (t *TUI) FileStarted(path m.Path) {
	if t.program != nil {
		t.program.Send(fileStartedMsg{path: path})
	}
}

// FileCompleted forwards the event into the running program.
func (t *TUI) FileCompleted(report m.FileReport) {
	if t.program != nil {
		t.program.Send(fileCompletedMsg{report: report})
	}
}

// Summary stops the progress display and renders the final table.
func (t *TUI) Summary(reports []m.FileReport) error {
	t.stop()

	_, _ = fmt.Fprintln(t.output)

	return renderSummary(t.output, reports)
}

// Close stops the progress program if it is still running.
func (t *TUI) Close() {
	t.stop()
}

func (t *TUI) stop() {
	if t.program == nil {
		return
	}

	t.program.Send(runDoneMsg{})
	<-t.done
	t.program = nil
}
