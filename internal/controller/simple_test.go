package controller

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "github.com/mole-works/mend/internal/model"
)

func newBufferedCommand() (*cobra.Command, *bytes.Buffer) {
	var buffer bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buffer)
	cmd.SetErr(&buffer)

	return cmd, &buffer
}

func TestSimpleUIRun(t *testing.T) {
	color.NoColor = true

	cmd, buffer := newBufferedCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(2))

	ui.FileStarted("a.c")
	ui.FileCompleted(m.FileReport{
		Source:  m.Source{Origin: "a.c"},
		Outcome: m.OutcomeClean,
	})
	ui.FileCompleted(m.FileReport{
		Source:     m.Source{Origin: "b.c"},
		Outcome:    m.OutcomeRepaired,
		Iterations: 1,
		Fixes:      []m.AppliedFix{{NodeType: "ERROR", Iteration: 1}},
	})

	require.NoError(t, ui.Summary([]m.FileReport{
		{Source: m.Source{Origin: "a.c"}, Outcome: m.OutcomeClean},
		{Source: m.Source{Origin: "b.c"}, Outcome: m.OutcomeRepaired},
	}))
	ui.Close()

	out := buffer.String()
	require.Contains(t, out, "Analyzing 2 file(s)")
	require.Contains(t, out, "[1/2] clean a.c (fixes: 0)")
	require.Contains(t, out, "[2/2] repaired b.c (fixes: 1)")
	require.Contains(t, out, "TOTAL FILES 2")
}

func TestSimpleUIEmptyRun(t *testing.T) {
	cmd, buffer := newBufferedCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(0))
	require.Contains(t, buffer.String(), "No C source files found")
}

func TestIsTTYRejectsBuffer(t *testing.T) {
	require.False(t, IsTTY(&bytes.Buffer{}))
}

func TestNewUIPicksSimpleWithoutTTY(t *testing.T) {
	cmd, _ := newBufferedCommand()

	_, ok := NewUI(cmd, false).(*SimpleUI)
	require.True(t, ok)
}
