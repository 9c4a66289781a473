package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mole-works/mend/internal/model"
)

// maxRecentLines caps the completion tail kept on screen.
const maxRecentLines = 8

type fileStartedMsg struct {
	path m.Path
}

type fileCompletedMsg struct {
	report m.FileReport
}

type runDoneMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pathStyle    = lipgloss.NewStyle().Faint(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// progressModel is the Bubble Tea model for live analysis progress.
type progressModel struct {
	spin      spinner.Model
	total     int
	completed int
	failed    int
	current   string
	recent    []string
	width     int
	quitting  bool
}

func newProgressModel(total int) progressModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return progressModel{
		spin:  spin,
		total: total,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spin.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		return pm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			pm.quitting = true
			return pm, tea.Quit
		}

		return pm, nil

	case fileStartedMsg:
		pm.current = string(msg.path)
		return pm, nil

	case fileCompletedMsg:
		pm.completed++
		if msg.report.Failed() {
			pm.failed++
		}

		pm.recent = append(pm.recent, completionLine(msg.report))
		if len(pm.recent) > maxRecentLines {
			pm.recent = pm.recent[len(pm.recent)-maxRecentLines:]
		}

		return pm, nil

	case runDoneMsg:
		pm.quitting = true
		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spin, cmd = pm.spin.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pm.spin.View())
	b.WriteString(titleStyle.Render("Analyzing "))
	b.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", pm.completed, pm.total)))

	if pm.failed > 0 {
		b.WriteString(failStyle.Render(fmt.Sprintf("  %d failed", pm.failed)))
	}

	b.WriteString("\n")

	if pm.current != "" && pm.completed < pm.total {
		b.WriteString(currentStyle.Render("  → " + pm.current))
		b.WriteString("\n")
	}

	for _, line := range pm.recent {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func completionLine(report m.FileReport) string {
	mark := okStyle.Render("✓")
	if report.Failed() {
		mark = failStyle.Render("✗")
	}

	detail := ""
	if count := len(report.Fixes); count > 0 {
		detail = fmt.Sprintf(" (%d fix(es))", count)
	}

	return "  " + mark + " " + pathStyle.Render(string(report.Source.Origin)) + detail
}
