package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shiroink/internal/report"
)

type Model struct {
	updates   <-chan report.ProgressUpdate
	started   time.Time
	width     int
	total     int
	processed int
	errors    int
	spreads   int
	bundles   int
	lastLine  string
	quitting  bool
}

type doneMsg struct{}

type updateMsg report.ProgressUpdate

func NewModel(updates <-chan report.ProgressUpdate) Model {
	return Model{updates: updates, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total += msg.TotalDelta
		m.processed += msg.ProcessedDelta
		m.errors += msg.ErrorDelta
		m.spreads += msg.SpreadsDelta
		m.bundles += msg.BundlesDelta
		if msg.Message != "" && msg.Level >= report.LevelWarning {
			m.lastLine = msg.Message
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.processed) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	bar := renderBar(barWidth, ratio)
	elapsed := time.Since(m.started).Round(time.Millisecond)

	lines := []string{
		titleStyle.Render("shiroink 🖋️"),
		labelStyle.Render(fmt.Sprintf("Pages: %d/%d", m.processed, m.total)) + errStyle(m.errors).Render(fmt.Sprintf("  errors:%d", m.errors)),
		labelStyle.Render(fmt.Sprintf("Spreads split: %d", m.spreads)),
		labelStyle.Render(fmt.Sprintf("Bundles written: %d", m.bundles)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(bar),
	}
	if m.lastLine != "" {
		lines = append(lines, warnStyle.Render(m.lastLine))
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan report.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// errStyle stays muted until the first error comes in.
func errStyle(errors int) lipgloss.Style {
	if errors > 0 {
		return lipgloss.NewStyle().Foreground(ColorErr)
	}
	return dimStyle
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
