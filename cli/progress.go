// cli/progress.go

// Package cli renders benchmark suite progress in the terminal: a
// spinner while a series runs, a check line once it finishes, and a
// styled metrics summary at the end.
package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/benchplot/internal/suite"
)

// seriesStartMsg is sent when the next benchmark series starts running.
type seriesStartMsg string

// suiteDoneMsg is sent when the whole suite has finished.
type suiteDoneMsg struct {
	summaries []suite.Series
	err       error
}

// progressModel is the Bubble Tea model tracking suite execution.
type progressModel struct {
	spinner   spinner.Model
	current   string        // series currently running, "" before the first
	done      []string      // series that already finished
	summaries []suite.Series
	err       error
	finished  bool
	start     time.Time
}

func newProgressModel() progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return progressModel{spinner: s, start: time.Now()}
}

// Init starts the spinner animation.
func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles progress messages from the suite goroutine and the
// spinner ticks.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.err = fmt.Errorf("interrupted")
			m.finished = true
			return m, tea.Quit
		}

	case seriesStartMsg:
		if m.current != "" {
			m.done = append(m.done, m.current)
		}
		m.current = string(msg)
		return m, nil

	case suiteDoneMsg:
		if m.current != "" {
			m.done = append(m.done, m.current)
			m.current = ""
		}
		m.summaries = msg.summaries
		m.err = msg.err
		m.finished = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders one line per series plus the running spinner.
func (m progressModel) View() string {
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	out := ""
	for _, name := range m.done {
		out += doneStyle.Render("  ✓ "+name) + "\n"
	}
	if m.current != "" {
		timer := fmt.Sprintf("%.1f", time.Since(m.start).Seconds())
		out += fmt.Sprintf("  %s %s... %ss\n", m.spinner.View(), m.current, timer)
	}
	if !m.finished && m.current == "" {
		out += fmt.Sprintf("  %s warming up...\n", m.spinner.View())
	}
	return out
}

// RunSuite executes the suite behind a progress display and returns the
// per-series summaries.
func RunSuite(cfg suite.Config) ([]suite.Series, error) {
	p := tea.NewProgram(newProgressModel())

	go func() {
		summaries, err := suite.Run(cfg, func(name string) {
			p.Send(seriesStartMsg(name))
		})
		p.Send(suiteDoneMsg{summaries: summaries, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(progressModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.summaries, nil
}

// RunSuitePlain executes the suite without the TUI, printing one line
// per series. Useful for CI logs and non-interactive terminals.
func RunSuitePlain(cfg suite.Config) ([]suite.Series, error) {
	return suite.Run(cfg, func(name string) {
		fmt.Printf("running %s...\n", name)
	})
}

// FormatSummary formats one series summary into a faint metrics line.
func FormatSummary(s suite.Series) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return style.Render(fmt.Sprintf(
		"  >>> [%s] [Median: %s] [Error: %.2f%%] [Epochs: %d]",
		s.Name,
		formatSecs(s.MedianSecs),
		s.ErrPct,
		s.Epochs,
	))
}

// formatSecs renders a per-iteration elapsed time with a readable unit.
func formatSecs(secs float64) string {
	switch {
	case secs <= 0:
		return "0s"
	case secs < 1e-6:
		return fmt.Sprintf("%.1fns", secs*1e9)
	case secs < 1e-3:
		return fmt.Sprintf("%.1fµs", secs*1e6)
	case secs < 1:
		return fmt.Sprintf("%.1fms", secs*1e3)
	default:
		return fmt.Sprintf("%.2fs", secs)
	}
}
