package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DownloadModel is the bubbletea model behind the install and run
// commands. It shows finished phases with a check mark, the active
// phase with a spinner, and a byte progress bar while an archive
// downloads.
type DownloadModel struct {
	title string

	spinner spinner.Model
	bar     progress.Model

	steps    []string
	current  string
	received int64
	total    int64

	done bool
	err  error
}

// NewDownloadModel creates a model titled after the work being run,
// e.g. "install centy-tui".
func NewDownloadModel(title string) DownloadModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 36

	return DownloadModel{
		title:   title,
		spinner: sp,
		bar:     bar,
		total:   -1,
	}
}

// Init implements tea.Model.
func (m DownloadModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StepMsg:
		if m.current != "" {
			m.steps = append(m.steps, m.current)
		}
		m.current = msg.Text
		m.received = 0
		m.total = -1
		return m, nil

	case ProgressMsg:
		m.received = msg.Received
		m.total = msg.Total
		return m, nil

	case WorkDoneMsg:
		if m.done {
			return m, nil
		}
		if m.current != "" {
			m.steps = append(m.steps, m.current)
			m.current = ""
		}
		m.done = true
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m DownloadModel) View() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(m.title))
	sb.WriteString("\n")

	for _, step := range m.steps {
		sb.WriteString(fmt.Sprintf("  %s %s\n", doneMarkStyle.Render("✓"), step))
	}

	if m.err != nil {
		sb.WriteString(fmt.Sprintf("  %s %v\n", errorMarkStyle.Render("✗"), m.err))
		return sb.String()
	}
	if m.current == "" {
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), m.current))
	if m.total > 0 {
		pct := float64(m.received) / float64(m.total)
		counts := fmt.Sprintf("%s / %s", FormatBytes(m.received), FormatBytes(m.total))
		sb.WriteString(fmt.Sprintf("    %s %s\n", m.bar.ViewAs(pct), faintStyle.Render(counts)))
	} else if m.received > 0 {
		sb.WriteString(fmt.Sprintf("    %s\n", faintStyle.Render(FormatBytes(m.received))))
	}
	return sb.String()
}

// Done reports whether the model finished, successfully or not.
func (m DownloadModel) Done() bool {
	return m.done
}

// Err returns the error delivered by an ErrorMsg, if any.
func (m DownloadModel) Err() error {
	return m.err
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
