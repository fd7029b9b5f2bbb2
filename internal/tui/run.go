package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunWithWork starts a bubbletea program for model and runs workFn in a
// goroutine. workFn reports through the send callback; RunWithWork
// blocks until the program exits and returns the error carried by the
// final model, if any.
func RunWithWork(out io.Writer, model DownloadModel, workFn func(send func(tea.Msg))) error {
	p := tea.NewProgram(model, tea.WithOutput(out))

	go func() {
		// Give the program a moment to start its event loop so the
		// first messages are not dropped.
		time.Sleep(50 * time.Millisecond)

		workFn(p.Send)
		p.Send(WorkDoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(DownloadModel); ok {
		return m.Err()
	}
	return nil
}
