package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/centy-io/centy-installer/internal/tui"
)

// stepLogger forwards installer progress lines to the TUI as phase
// changes, mirroring them into the log file.
type stepLogger struct {
	file *log.Logger
	send func(tea.Msg)
}

func (l stepLogger) Printf(format string, args ...any) {
	l.file.Printf(format, args...)
	l.send(tui.StepMsg{Text: fmt.Sprintf(format, args...)})
}

// echoLogger prints installer progress lines as plain output, mirroring
// them into the log file.
type echoLogger struct {
	file *log.Logger
	out  io.Writer
}

func (l echoLogger) Printf(format string, args ...any) {
	l.file.Printf(format, args...)
	fmt.Fprintf(l.out, format+"\n", args...)
}

// statusLogger feeds installer progress lines to a status spinner,
// mirroring them into the log file.
type statusLogger struct {
	file   *log.Logger
	update func(string)
}

func (l statusLogger) Printf(format string, args ...any) {
	l.file.Printf(format, args...)
	l.update(fmt.Sprintf(format, args...))
}
