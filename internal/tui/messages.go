package tui

// StepMsg marks the start of a new install phase. The previous phase,
// if any, is shown as finished.
type StepMsg struct {
	Text string
}

// ProgressMsg reports download progress in bytes. Total is -1 when the
// server did not announce a content length.
type ProgressMsg struct {
	Received int64
	Total    int64
}

// WorkDoneMsg signals that background work finished and the program
// should exit after a final render.
type WorkDoneMsg struct{}

// ErrorMsg signals that background work failed. RunWithWork surfaces
// the error after the program exits.
type ErrorMsg struct {
	Err error
}
