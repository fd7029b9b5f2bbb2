package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode selects how a command presents progress.
type OutputMode int

const (
	// ModeTUI renders an interactive bubbletea view.
	ModeTUI OutputMode = iota
	// ModePlain prints plain log lines without terminal control
	// sequences.
	ModePlain
	// ModeJSON suppresses progress output so structured results stay
	// machine readable.
	ModeJSON
)

// DetectMode picks an output mode for the given writer. The
// interactive view needs a character-device writer and a terminal that
// is not "dumb"; the noProgress and jsonOutput flags force the simpler
// modes.
func DetectMode(out io.Writer, noProgress, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if noProgress {
		return ModePlain
	}
	f, ok := out.(*os.File)
	if !ok {
		return ModePlain
	}
	info, err := f.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return ModePlain
	}
	// Windows consoles rarely set TERM; the character-device check above
	// already vouches for them.
	if runtime.GOOS != "windows" {
		if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}
