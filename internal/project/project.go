package project

import (
	"fmt"
	"runtime"
	"strings"
)

// Project identifies one of the installable companion tools.
type Project int

const (
	// Daemon is the background service binary.
	Daemon Project = iota
	// TUI is the interactive terminal client.
	TUI
	// DaemonTUI bundles the daemon with an embedded TUI.
	DaemonTUI
	// TUIManager supervises running TUI instances.
	TUIManager
)

// NotFoundError reports an alias that matches no known project.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("unknown project: %s", e.Name)
}

type projectInfo struct {
	slug    string
	display string
	binary  string
	repo    string
	aliases []string
}

var infos = [...]projectInfo{
	Daemon: {
		slug:    "daemon",
		display: "Centy Daemon",
		binary:  "centy-daemon",
		repo:    "centy-daemon",
		aliases: []string{"daemon", "centy-daemon", "centydaemon"},
	},
	TUI: {
		slug:    "tui",
		display: "Centy TUI",
		binary:  "centy-tui",
		repo:    "centy-tui",
		aliases: []string{"tui", "centy-tui", "centytui"},
	},
	DaemonTUI: {
		slug:    "daemon-tui",
		display: "Centy Daemon TUI",
		binary:  "centy-daemon-tui",
		repo:    "centy-daemon-tui",
		aliases: []string{"daemon-tui", "centy-daemon-tui", "centydaemontui"},
	},
	TUIManager: {
		slug:    "tui-manager",
		display: "TUI Manager",
		binary:  "tui-manager",
		repo:    "tui-manager",
		aliases: []string{"tui-manager", "tuimanager", "manager"},
	},
}

// All returns every known project in declaration order.
func All() []Project {
	return []Project{Daemon, TUI, DaemonTUI, TUIManager}
}

// Parse matches an alias against the known projects, ignoring case.
func Parse(alias string) (Project, bool) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, p := range All() {
		for _, a := range infos[p].aliases {
			if needle == a {
				return p, true
			}
		}
	}
	return 0, false
}

// Slug is the identifier used as a path segment in the install tree.
func (p Project) Slug() string {
	return infos[p].slug
}

// DisplayName is the human-readable project name.
func (p Project) DisplayName() string {
	return infos[p].display
}

// BinaryName is the file name the project's binary is published under.
func (p Project) BinaryName() string {
	return infos[p].binary
}

// RepoName is the repository the project's releases are published in.
func (p Project) RepoName() string {
	return infos[p].repo
}

// ExecutableName is the binary name with the platform's executable suffix.
func (p Project) ExecutableName() string {
	if runtime.GOOS == "windows" {
		return infos[p].binary + ".exe"
	}
	return infos[p].binary
}

// Aliases returns the accepted spellings for the project.
func (p Project) Aliases() []string {
	return append([]string(nil), infos[p].aliases...)
}

func (p Project) String() string {
	return infos[p].display
}
