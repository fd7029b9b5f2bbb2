package installer

import (
	"testing"

	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/version"
)

func TestTargetTriple(t *testing.T) {
	cases := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm64", "aarch64-unknown-linux-gnu"},
		{"darwin", "amd64", "x86_64-apple-darwin"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-msvc"},
		{"linux", "386", "i686-unknown-linux-gnu"},
	}
	for _, tc := range cases {
		if got := targetTriple(tc.goos, tc.goarch); got != tc.want {
			t.Errorf("targetTriple(%s, %s) = %q, want %q", tc.goos, tc.goarch, got, tc.want)
		}
	}
}

func TestTargetTriplePassesUnknownNamesThrough(t *testing.T) {
	if got := targetTriple("plan9", "mips"); got != "mips-plan9" {
		t.Errorf("targetTriple(plan9, mips) = %q, want %q", got, "mips-plan9")
	}
	if got := targetTriple("freebsd", "amd64"); got != "x86_64-freebsd" {
		t.Errorf("targetTriple(freebsd, amd64) = %q, want %q", got, "x86_64-freebsd")
	}
}

func TestArchiveNameFor(t *testing.T) {
	v := version.MustParse("1.2.3")

	got := archiveNameFor(project.TUI, v, "linux", "amd64")
	if want := "centy-tui-v1.2.3-x86_64-unknown-linux-gnu.tar.gz"; got != want {
		t.Errorf("archiveNameFor linux = %q, want %q", got, want)
	}

	got = archiveNameFor(project.Daemon, v, "windows", "amd64")
	if want := "centy-daemon-v1.2.3-x86_64-pc-windows-msvc.zip"; got != want {
		t.Errorf("archiveNameFor windows = %q, want %q", got, want)
	}
}

func TestArchiveNameCarriesPrereleaseLabel(t *testing.T) {
	v := version.MustParse("0.4.0-rc.1")

	got := archiveNameFor(project.TUIManager, v, "darwin", "arm64")
	if want := "tui-manager-v0.4.0-rc.1-aarch64-apple-darwin.tar.gz"; got != want {
		t.Errorf("archiveNameFor = %q, want %q", got, want)
	}
}
