package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/installer"
	"github.com/centy-io/centy-installer/internal/project"
)

// withBaseDir points the command tree at a throwaway install root and
// restores the previous flag values afterwards.
func withBaseDir(t *testing.T) string {
	t.Helper()

	prevBase := baseDir
	prevJSON := outputJSON
	t.Cleanup(func() {
		baseDir = prevBase
		outputJSON = prevJSON
	})

	baseDir = t.TempDir()
	outputJSON = false
	return baseDir
}

// seedInstall writes a fake installed binary directly into the layout.
func seedInstall(t *testing.T, base string, p project.Project, ver, content string) string {
	t.Helper()

	dir := filepath.Join(base, "bin", p.Slug(), ver)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir version dir: %v", err)
	}
	path := filepath.Join(dir, p.ExecutableName())
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	return path
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommandShowsInstalledVersions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks unavailable on windows")
	}

	base := withBaseDir(t)
	seedInstall(t, base, project.TUI, "1.0.0", "one")
	active := seedInstall(t, base, project.TUI, "1.1.0", "two")
	link := filepath.Join(base, "bin", project.TUI.ExecutableName())
	if err := os.Symlink(active, link); err != nil {
		t.Fatalf("create link: %v", err)
	}

	stdout, _, err := runCommand(t, newListCmd())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !strings.Contains(stdout, "tui") {
		t.Fatalf("expected project in output, got %q", stdout)
	}
	if !strings.Contains(stdout, "1.0.0") || !strings.Contains(stdout, "1.1.0") {
		t.Fatalf("expected both versions in output, got %q", stdout)
	}
	if !strings.Contains(stdout, "* 1.1.0") {
		t.Fatalf("expected active marker on 1.1.0, got %q", stdout)
	}
}

func TestListCommandJSONStructure(t *testing.T) {
	base := withBaseDir(t)
	outputJSON = true
	seedInstall(t, base, project.Daemon, "0.3.0", "bytes")

	stdout, _, err := runCommand(t, newListCmd())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("decode list json: %v\n%s", err, stdout)
	}
	if len(entries) != 1 || entries[0].Project != "daemon" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	got := entries[0].Versions
	if len(got) != 1 || got[0].Version != "0.3.0" || got[0].Active {
		t.Fatalf("unexpected versions %+v", got)
	}
	if len(got[0].Binaries) != 1 || got[0].Binaries[0] != project.Daemon.ExecutableName() {
		t.Fatalf("unexpected binaries %+v", got[0].Binaries)
	}
}

func TestListCommandEmptyTree(t *testing.T) {
	withBaseDir(t)

	stdout, _, err := runCommand(t, newListCmd())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(stdout, "(nothing installed)") {
		t.Fatalf("expected empty notice, got %q", stdout)
	}
}

func TestWhichCommandPrintsPath(t *testing.T) {
	base := withBaseDir(t)
	path := seedInstall(t, base, project.TUIManager, "2.0.0", "bytes")

	stdout, _, err := runCommand(t, newWhichCmd(), "tui-manager", "2.0.0")
	if err != nil {
		t.Fatalf("which: %v", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Fatalf("expected %q, got %q", path, stdout)
	}
}

func TestWhichCommandMissingVersion(t *testing.T) {
	withBaseDir(t)

	_, _, err := runCommand(t, newWhichCmd(), "tui-manager", "9.9.9")
	var notFound installer.BinaryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected BinaryNotFoundError, got %v", err)
	}
}

func TestInstallCommandFromLocalFile(t *testing.T) {
	base := withBaseDir(t)

	source := filepath.Join(t.TempDir(), "centy-tui")
	if err := os.WriteFile(source, []byte("local build"), 0o755); err != nil {
		t.Fatalf("write source: %v", err)
	}

	stdout, _, err := runCommand(t, newInstallCmd(), "tui", "--version", "1.2.0", "--file", source)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if !strings.Contains(stdout, "installed tui 1.2.0") {
		t.Fatalf("expected install confirmation, got %q", stdout)
	}

	installed := filepath.Join(base, "bin", "tui", "1.2.0", project.TUI.ExecutableName())
	data, err := os.ReadFile(installed)
	if err != nil {
		t.Fatalf("read installed binary: %v", err)
	}
	if string(data) != "local build" {
		t.Fatalf("unexpected binary content %q", data)
	}
}

func TestInstallCommandFileRequiresVersion(t *testing.T) {
	withBaseDir(t)

	_, _, err := runCommand(t, newInstallCmd(), "tui", "--file", "somewhere")
	if err == nil || !strings.Contains(err.Error(), "--file requires --version") {
		t.Fatalf("expected flag requirement error, got %v", err)
	}
}

func TestInstallCommandUnknownProject(t *testing.T) {
	withBaseDir(t)

	_, _, err := runCommand(t, newInstallCmd(), "bogus")
	var notFound project.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "bogus" {
		t.Fatalf("expected alias in error, got %q", notFound.Name)
	}
}

func TestUninstallCommandRemovesVersion(t *testing.T) {
	base := withBaseDir(t)
	seedInstall(t, base, project.Daemon, "1.0.0", "bytes")
	seedInstall(t, base, project.Daemon, "1.1.0", "bytes")

	stdout, _, err := runCommand(t, newUninstallCmd(), "daemon", "--version", "1.0.0")
	if err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	if !strings.Contains(stdout, "removed daemon 1.0.0") {
		t.Fatalf("expected removal notice, got %q", stdout)
	}

	if _, err := os.Stat(filepath.Join(base, "bin", "daemon", "1.0.0")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected 1.0.0 removed, stat err %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "bin", "daemon", "1.1.0")); err != nil {
		t.Fatalf("expected 1.1.0 untouched, stat err %v", err)
	}
}

func TestUninstallCommandAllByDefault(t *testing.T) {
	base := withBaseDir(t)
	seedInstall(t, base, project.Daemon, "1.0.0", "bytes")
	seedInstall(t, base, project.Daemon, "1.1.0", "bytes")

	stdout, _, err := runCommand(t, newUninstallCmd(), "daemon")
	if err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	if !strings.Contains(stdout, "removed all daemon versions") {
		t.Fatalf("expected removal notice, got %q", stdout)
	}

	if _, err := os.Stat(filepath.Join(base, "bin", "daemon")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected project dir removed, stat err %v", err)
	}
}

func TestAvailableCommandListsRemote(t *testing.T) {
	base := withBaseDir(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/centy-io/centy-tui/releases" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		payload := `[
			{"tag_name": "v1.1.0", "draft": false, "prerelease": false},
			{"tag_name": "v1.0.0", "draft": false, "prerelease": false}
		]`
		if _, err := w.Write([]byte(payload)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	cfg := "github_org: centy-io\napi_base_url: " + server.URL + "\n"
	if err := os.WriteFile(filepath.Join(base, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	seedInstall(t, base, project.TUI, "1.0.0", "bytes")

	stdout, _, err := runCommand(t, newAvailableCmd(), "tui")
	if err != nil {
		t.Fatalf("available: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two versions, got %q", stdout)
	}
	if lines[0] != "1.1.0" {
		t.Fatalf("expected 1.1.0 first, got %q", lines[0])
	}
	if lines[1] != "1.0.0 (installed)" {
		t.Fatalf("expected installed marker, got %q", lines[1])
	}
}

func TestInfoCommandListsProjects(t *testing.T) {
	withBaseDir(t)

	stdout, _, err := runCommand(t, newInfoCmd())
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"daemon", "tui", "daemon-tui", "tui-manager", "bin/<project>/<version>/<binary>"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output, got %q", want, stdout)
		}
	}
}

func TestRunCommandUnknownProject(t *testing.T) {
	withBaseDir(t)

	_, _, err := runCommand(t, newRunCmd(), "bogus")
	var notFound project.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
