package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/centy-io/centy-installer/internal/project"
)

// EnvHome overrides the base directory when set, mainly for tests and
// sandboxed setups.
const EnvHome = "CENTY_HOME"

// ErrNoHomeDir indicates the user home directory could not be determined.
var ErrNoHomeDir = errors.New("cannot determine home directory")

// Layout captures canonical locations inside the Centy home directory.
//
// Installed artifacts live under Bin as <slug>/<version>/<binary>, with a
// stable symlink Bin/<binary> pointing at the active version.
type Layout struct {
	Base       string
	Bin        string
	Logs       string
	ConfigFile string
}

// Resolve determines the layout rooted at $CENTY_HOME when set, or ~/.centy
// otherwise.
func Resolve() (Layout, error) {
	if custom := os.Getenv(EnvHome); custom != "" {
		return New(custom), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Layout{}, ErrNoHomeDir
	}
	return New(filepath.Join(home, ".centy")), nil
}

// New builds a layout rooted at the given base directory.
func New(base string) Layout {
	return Layout{
		Base:       base,
		Bin:        filepath.Join(base, "bin"),
		Logs:       filepath.Join(base, "logs"),
		ConfigFile: filepath.Join(base, "config.yaml"),
	}
}

// ProjectDir returns the directory holding every installed version of a
// project.
func (l Layout) ProjectDir(p project.Project) string {
	return filepath.Join(l.Bin, p.Slug())
}

// VersionDir returns the directory for one installed version.
func (l Layout) VersionDir(p project.Project, version string) string {
	return filepath.Join(l.ProjectDir(p), version)
}

// ArtifactPath returns the installed binary location for one version.
func (l Layout) ArtifactPath(p project.Project, version string) string {
	return filepath.Join(l.VersionDir(p, version), p.ExecutableName())
}

// SymlinkPath returns the stable path the active version is exposed at.
func (l Layout) SymlinkPath(p project.Project) string {
	return filepath.Join(l.Bin, p.ExecutableName())
}

// EnsureDirs creates the base, bin, and logs directories.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.Base, l.Bin, l.Logs} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureVersionDir creates the directory for one installed version.
func (l Layout) EnsureVersionDir(p project.Project, version string) error {
	dir := l.VersionDir(p, version)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// IsInstalled reports whether a version's binary is present on disk.
func (l Layout) IsInstalled(p project.Project, version string) bool {
	ok, err := FileExists(l.ArtifactPath(p, version))
	return err == nil && ok
}

// InstalledProjects lists the project directories present under bin, in
// lexicographic order. Activation symlinks are not directories and are
// excluded.
func (l Layout) InstalledProjects() ([]string, error) {
	return subdirNames(l.Bin)
}

// InstalledVersions lists the version directories present for a project, in
// lexicographic order. A missing project directory yields an empty list.
func (l Layout) InstalledVersions(p project.Project) ([]string, error) {
	return subdirNames(l.ProjectDir(p))
}

// InstalledBinaries lists the files present in one version directory, in
// lexicographic order.
func (l Layout) InstalledBinaries(p project.Project, version string) ([]string, error) {
	entries, err := os.ReadDir(l.VersionDir(p, version))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read version dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func subdirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ActiveVersion resolves the version the stable symlink currently points at.
func (l Layout) ActiveVersion(p project.Project) (string, bool) {
	target, err := os.Readlink(l.SymlinkPath(p))
	if err != nil {
		return "", false
	}
	version := filepath.Base(filepath.Dir(target))
	if version == "." || version == string(os.PathSeparator) {
		return "", false
	}
	return version, true
}

// ReplaceSymlink points the stable binary path at the given installed
// version. Any existing file or link at that location is removed first, and
// a failure to remove it surfaces rather than being skipped.
func (l Layout) ReplaceSymlink(p project.Project, version string) error {
	link := l.SymlinkPath(p)
	if err := os.Remove(link); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove existing link: %w", err)
	}
	if err := os.Symlink(l.ArtifactPath(p, version), link); err != nil {
		return fmt.Errorf("create link: %w", err)
	}
	return nil
}

// RemoveVersion deletes one installed version's directory.
func (l Layout) RemoveVersion(p project.Project, version string) error {
	if err := os.RemoveAll(l.VersionDir(p, version)); err != nil {
		return fmt.Errorf("remove version dir: %w", err)
	}
	return nil
}

// RemoveProject deletes every installed version of a project.
func (l Layout) RemoveProject(p project.Project) error {
	if err := os.RemoveAll(l.ProjectDir(p)); err != nil {
		return fmt.Errorf("remove project dir: %w", err)
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
