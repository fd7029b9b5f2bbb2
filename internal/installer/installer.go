// Package installer implements the versioned install tree and the
// download, extract, activate pipeline that populates it.
package installer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/centy-io/centy-installer/internal/paths"
	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/release"
	"github.com/centy-io/centy-installer/internal/version"
)

// Logger receives human-readable progress output. log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// ProgressFunc receives download progress as chunks arrive. total is the
// expected byte count, or -1 when the server does not report one.
type ProgressFunc func(done, total int64)

// Installer orchestrates installs against one layout. Collaborators left
// nil fall back to working defaults.
type Installer struct {
	Layout          paths.Layout
	Releases        *release.Client
	HTTPClient      *http.Client
	Org             string
	DownloadBaseURL string
	Logger          Logger
	Progress        ProgressFunc
}

// New returns an installer rooted at the given layout, fetching releases
// for one organization.
func New(layout paths.Layout, org string) *Installer {
	return &Installer{
		Layout:   layout,
		Releases: release.NewClient(org),
		Org:      org,
	}
}

func (inst *Installer) logger() Logger {
	if inst.Logger != nil {
		return inst.Logger
	}
	return noopLogger{}
}

func (inst *Installer) httpClient() *http.Client {
	if inst.HTTPClient != nil {
		return inst.HTTPClient
	}
	return http.DefaultClient
}

func (inst *Installer) releases() *release.Client {
	if inst.Releases != nil {
		return inst.Releases
	}
	return release.NewClient(inst.Org)
}

// Result describes a completed install.
type Result struct {
	Project          project.Project
	Version          version.Version
	Path             string
	LinkPath         string
	AlreadyInstalled bool
}

// Install downloads and activates the requested version of a project,
// resolving the latest stable release when requested is empty. A version
// that is already installed short-circuits unless force is set.
func (inst *Installer) Install(ctx context.Context, p project.Project, requested string, force bool) (Result, error) {
	v, err := inst.resolveVersion(ctx, p, requested)
	if err != nil {
		return Result{}, err
	}
	verStr := v.String()

	result := Result{
		Project:  p,
		Version:  v,
		Path:     inst.Layout.ArtifactPath(p, verStr),
		LinkPath: inst.Layout.SymlinkPath(p),
	}

	if inst.Layout.IsInstalled(p, verStr) && !force {
		inst.logger().Printf("%s %s is already installed", p.DisplayName(), verStr)
		result.AlreadyInstalled = true
		return result, nil
	}

	if err := inst.prepareDirs(p, verStr); err != nil {
		return Result{}, err
	}

	archive := ArchiveName(p, v)
	url := inst.downloadURL(p, v, archive)

	staging, err := os.MkdirTemp("", "centy-install-")
	if err != nil {
		return Result{}, fmt.Errorf("create staging dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	archivePath := filepath.Join(staging, archive)
	inst.logger().Printf("downloading %s", url)
	if err := inst.download(ctx, url, archivePath); err != nil {
		return Result{}, err
	}

	if err := inst.placeFromArchive(p, verStr, archivePath, staging); err != nil {
		return Result{}, err
	}

	if err := inst.activate(p, verStr); err != nil {
		return Result{}, err
	}

	inst.logger().Printf("installed %s %s at %s", p.DisplayName(), verStr, result.Path)
	return result, nil
}

// InstallFromFile installs a version from a local archive or binary instead
// of downloading. Archives are extracted and searched for the project
// binary; any other file is copied verbatim.
func (inst *Installer) InstallFromFile(p project.Project, requested, source string) (Result, error) {
	v, err := version.Parse(requested)
	if err != nil {
		return Result{}, err
	}
	verStr := v.String()

	if err := inst.prepareDirs(p, verStr); err != nil {
		return Result{}, err
	}

	if isArchive(source) {
		staging, err := os.MkdirTemp("", "centy-install-")
		if err != nil {
			return Result{}, fmt.Errorf("create staging dir: %w", err)
		}
		defer func() { _ = os.RemoveAll(staging) }()

		if err := inst.placeFromArchive(p, verStr, source, staging); err != nil {
			return Result{}, err
		}
	} else {
		inst.logger().Printf("copying %s", source)
		if err := inst.placeBinary(p, verStr, source); err != nil {
			return Result{}, err
		}
	}

	if err := inst.activate(p, verStr); err != nil {
		return Result{}, err
	}

	result := Result{
		Project:  p,
		Version:  v,
		Path:     inst.Layout.ArtifactPath(p, verStr),
		LinkPath: inst.Layout.SymlinkPath(p),
	}
	inst.logger().Printf("installed %s %s at %s", p.DisplayName(), verStr, result.Path)
	return result, nil
}

func (inst *Installer) resolveVersion(ctx context.Context, p project.Project, requested string) (version.Version, error) {
	if requested == "" {
		inst.logger().Printf("resolving latest %s release", p.DisplayName())
		return inst.releases().LatestVersion(ctx, p)
	}
	return version.Parse(requested)
}

func (inst *Installer) prepareDirs(p project.Project, verStr string) error {
	if err := inst.Layout.EnsureDirs(); err != nil {
		return err
	}
	return inst.Layout.EnsureVersionDir(p, verStr)
}

func (inst *Installer) placeFromArchive(p project.Project, verStr, archivePath, staging string) error {
	extractDir := filepath.Join(staging, "extract")
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return fmt.Errorf("create extract dir: %w", err)
	}

	inst.logger().Printf("extracting %s", filepath.Base(archivePath))
	if err := extractArchive(archivePath, extractDir); err != nil {
		return err
	}

	located, err := findBinary(extractDir, p.ExecutableName())
	if err != nil {
		return err
	}
	return inst.placeBinary(p, verStr, located)
}

func (inst *Installer) placeBinary(p project.Project, verStr, src string) error {
	dest := inst.Layout.ArtifactPath(p, verStr)
	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(dest, 0o755); err != nil {
			return fmt.Errorf("chmod binary: %w", err)
		}
	}
	return nil
}

func (inst *Installer) activate(p project.Project, verStr string) error {
	if err := inst.Layout.ReplaceSymlink(p, verStr); err != nil {
		return fmt.Errorf("activate %s: %w", verStr, err)
	}
	return nil
}

func isArchive(path string) bool {
	return strings.HasSuffix(path, ".tar.gz") ||
		strings.HasSuffix(path, ".tgz") ||
		strings.HasSuffix(path, ".zip")
}

// Uninstall removes one installed version. The activation link is left
// untouched and may dangle afterwards.
func (inst *Installer) Uninstall(p project.Project, requested string) error {
	v, err := version.Parse(requested)
	if err != nil {
		return err
	}
	verStr := v.String()
	if !inst.Layout.IsInstalled(p, verStr) {
		return VersionNotFoundError{Project: p.Slug(), Version: verStr}
	}
	if err := inst.Layout.RemoveVersion(p, verStr); err != nil {
		return err
	}
	inst.logger().Printf("uninstalled %s %s", p.DisplayName(), verStr)
	return nil
}

// UninstallAll removes every installed version of a project, succeeding
// even when nothing was installed.
func (inst *Installer) UninstallAll(p project.Project) error {
	if err := inst.Layout.RemoveProject(p); err != nil {
		return err
	}
	inst.logger().Printf("removed all %s versions", p.DisplayName())
	return nil
}

// Installed returns a project's installed versions in ascending order.
// Directory names that do not parse as versions are skipped.
func (inst *Installer) Installed(p project.Project) ([]version.Version, error) {
	names, err := inst.Layout.InstalledVersions(p)
	if err != nil {
		return nil, err
	}
	var versions []version.Version
	for _, name := range names {
		v, err := version.Parse(name)
		if err != nil {
			inst.logger().Printf("skipping unrecognized version dir %q", name)
			continue
		}
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })
	return versions, nil
}

// ProjectVersions pairs a project with its installed versions.
type ProjectVersions struct {
	Project  project.Project
	Versions []version.Version
}

// ListInstalled reports every project with at least one installed version,
// in registry order.
func (inst *Installer) ListInstalled() ([]ProjectVersions, error) {
	var out []ProjectVersions
	for _, p := range project.All() {
		versions, err := inst.Installed(p)
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			continue
		}
		out = append(out, ProjectVersions{Project: p, Versions: versions})
	}
	return out, nil
}

// LatestInstalled returns the newest installed version of a project.
func (inst *Installer) LatestInstalled(p project.Project) (version.Version, bool, error) {
	versions, err := inst.Installed(p)
	if err != nil || len(versions) == 0 {
		return version.Version{}, false, err
	}
	return versions[len(versions)-1], true, nil
}

// BinaryPath returns the installed binary location for an exact version. It
// does not fall back to other versions.
func (inst *Installer) BinaryPath(p project.Project, requested string) (string, error) {
	v, err := version.Parse(requested)
	if err != nil {
		return "", err
	}
	path := inst.Layout.ArtifactPath(p, v.String())
	ok, err := paths.FileExists(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", BinaryNotFoundError{Name: path}
	}
	return path, nil
}

// EnsureInstalled returns the binary path of the newest installed version,
// installing the latest stable release first when none is present.
func (inst *Installer) EnsureInstalled(ctx context.Context, p project.Project) (string, error) {
	latest, ok, err := inst.LatestInstalled(p)
	if err != nil {
		return "", err
	}
	if ok {
		return inst.BinaryPath(p, latest.String())
	}

	inst.logger().Printf("%s is not installed yet", p.DisplayName())
	result, err := inst.Install(ctx, p, "", false)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}
