package installer

import (
	"fmt"
	"runtime"

	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/version"
)

// ArchiveName returns the artifact file name a project version is published
// under for the current platform.
func ArchiveName(p project.Project, v version.Version) string {
	return archiveNameFor(p, v, runtime.GOOS, runtime.GOARCH)
}

func archiveNameFor(p project.Project, v version.Version, goos, goarch string) string {
	return fmt.Sprintf("%s-v%s-%s.%s", p.BinaryName(), v, targetTriple(goos, goarch), archiveExt(goos))
}

// targetTriple maps a Go platform onto the naming convention release
// artifacts are built with. Unknown values pass through unchanged so the
// resulting URL still names something a release could publish.
func targetTriple(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}

	osName := goos
	switch goos {
	case "darwin":
		osName = "apple-darwin"
	case "linux":
		osName = "unknown-linux-gnu"
	case "windows":
		osName = "pc-windows-msvc"
	}

	return arch + "-" + osName
}

func archiveExt(goos string) string {
	if goos == "windows" {
		return "zip"
	}
	return "tar.gz"
}
