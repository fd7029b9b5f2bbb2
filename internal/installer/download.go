package installer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/version"
)

const userAgent = "centy-installer"

const downloadBufferSize = 128 * 1024

// downloadURL builds the artifact URL for one release. A configured base URL
// overrides the default release-host layout. The release tag carries a
// leading "v" regardless of how the caller spelled the version.
func (inst *Installer) downloadURL(p project.Project, v version.Version, archive string) string {
	if base := strings.TrimSuffix(inst.DownloadBaseURL, "/"); base != "" {
		return fmt.Sprintf("%s/%s/%s/%s", base, p.Slug(), v, archive)
	}
	return fmt.Sprintf("https://github.com/%s/%s/releases/download/v%s/%s", inst.Org, p.RepoName(), v, archive)
}

// download streams the artifact to dest through a temp file, reporting byte
// progress as chunks arrive. There are no retries; every failure surfaces to
// the caller.
func (inst *Installer) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := inst.httpClient().Do(req)
	if err != nil {
		return DownloadError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return DownloadError{URL: url, Status: resp.Status}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "download-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := inst.copyWithProgress(tmpFile, resp.Body, resp.ContentLength); err != nil {
		_ = tmpFile.Close()
		return DownloadError{URL: url, Err: err}
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("finalize download: %w", err)
	}
	return nil
}

func (inst *Installer) copyWithProgress(dst io.Writer, src io.Reader, total int64) error {
	buf := make([]byte, downloadBufferSize)
	var done int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return err
			}
			done += int64(n)
			inst.reportProgress(done, total)
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

func (inst *Installer) reportProgress(done, total int64) {
	if inst.Progress != nil {
		inst.Progress(done, total)
	}
}
