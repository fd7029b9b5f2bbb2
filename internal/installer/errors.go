package installer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedArchive indicates an archive extension with no registered
// extractor.
var ErrUnsupportedArchive = errors.New("unsupported archive format")

// BinaryNotFoundError reports an expected binary that is absent, either from
// an extracted archive or from the install tree.
type BinaryNotFoundError struct {
	Name string
}

func (e BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary not found: %s", e.Name)
}

// VersionNotFoundError reports an operation against a version that is not
// installed.
type VersionNotFoundError struct {
	Project string
	Version string
}

func (e VersionNotFoundError) Error() string {
	return fmt.Sprintf("%s version %s is not installed", e.Project, e.Version)
}

// DownloadError reports a failed artifact download, either a transport error
// or a non-success status.
type DownloadError struct {
	URL    string
	Status string
	Err    error
}

func (e DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("download %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("download %s: unexpected status %s", e.URL, e.Status)
}

func (e DownloadError) Unwrap() error { return e.Err }
