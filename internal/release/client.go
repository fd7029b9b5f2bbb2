// Package release queries the hosting service for published project
// releases.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/version"
)

const (
	defaultAPIBase = "https://api.github.com"
	userAgent      = "centy-installer"
)

// ErrNoStableRelease indicates a project has no published non-prerelease
// versions.
var ErrNoStableRelease = errors.New("no stable release available")

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name string
	URL  string
	Size int64
}

// Release describes one published version of a project. Order within a
// release list follows the hosting service's response, newest first by its
// convention.
type Release struct {
	Version    version.Version
	Tag        string
	Prerelease bool
	Assets     []Asset
}

// Logger receives diagnostic output. log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Client fetches release metadata for an organization's projects. The zero
// value is not usable; construct with NewClient or fill the fields directly.
type Client struct {
	HTTPClient *http.Client
	APIBase    string
	Org        string
	Logger     Logger
}

// NewClient returns a client for the given organization using the public
// GitHub API.
func NewClient(org string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		APIBase:    defaultAPIBase,
		Org:        org,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) apiBase() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return defaultAPIBase
}

func (c *Client) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return noopLogger{}
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

type githubRelease struct {
	TagName    string        `json:"tag_name"`
	Draft      bool          `json:"draft"`
	Prerelease bool          `json:"prerelease"`
	Assets     []githubAsset `json:"assets"`
}

// Releases returns the published releases for a project in response order.
// Drafts are excluded, and releases whose tags do not parse as versions are
// skipped with a log line.
func (c *Client) Releases(ctx context.Context, p project.Project) ([]Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases", c.apiBase(), c.Org, p.RepoName())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("query releases: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("release query returned %s: %w", resp.Status, project.NotFoundError{Name: p.Slug()})
	}

	var decoded []githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode releases: %w", err)
	}

	releases := make([]Release, 0, len(decoded))
	for _, entry := range decoded {
		if entry.Draft {
			continue
		}
		v, err := version.Parse(entry.TagName)
		if err != nil {
			c.logger().Printf("skipping release with unparsable tag %q", entry.TagName)
			continue
		}
		assets := make([]Asset, 0, len(entry.Assets))
		for _, a := range entry.Assets {
			assets = append(assets, Asset{Name: a.Name, URL: a.BrowserDownloadURL, Size: a.Size})
		}
		releases = append(releases, Release{
			Version:    v,
			Tag:        entry.TagName,
			Prerelease: entry.Prerelease,
			Assets:     assets,
		})
	}
	return releases, nil
}

// LatestVersion returns the highest stable version a project has published.
// Releases are compared by parsed version rather than trusting response
// order.
func (c *Client) LatestVersion(ctx context.Context, p project.Project) (version.Version, error) {
	releases, err := c.Releases(ctx, p)
	if err != nil {
		return version.Version{}, err
	}
	var (
		best  version.Version
		found bool
	)
	for _, r := range releases {
		if r.Prerelease {
			continue
		}
		if !found || version.Compare(r.Version, best) > 0 {
			best = r.Version
			found = true
		}
	}
	if !found {
		return version.Version{}, ErrNoStableRelease
	}
	return best, nil
}

// AvailableVersions lists a project's published versions in response order.
// Prereleases are included only when requested.
func (c *Client) AvailableVersions(ctx context.Context, p project.Project, includePrerelease bool) ([]version.Version, error) {
	releases, err := c.Releases(ctx, p)
	if err != nil {
		return nil, err
	}
	var versions []version.Version
	for _, r := range releases {
		if r.Prerelease && !includePrerelease {
			continue
		}
		versions = append(versions, r.Version)
	}
	return versions, nil
}
