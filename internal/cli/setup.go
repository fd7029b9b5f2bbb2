package cli

import (
	"io"
	"log"

	"github.com/centy-io/centy-installer/internal/config"
	"github.com/centy-io/centy-installer/internal/installer"
	"github.com/centy-io/centy-installer/internal/logx"
	"github.com/centy-io/centy-installer/internal/paths"
	"github.com/centy-io/centy-installer/internal/release"
)

// app bundles what a command needs: the resolved layout, the loaded
// config, a per-invocation file logger, and the installer wired from
// them.
type app struct {
	layout paths.Layout
	cfg    config.Config
	inst   *installer.Installer
	log    *log.Logger
	closer io.Closer
}

func newApp(command string) (*app, error) {
	layout, err := resolveLayout()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(layout.ConfigFile)
	if err != nil {
		return nil, err
	}

	// A broken log directory should not take the command down.
	logger, closer, err := logx.New(layout.Logs)
	if err != nil {
		logger = logx.Discard()
		closer = nil
	}
	logger.Printf("%s started", command)

	releases := release.NewClient(cfg.GitHubOrg)
	if cfg.APIBaseURL != "" {
		releases.APIBase = cfg.APIBaseURL
	}
	releases.Logger = logger

	inst := installer.New(layout, cfg.GitHubOrg)
	inst.Releases = releases
	inst.DownloadBaseURL = cfg.DownloadBaseURL
	inst.Logger = logger

	return &app{layout: layout, cfg: cfg, inst: inst, log: logger, closer: closer}, nil
}

// Close releases the log file, if one was opened.
func (a *app) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func resolveLayout() (paths.Layout, error) {
	if baseDir != "" {
		return paths.New(baseDir), nil
	}
	return paths.Resolve()
}
