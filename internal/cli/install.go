package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/installer"
	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/tui"
)

var (
	installVersion    string
	installFile       string
	installForce      bool
	installNoProgress bool
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <project>",
		Short: "Install a project binary",
		Args:  cobra.ExactArgs(1),
		RunE:  runInstall,
	}

	cmd.Flags().StringVarP(&installVersion, "version", "v", "", "Version to install (default: latest stable release)")
	cmd.Flags().StringVar(&installFile, "file", "", "Install from a local archive or binary instead of downloading")
	cmd.Flags().BoolVarP(&installForce, "force", "f", false, "Reinstall even when the version is already present")
	cmd.Flags().BoolVar(&installNoProgress, "no-progress", false, "Disable interactive progress output")

	return cmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	p, ok := project.Parse(args[0])
	if !ok {
		return project.NotFoundError{Name: args[0]}
	}
	if installFile != "" && installVersion == "" {
		return fmt.Errorf("--file requires --version")
	}

	app, err := newApp("install")
	if err != nil {
		return err
	}
	defer app.Close()

	if installFile != "" {
		result, err := app.inst.InstallFromFile(p, installVersion, installFile)
		if err != nil {
			return err
		}
		return printInstallResult(cmd, result)
	}

	out := cmd.OutOrStdout()
	mode := tui.DetectMode(out, installNoProgress, outputJSON)

	if mode != tui.ModeTUI {
		if mode == tui.ModePlain {
			app.inst.Logger = echoLogger{file: app.log, out: out}
		}
		result, err := app.inst.Install(cmd.Context(), p, installVersion, installForce)
		if err != nil {
			return err
		}
		return printInstallResult(cmd, result)
	}

	var result installer.Result
	model := tui.NewDownloadModel("install " + p.BinaryName())
	err = tui.RunWithWork(out, model, func(send func(tea.Msg)) {
		app.inst.Logger = stepLogger{file: app.log, send: send}
		app.inst.Progress = func(done, total int64) {
			send(tui.ProgressMsg{Received: done, Total: total})
		}

		r, err := app.inst.Install(cmd.Context(), p, installVersion, installForce)
		if err != nil {
			send(tui.ErrorMsg{Err: err})
			return
		}
		result = r
	})
	if err != nil {
		return err
	}
	return printInstallResult(cmd, result)
}

type installResult struct {
	Project          string `json:"project"`
	Version          string `json:"version"`
	Path             string `json:"path"`
	Link             string `json:"link"`
	AlreadyInstalled bool   `json:"already_installed,omitempty"`
}

func printInstallResult(cmd *cobra.Command, result installer.Result) error {
	if outputJSON {
		return printJSON(cmd, installResult{
			Project:          result.Project.Slug(),
			Version:          result.Version.String(),
			Path:             result.Path,
			Link:             result.LinkPath,
			AlreadyInstalled: result.AlreadyInstalled,
		})
	}

	if result.AlreadyInstalled {
		cmd.Printf("%s %s is already installed (use --force to reinstall)\n", result.Project.Slug(), result.Version)
		return nil
	}
	cmd.Printf("installed %s %s\n", result.Project.Slug(), result.Version)
	cmd.Printf("  binary: %s\n", result.Path)
	cmd.Printf("  active: %s\n", result.LinkPath)
	return nil
}
