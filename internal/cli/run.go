package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
	"github.com/centy-io/centy-installer/internal/tui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project> [args...]",
		Short: "Launch an installed binary, installing it first when missing",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRun,
	}

	// Everything after the project name belongs to the launched binary.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	p, ok := project.Parse(args[0])
	if !ok {
		return project.NotFoundError{Name: args[0]}
	}

	app, err := newApp("run")
	if err != nil {
		return err
	}
	defer app.Close()

	binPath, err := prepareBinary(cmd, app, p)
	if err != nil {
		return err
	}

	app.log.Printf("launching %s %v", binPath, args[1:])
	child := exec.CommandContext(cmd.Context(), binPath, args[1:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			app.Close()
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("launch %s: %w", p.BinaryName(), err)
	}
	return nil
}

// prepareBinary resolves the newest installed binary, downloading the
// latest stable release first when nothing is installed. A spinner on
// stderr covers the download when the terminal is interactive.
func prepareBinary(cmd *cobra.Command, app *app, p project.Project) (string, error) {
	errOut := cmd.ErrOrStderr()
	if tui.DetectMode(errOut, false, outputJSON) == tui.ModeTUI {
		status := tui.NewStatusWriter(errOut)
		defer status.Stop()
		app.inst.Logger = statusLogger{file: app.log, update: status.Update}
	}
	return app.inst.EnsureInstalled(cmd.Context(), p)
}
