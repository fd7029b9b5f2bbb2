package cli

import (
	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
)

var uninstallVersion string

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall <project>",
		Short: "Remove installed versions of a project",
		Args:  cobra.ExactArgs(1),
		RunE:  runUninstall,
	}

	cmd.Flags().StringVarP(&uninstallVersion, "version", "v", "", "Version to remove (default: all versions)")

	return cmd
}

func runUninstall(cmd *cobra.Command, args []string) error {
	p, ok := project.Parse(args[0])
	if !ok {
		return project.NotFoundError{Name: args[0]}
	}

	app, err := newApp("uninstall")
	if err != nil {
		return err
	}
	defer app.Close()

	if uninstallVersion == "" {
		if err := app.inst.UninstallAll(p); err != nil {
			return err
		}
		cmd.Printf("removed all %s versions\n", p.Slug())
		return nil
	}

	if err := app.inst.Uninstall(p, uninstallVersion); err != nil {
		return err
	}
	cmd.Printf("removed %s %s\n", p.Slug(), uninstallVersion)
	return nil
}
