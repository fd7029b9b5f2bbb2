package cli

import (
	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
)

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <project> <version>",
		Short: "Print the path of an installed binary",
		Args:  cobra.ExactArgs(2),
		RunE:  runWhich,
	}
}

func runWhich(cmd *cobra.Command, args []string) error {
	p, ok := project.Parse(args[0])
	if !ok {
		return project.NotFoundError{Name: args[0]}
	}

	app, err := newApp("which")
	if err != nil {
		return err
	}
	defer app.Close()

	path, err := app.inst.BinaryPath(p, args[1])
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}
