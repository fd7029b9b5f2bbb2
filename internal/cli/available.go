package cli

import (
	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
)

var availablePrerelease bool

func newAvailableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "available <project>",
		Short: "List versions published upstream",
		Args:  cobra.ExactArgs(1),
		RunE:  runAvailable,
	}

	cmd.Flags().BoolVar(&availablePrerelease, "prerelease", false, "Include prerelease versions")

	return cmd
}

func runAvailable(cmd *cobra.Command, args []string) error {
	p, ok := project.Parse(args[0])
	if !ok {
		return project.NotFoundError{Name: args[0]}
	}

	app, err := newApp("available")
	if err != nil {
		return err
	}
	defer app.Close()

	versions, err := app.inst.Releases.AvailableVersions(cmd.Context(), p, availablePrerelease)
	if err != nil {
		return err
	}

	if outputJSON {
		names := make([]string, 0, len(versions))
		for _, v := range versions {
			names = append(names, v.String())
		}
		return printJSON(cmd, struct {
			Project  string   `json:"project"`
			Versions []string `json:"versions"`
		}{Project: p.Slug(), Versions: names})
	}

	if len(versions) == 0 {
		cmd.Printf("no published versions for %s\n", p.Slug())
		return nil
	}
	for _, v := range versions {
		if app.layout.IsInstalled(p, v.String()) {
			cmd.Printf("%s (installed)\n", v)
			continue
		}
		cmd.Println(v.String())
	}
	return nil
}
