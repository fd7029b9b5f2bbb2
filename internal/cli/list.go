package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
)

var listProject string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed versions",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().StringVar(&listProject, "project", "", "Limit output to one project")

	return cmd
}

type listVersion struct {
	Version  string   `json:"version"`
	Active   bool     `json:"active"`
	Binaries []string `json:"binaries"`
}

type listEntry struct {
	Project  string        `json:"project"`
	Versions []listVersion `json:"versions"`
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := newApp("list")
	if err != nil {
		return err
	}
	defer app.Close()

	selected := project.All()
	if listProject != "" {
		p, ok := project.Parse(listProject)
		if !ok {
			return project.NotFoundError{Name: listProject}
		}
		selected = []project.Project{p}
	}

	entries := make([]listEntry, 0, len(selected))
	for _, p := range selected {
		versions, err := app.inst.Installed(p)
		if err != nil {
			return err
		}
		if len(versions) == 0 && listProject == "" {
			continue
		}

		active, _ := app.layout.ActiveVersion(p)
		entry := listEntry{Project: p.Slug(), Versions: make([]listVersion, 0, len(versions))}
		for _, v := range versions {
			binaries, err := app.layout.InstalledBinaries(p, v.String())
			if err != nil {
				return err
			}
			entry.Versions = append(entry.Versions, listVersion{
				Version:  v.String(),
				Active:   v.String() == active,
				Binaries: binaries,
			})
		}
		entries = append(entries, entry)
	}

	if outputJSON {
		return printJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("(nothing installed)")
		return nil
	}
	for _, entry := range entries {
		cmd.Println(entry.Project)
		if len(entry.Versions) == 0 {
			cmd.Println("  (none installed)")
			continue
		}
		for _, v := range entry.Versions {
			marker := " "
			if v.Active {
				marker = "*"
			}
			cmd.Printf("  %s %-14s %s\n", marker, v.Version, strings.Join(v.Binaries, ", "))
		}
	}
	return nil
}
