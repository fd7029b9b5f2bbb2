package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/centy-io/centy-installer/internal/project"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the install layout and known projects",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
}

type projectDetails struct {
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Binary  string   `json:"binary"`
	Repo    string   `json:"repo"`
	Aliases []string `json:"aliases"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	app, err := newApp("info")
	if err != nil {
		return err
	}
	defer app.Close()

	if outputJSON {
		projects := make([]projectDetails, 0, len(project.All()))
		for _, p := range project.All() {
			projects = append(projects, projectDetails{
				Slug:    p.Slug(),
				Name:    p.DisplayName(),
				Binary:  p.BinaryName(),
				Repo:    p.RepoName(),
				Aliases: p.Aliases(),
			})
		}
		return printJSON(cmd, struct {
			Base     string           `json:"base"`
			Bin      string           `json:"bin"`
			Logs     string           `json:"logs"`
			Config   string           `json:"config"`
			Org      string           `json:"github_org"`
			Layout   string           `json:"layout"`
			Projects []projectDetails `json:"projects"`
		}{
			Base:     app.layout.Base,
			Bin:      app.layout.Bin,
			Logs:     app.layout.Logs,
			Config:   app.layout.ConfigFile,
			Org:      app.cfg.GitHubOrg,
			Layout:   "bin/<project>/<version>/<binary>",
			Projects: projects,
		})
	}

	cmd.Printf("base:   %s\n", app.layout.Base)
	cmd.Printf("bin:    %s\n", app.layout.Bin)
	cmd.Printf("logs:   %s\n", app.layout.Logs)
	cmd.Printf("config: %s\n", app.layout.ConfigFile)
	cmd.Printf("org:    %s\n", app.cfg.GitHubOrg)
	cmd.Printf("layout: bin/<project>/<version>/<binary>\n")
	cmd.Println()
	cmd.Printf("%-12s %-18s %-18s %s\n", "Project", "Binary", "Repository", "Aliases")
	for _, p := range project.All() {
		cmd.Printf("%-12s %-18s %-18s %s\n", p.Slug(), p.BinaryName(), p.RepoName(), strings.Join(p.Aliases(), ", "))
	}
	return nil
}
