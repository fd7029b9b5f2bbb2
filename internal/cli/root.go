// Package cli implements the centy-installer command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	baseDir    string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centy-installer",
		Short: "Install and manage Centy binaries",
	}

	cmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "Install root (default $CENTY_HOME or ~/.centy)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUninstallCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAvailableCmd())
	cmd.AddCommand(newWhichCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newRunCmd())

	return cmd
}
