package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finchley/lodestar"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the discovered project environment",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	env := lodestar.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, env.Summary())
	fmt.Fprintf(out, "kind:     %s\n", env.Kind)
	fmt.Fprintf(out, "root:     %s\n", env.Paths.Project)
	fmt.Fprintf(out, "assets:   %s\n", env.Paths.Assets)
	fmt.Fprintf(out, "database: %s\n", env.Config.DB)
	fmt.Fprintf(out, "address:  %s:%d\n", env.Config.IP, env.Config.Port)
	if env.Config.RustLog != "" {
		fmt.Fprintf(out, "log:      %s\n", env.Config.RustLog)
	}
	for _, name := range env.Workspace.PackageNames() {
		fmt.Fprintf(out, "member:   %s\n", name)
	}
	return nil
}
