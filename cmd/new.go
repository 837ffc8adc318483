package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchley/lodestar/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new package",
	Long: `Creates a package directory with a manifest and a source stub. By default
the package is a library; pass --bin for a binary target. With --workspace the
package is also registered in the enclosing workspace's members array.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().Bool("bin", false, "generate a binary target instead of a library")
	newCmd.Flags().String("dir", ".", "directory to create the package under")
	newCmd.Flags().String("version", "0.1.0", "package version")
	newCmd.Flags().String("description", "", "package description")
	newCmd.Flags().String("edition", "2024", "language edition")
	newCmd.Flags().StringArray("author", nil, "package author (repeatable)")
	newCmd.Flags().StringArray("dep", nil, "dependency as name@version (repeatable)")
	newCmd.Flags().String("workspace", "", "workspace root to register the package in")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	bin, _ := cmd.Flags().GetBool("bin")
	dir, _ := cmd.Flags().GetString("dir")
	version, _ := cmd.Flags().GetString("version")
	description, _ := cmd.Flags().GetString("description")
	edition, _ := cmd.Flags().GetString("edition")
	authors, _ := cmd.Flags().GetStringArray("author")
	deps, _ := cmd.Flags().GetStringArray("dep")
	wsRoot, _ := cmd.Flags().GetString("workspace")

	s := scaffold.New(name).
		WithVersion(version).
		WithDescription(description).
		WithEdition(edition)
	if bin {
		s = s.Binary()
	}
	for _, a := range authors {
		s = s.WithAuthor(a)
	}
	for _, d := range deps {
		depName, depVersion, ok := strings.Cut(d, "@")
		if !ok {
			return fmt.Errorf("invalid dependency %q: expected name@version", d)
		}
		s = s.WithDependency(depName, depVersion)
	}

	pkgDir, err := s.Create(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", pkgDir)

	if wsRoot != "" {
		rel, err := memberPath(wsRoot, pkgDir)
		if err != nil {
			return err
		}
		if err := scaffold.NewManager(wsRoot).AddMember(rel); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s in %s\n", rel, wsRoot)
	}
	return nil
}
