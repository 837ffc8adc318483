package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchley/lodestar/discover"
	"github.com/finchley/lodestar/scaffold"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Create and edit workspaces",
}

var workspaceInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new empty workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, _ := cmd.Flags().GetString("dir")
		wsDir, err := scaffold.CreateWorkspace(args[0], parent)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created workspace %s\n", wsDir)
		return nil
	},
}

var workspaceAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register a member in the workspace manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot(cmd)
		if err != nil {
			return err
		}
		rel, err := memberPath(root, args[0])
		if err != nil {
			return err
		}
		if err := scaffold.NewManager(root).AddMember(rel); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", rel)
		return nil
	},
}

var workspaceRemoveCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a member from the workspace manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := workspaceRoot(cmd)
		if err != nil {
			return err
		}
		rel, err := memberPath(root, args[0])
		if err != nil {
			return err
		}
		if err := scaffold.NewManager(root).RemoveMember(rel); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", rel)
		return nil
	},
}

func init() {
	workspaceInitCmd.Flags().String("dir", ".", "directory to create the workspace under")
	workspaceAddCmd.Flags().String("root", "", "workspace root (default: discovered)")
	workspaceRemoveCmd.Flags().String("root", "", "workspace root (default: discovered)")

	workspaceCmd.AddCommand(workspaceInitCmd, workspaceAddCmd, workspaceRemoveCmd)
	rootCmd.AddCommand(workspaceCmd)
}

func workspaceRoot(cmd *cobra.Command) (string, error) {
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		return root, nil
	}
	return discover.FindRoot(), nil
}

// memberPath renders target as a workspace-relative, slash-separated member
// entry. Paths already inside the workspace stay relative; anything else is
// rejected since the members array cannot reference paths above the root.
func memberPath(root, target string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not inside workspace %s", target, root)
	}
	return filepath.ToSlash(rel), nil
}
