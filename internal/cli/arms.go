package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func armsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "arms",
		Short: "Manage arm profiles in a workspace",
	}

	c.AddCommand(armsListCmd(g))
	return c
}

func armsListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List arm profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			refs, err := ws.arms.ListArms(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no arms found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Arm)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				arm, err := ws.arms.LoadArm(r.Path)
				if err != nil {
					fmt.Fprintf(out, "- %s  (%s)  invalid: %v\n", r.Name, rel, err)
					continue
				}
				fmt.Fprintf(out, "- %s  l1=%g l2=%g  (%s)\n", arm.Name, arm.Links.L1, arm.Links.L2, rel)
			}
			return nil
		},
	}
}
