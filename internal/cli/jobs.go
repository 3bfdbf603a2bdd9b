package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func jobsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "jobs",
		Short: "Manage jobs in a workspace",
	}

	c.AddCommand(jobsListCmd(g))
	return c
}

func jobsListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			refs, err := ws.jobs.ListJobs(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no jobs found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}
