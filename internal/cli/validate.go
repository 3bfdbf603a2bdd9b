package cli

import (
	"fmt"

	"github.com/aalvaropc/twolink/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd(g *globalFlags) *cobra.Command {
	var job string
	var arm string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a job against its arm without solving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			jobPath, err := resolveJobPath(ws, job)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateJob(ws.jobs, ws.arms, usecase.WithValidateConfig(ws.cfg))
			if err := uc.Execute(cmd.Context(), jobPath, resolveArmArg(ws, arm)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&job, "job", "j", "", "Job name or path (required)")
	c.Flags().StringVarP(&arm, "arm", "a", "", "Arm profile name or path (overrides the job's arm)")

	_ = c.MarkFlagRequired("job")
	return c
}
