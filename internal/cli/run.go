package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/infra/logger"
	"github.com/aalvaropc/twolink/internal/ports"
	"github.com/aalvaropc/twolink/internal/usecase"
)

func runCmd(g *globalFlags) *cobra.Command {
	var job string
	var arm string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a job of kinematics queries from a twolink workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g.workspace)
			if err != nil {
				return err
			}

			jobPath, err := resolveJobPath(ws, job)
			if err != nil {
				return err
			}

			var store ports.ArtifactStore = ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewRunJob(ws.jobs, ws.arms, store,
				usecase.WithConfig(ws.cfg),
				usecase.WithLogger(logger.L()),
			)

			out := cmd.OutOrStdout()
			outFormat := pickFormat(cmd, format, ws.cfg)

			run, runID, err := uc.Execute(cmd.Context(), jobPath, resolveArmArg(ws, arm))
			if err != nil {
				// Print what was solved before a save or cancellation failure.
				if len(run.Results) > 0 {
					_ = printRun(out, run, runID, outFormat, ws.cfg.Output.AngleUnit)
				}
				return err
			}

			if err := printRun(out, run, runID, outFormat, ws.cfg.Output.AngleUnit); err != nil {
				return err
			}

			if fails := run.Failures(); fails > 0 {
				return fmt.Errorf("run failed (%d failed quer(ies))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&job, "job", "j", "", "Job name or path (required)")
	c.Flags().StringVarP(&arm, "arm", "a", "", "Arm profile name or path (overrides the job's arm)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("job")
	return c
}
