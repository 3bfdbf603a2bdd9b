package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
	"github.com/aalvaropc/twolink/internal/usecase"
)

func forwardCmd(g *globalFlags) *cobra.Command {
	var theta1, theta2 float64
	var deg bool
	var format string
	links := &linkFlags{}

	c := &cobra.Command{
		Use:   "forward",
		Short: "Compute the end-effector position for two joint angles",
		Example: `  twolink forward --theta1 45 --theta2 45 --deg
  twolink forward --theta1 0.5 --theta2 -1.2 --l1 0.3 --l2 0.2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFinite("theta1", theta1); err != nil {
				return err
			}
			if err := requireFinite("theta2", theta2); err != nil {
				return err
			}

			arm, cfg, err := links.resolve(cmd, g)
			if err != nil {
				return err
			}

			q := kinematics.JointAngles{Theta1: theta1, Theta2: theta2}
			if deg {
				q = kinematics.FromDegrees(theta1, theta2)
			}

			res := usecase.EvaluateQuery(domain.Query{
				Name:   "forward",
				Kind:   domain.QueryForward,
				Angles: q,
			}, arm.Links, cfg.Defaults.Tolerance)

			return printQuery(cmd.OutOrStdout(), arm, res, pickFormat(cmd, format, cfg), cfg.Output.AngleUnit)
		},
	}

	c.Flags().Float64Var(&theta1, "theta1", 0, "Shoulder angle")
	c.Flags().Float64Var(&theta2, "theta2", 0, "Elbow angle, relative to the first link")
	c.Flags().BoolVar(&deg, "deg", false, "Angles are given in degrees (default radians)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	links.register(c)
	return c
}
