package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
	"github.com/aalvaropc/twolink/internal/usecase"
)

func inverseCmd(g *globalFlags) *cobra.Command {
	var x, y float64
	var format string
	links := &linkFlags{}

	c := &cobra.Command{
		Use:   "inverse",
		Short: "Compute both joint configurations that reach a target point",
		Example: `  twolink inverse --x 0.7 --y 1.0
  twolink inverse --x 0.3 --y 0.1 --arm scara`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFinite("x", x); err != nil {
				return err
			}
			if err := requireFinite("y", y); err != nil {
				return err
			}

			arm, cfg, err := links.resolve(cmd, g)
			if err != nil {
				return err
			}

			res := usecase.EvaluateQuery(domain.Query{
				Name:   "inverse",
				Kind:   domain.QueryInverse,
				Target: kinematics.Point2D{X: x, Y: y},
			}, arm.Links, cfg.Defaults.Tolerance)

			if err := printQuery(cmd.OutOrStdout(), arm, res, pickFormat(cmd, format, cfg), cfg.Output.AngleUnit); err != nil {
				return err
			}

			if res.Error != nil {
				return res.Error.Err()
			}
			return nil
		},
	}

	c.Flags().Float64Var(&x, "x", 0, "Target x")
	c.Flags().Float64Var(&y, "y", 0, "Target y")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	links.register(c)
	return c
}
