package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/infra/yamlarm"
	"github.com/aalvaropc/twolink/internal/kinematics"
	"github.com/aalvaropc/twolink/internal/ports"
	"github.com/aalvaropc/twolink/internal/usecase"
)

type linkFlags struct {
	arm    string
	l1, l2 float64
}

func (f *linkFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.arm, "arm", "a", "", "Arm profile name or path (defaults to the workspace default arm)")
	c.Flags().Float64Var(&f.l1, "l1", 1, "Length of the first link (overrides --arm)")
	c.Flags().Float64Var(&f.l2, "l2", 1, "Length of the second link (overrides --arm)")
}

// resolve picks the arm for a one-off solve: explicit --l1/--l2 win, then
// --arm, then the workspace default. Outside a workspace the built-in arm is used.
func (f *linkFlags) resolve(c *cobra.Command, g *globalFlags) (domain.Arm, domain.Config, error) {
	cfg := domain.DefaultConfig()

	var loader ports.ArmLoader = yamlarm.NewLoader(".")
	ws, err := loadWorkspace(g.workspace)
	switch {
	case err == nil:
		cfg = ws.cfg
		loader = ws.arms
	case strings.TrimSpace(g.workspace) != "" || !domain.IsKind(err, domain.KindNotFound):
		return domain.Arm{}, cfg, err
	}

	if c.Flags().Changed("l1") || c.Flags().Changed("l2") {
		arm := domain.Arm{
			Name:  "custom",
			Links: kinematics.LinkLengths{L1: f.l1, L2: f.l2},
		}
		if err := arm.Links.Validate(); err != nil {
			return domain.Arm{}, cfg, &domain.OpError{Op: "cli.links", Kind: domain.KindInvalidConfig, Err: err}
		}
		return arm, cfg, nil
	}

	armArg := f.arm
	if ws != nil {
		armArg = resolveArmArg(ws, armArg)
	}
	arm, err := usecase.ResolveArm(loader, armArg, cfg.Defaults.Arm)
	return arm, cfg, err
}

func requireFinite(name string, v float64) error {
	if domain.IsFinite(v) {
		return nil
	}
	return &domain.OpError{
		Op:   "cli.flags",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("--%s must be a finite number, got %v", name, v),
	}
}
