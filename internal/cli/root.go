package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/infra/fsworkspace"
	"github.com/aalvaropc/twolink/internal/infra/logger"
	"github.com/aalvaropc/twolink/internal/infra/workspacefinder"
	"github.com/aalvaropc/twolink/internal/ui/tui"
)

type globalFlags struct {
	workspace string
	debug     bool
}

func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var closeLog func() error
	cmd := newRootCmd(&closeLog)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if closeLog != nil {
		_ = closeLog()
	}
	return err
}

func newRootCmd(closeLog *func() error) *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "twolink",
		Short:        "twolink: forward/inverse kinematics for a 2-link planar arm",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			root := logRoot(g)
			if root == "" {
				return nil
			}
			cleanup, err := logger.Setup(logger.Config{Root: root, Debug: g.debug})
			if err == nil {
				*closeLog = cleanup
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                g.debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .twolink/logs/twolink.log")

	cmd.AddCommand(
		forwardCmd(g),
		inverseCmd(g),
		runCmd(g),
		validateCmd(g),
		initCmd(),
		armsCmd(g),
		jobsCmd(g),
		versionCmd(),
	)
	return cmd
}

// logRoot picks where logs go: the workspace when there is one, the current
// directory in debug mode, nowhere otherwise.
func logRoot(g *globalFlags) string {
	if root, err := resolveWorkspaceRoot(g.workspace); err == nil {
		if _, statErr := os.Stat(filepath.Join(root, workspacefinder.ConfigFileName)); statErr == nil {
			return root
		}
	}
	if g.debug {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return ""
}
