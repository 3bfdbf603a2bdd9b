package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/twolink/internal/domain"
)

// pickFormat honours --format when set, otherwise the workspace default.
func pickFormat(cmd *cobra.Command, flag string, cfg domain.Config) string {
	if cmd.Flags().Changed("format") || cfg.Defaults.Format == "" {
		return flag
	}
	return cfg.Defaults.Format
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printQuery(w io.Writer, arm domain.Arm, res domain.QueryResult, format string, unit domain.AngleUnit) error {
	switch format {
	case "json":
		return writeJSON(w, map[string]any{
			"arm":    arm.Name,
			"links":  domain.NewLinkView(arm.Links),
			"result": res,
		})
	case "pretty", "":
		printPrettyQuery(w, arm, res, unit)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyQuery(w io.Writer, arm domain.Arm, res domain.QueryResult, unit domain.AngleUnit) {
	fmt.Fprintf(w, "Arm:        %s (l1=%g, l2=%g)\n", arm.Name, arm.Links.L1, arm.Links.L2)

	if res.Angles != nil {
		fmt.Fprintf(w, "Angles:     %s\n", formatJoints(*res.Angles, unit))
	}
	if res.Elbow != nil {
		fmt.Fprintf(w, "Elbow:      (%.4f, %.4f)\n", res.Elbow.X, res.Elbow.Y)
	}
	if res.Position != nil {
		fmt.Fprintf(w, "Position:   (%.4f, %.4f)\n", res.Position.X, res.Position.Y)
	}
	if res.Target != nil {
		fmt.Fprintf(w, "Target:     (%g, %g)\n", res.Target.X, res.Target.Y)
	}
	if res.Solution != nil {
		fmt.Fprintf(w, "elbow-down: %s\n", formatJoints(res.Solution.ElbowDown, unit))
		fmt.Fprintf(w, "elbow-up:   %s\n", formatJoints(res.Solution.ElbowUp, unit))
	}
	if res.Error != nil {
		fmt.Fprintf(w, "Error:      %s (%s)\n", res.Error.Message, res.Error.Kind)
	}
}

func formatJoints(v domain.JointsView, unit domain.AngleUnit) string {
	a := v.Angles()
	return fmt.Sprintf("θ1=%.2f%s θ2=%.2f%s",
		unit.FromRadians(a.Theta1), unit.Symbol(),
		unit.FromRadians(a.Theta2), unit.Symbol())
}

func printRun(w io.Writer, run domain.RunResult, runID string, format string, unit domain.AngleUnit) error {
	switch format {
	case "json":
		return writeJSON(w, map[string]any{
			"run_id": runID,
			"run":    run,
		})
	case "pretty", "":
		printPrettyRun(w, run, runID, unit)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string, unit domain.AngleUnit) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Job:      %s\n", run.JobName)
	fmt.Fprintf(w, "Arm:      %s (l1=%g, l2=%g)\n", run.ArmName, run.Links.L1, run.Links.L2)
	fmt.Fprintf(w, "Started:  %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		status := "OK"
		if r.Failed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "- [%s] %s (%s)\n", status, r.Name, r.Kind)

		switch {
		case r.Error != nil:
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
		case r.Position != nil:
			fmt.Fprintf(w, "  position: (%.4f, %.4f)\n", r.Position.X, r.Position.Y)
		case r.Solution != nil:
			fmt.Fprintf(w, "  elbow-down: %s\n", formatJoints(r.Solution.ElbowDown, unit))
			fmt.Fprintf(w, "  elbow-up:   %s\n", formatJoints(r.Solution.ElbowUp, unit))
		}

		if len(r.Assertions) > 0 {
			pass, fail := countAssertionPassFail(r.Assertions)
			fmt.Fprintf(w, "  assertions: %d pass / %d fail\n", pass, fail)
			for _, a := range r.Assertions {
				mark := "✓"
				if !a.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, a.Name, a.Message)
			}
		}
		fmt.Fprintln(w)
	}
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
