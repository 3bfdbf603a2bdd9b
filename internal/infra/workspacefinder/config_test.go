package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/twolink/internal/domain"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	// Partial config (no paths/output)
	writeConfig(t, root, "twolink:\n  defaults:\n    arm: scara\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Defaults.Arm != "scara" {
		t.Fatalf("expected arm=scara, got=%s", cfg.Defaults.Arm)
	}
	if cfg.Defaults.Tolerance != 1e-9 {
		t.Fatalf("expected default tolerance, got=%v", cfg.Defaults.Tolerance)
	}
	if cfg.Output.AngleUnit != domain.UnitDegrees {
		t.Fatalf("expected degrees, got=%s", cfg.Output.AngleUnit)
	}
	if cfg.Paths.ArmsDir != "arms" || cfg.Paths.JobsDir != "jobs" || cfg.Paths.RunsDir != "runs" {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
}

func TestLoadConfig_OverridesEverything(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `twolink:
  defaults:
    arm: wide
    format: json
    tolerance: 0.001
  output:
    angle_unit: rad
  paths:
    arms_dir: profiles
    jobs_dir: plans
    runs_dir: out
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	want := domain.Config{
		Defaults: domain.DefaultsConfig{Arm: "wide", Format: "json", Tolerance: 0.001},
		Output:   domain.OutputConfig{AngleUnit: domain.UnitRadians},
		Paths:    domain.PathsConfig{ArmsDir: "profiles", JobsDir: "plans", RunsDir: "out"},
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	cases := []string{
		"twolink:\n  defaults:\n    tolerance: -1\n",
		"twolink:\n  output:\n    angle_unit: gradians\n",
		"twolink: [\n",
	}
	for _, content := range cases {
		root := t.TempDir()
		writeConfig(t, root, content)

		_, err := LoadConfig(root)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("config %q: expected invalid_config, got %v", content, err)
		}
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if cfg.Defaults.Arm != "default" {
		t.Fatalf("expected defaults returned alongside error")
	}
}
