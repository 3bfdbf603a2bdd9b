package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/twolink/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads twolink.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	d := y.Twolink.Defaults
	if d.Arm != "" {
		cfg.Defaults.Arm = d.Arm
	}
	if d.Format != "" {
		cfg.Defaults.Format = d.Format
	}
	if d.Tolerance != nil {
		if !domain.IsFinite(*d.Tolerance) || *d.Tolerance <= 0 {
			return cfg, invalid(path, fmt.Errorf("defaults.tolerance must be a positive number, got %v", *d.Tolerance))
		}
		cfg.Defaults.Tolerance = *d.Tolerance
	}
	if y.Twolink.Output.AngleUnit != "" {
		unit, err := domain.ParseAngleUnit(y.Twolink.Output.AngleUnit)
		if err != nil {
			return cfg, invalid(path, fmt.Errorf("output.angle_unit: %w", err))
		}
		cfg.Output.AngleUnit = unit
	}
	if y.Twolink.Paths.ArmsDir != "" {
		cfg.Paths.ArmsDir = y.Twolink.Paths.ArmsDir
	}
	if y.Twolink.Paths.JobsDir != "" {
		cfg.Paths.JobsDir = y.Twolink.Paths.JobsDir
	}
	if y.Twolink.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Twolink.Paths.RunsDir
	}

	return cfg, nil
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

type yamlConfig struct {
	Twolink struct {
		Defaults struct {
			Arm       string   `yaml:"arm"`
			Format    string   `yaml:"format"`
			Tolerance *float64 `yaml:"tolerance"`
		} `yaml:"defaults"`

		Output struct {
			AngleUnit string `yaml:"angle_unit"`
		} `yaml:"output"`

		Paths struct {
			ArmsDir string `yaml:"arms_dir"`
			JobsDir string `yaml:"jobs_dir"`
			RunsDir string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"twolink"`
}
