package domain

// Config represents the twolink workspace configuration loaded from twolink.yaml.
type Config struct {
	Defaults DefaultsConfig
	Output   OutputConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	Arm    string
	Format string

	// Tolerance is the distance used by position and round-trip checks
	// when a query does not set its own.
	Tolerance float64
}

type OutputConfig struct {
	AngleUnit AngleUnit
}

type PathsConfig struct {
	ArmsDir string
	JobsDir string
	RunsDir string
}

// DefaultConfig provides sane defaults if twolink.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Arm:       "default",
			Format:    "pretty",
			Tolerance: 1e-9,
		},
		Output: OutputConfig{AngleUnit: UnitDegrees},
		Paths: PathsConfig{
			ArmsDir: "arms",
			JobsDir: "jobs",
			RunsDir: "runs",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
