package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/ports"
)

// ConfigFileName marks the root of a twolink workspace.
const ConfigFileName = "twolink.yaml"

const opFindRoot = "workspacefinder.find_root"

// Finder walks up from a directory (or a job/arm file) to the nearest
// directory holding twolink.yaml.
type Finder struct {
	configFile string
	stopDir    string
}

type Option func(*Finder)

// WithStopDir ends the search after dir has been checked. Mostly for tests,
// where an ancestor of the temp dir must not leak in.
func WithStopDir(dir string) Option {
	return func(f *Finder) { f.stopDir = filepath.Clean(dir) }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{configFile: ConfigFileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   opFindRoot,
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: opFindRoot, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, statErr := os.Stat(start); statErr == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := filepath.Clean(start); ; {
		if isRegularFile(filepath.Join(dir, f.configFile)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == f.stopDir {
			return "", &domain.OpError{
				Op:   opFindRoot,
				Kind: domain.KindNotFound,
				Path: start,
				Err:  fmt.Errorf("no %s here or in any parent: %w", f.configFile, domain.ErrNotFound),
			}
		}
		dir = parent
	}
}

// isRegularFile rejects a directory that happens to be named twolink.yaml.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
