package yamlarm

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/infra/config"
	"github.com/aalvaropc/twolink/internal/ports"
)

type Loader struct {
	rootDir string
	armsDir string
}

type Option func(*Loader)

func WithArmsDir(dir string) Option {
	return func(l *Loader) { l.armsDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir: root,
		armsDir: "arms",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ArmLoader = (*Loader)(nil)

// LoadArm accepts either an arm name (e.g., "default") or a full path to a YAML file.
func (l *Loader) LoadArm(nameOrPath string) (domain.Arm, error) {
	in := strings.TrimSpace(nameOrPath)
	if isPathLike(in) {
		return config.LoadArm(filepath.Clean(in))
	}

	dir := filepath.Join(l.rootDir, l.armsDir)
	p := filepath.Join(dir, in+".yaml")
	if _, err := os.Stat(p); err != nil {
		alt := filepath.Join(dir, in+".yml")
		if _, altErr := os.Stat(alt); altErr == nil {
			p = alt
		}
	}
	return config.LoadArm(p)
}

func (l *Loader) ListArms(root string) ([]domain.ArmRef, error) {
	dir := filepath.Join(root, l.armsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlarm.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ArmRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		refs = append(refs, domain.ArmRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func isPathLike(s string) bool {
	return strings.HasSuffix(s, ".yaml") ||
		strings.HasSuffix(s, ".yml") ||
		strings.Contains(s, "/") ||
		strings.Contains(s, string(filepath.Separator))
}
