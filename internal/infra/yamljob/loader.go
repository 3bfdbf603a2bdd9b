package yamljob

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/infra/config"
	"github.com/aalvaropc/twolink/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	jobsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{jobsDir: "jobs"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithJobsDir(dir string) Option {
	return func(l *Loader) { l.jobsDir = dir }
}

var _ ports.JobLoader = (*Loader)(nil)

func (l *Loader) LoadJob(path string) (domain.Job, error) {
	return config.LoadJob(path)
}

func (l *Loader) ListJobs(root string) ([]domain.JobRef, error) {
	dir := filepath.Join(root, l.jobsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamljob.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.JobRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readJobName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.JobRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readJobName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
