package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/infra/runstore"
	"github.com/aalvaropc/twolink/internal/infra/workspacefinder"
	"github.com/aalvaropc/twolink/internal/infra/yamlarm"
	"github.com/aalvaropc/twolink/internal/infra/yamljob"
	"github.com/aalvaropc/twolink/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	arms  ports.ArmLoader
	jobs  ports.JobLoader
	store ports.ArtifactStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:  root,
		cfg:   cfg,
		arms:  yamlarm.NewLoader(root, yamlarm.WithArmsDir(cfg.Paths.ArmsDir)),
		jobs:  yamljob.NewLoader(yamljob.WithJobsDir(cfg.Paths.JobsDir)),
		store: runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `twolink init`): %w", wd, err)
	}
	return root, nil
}

func resolveJobPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("job is required (use --job or -j)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	jobsDir := filepath.Join(ws.root, ws.cfg.Paths.JobsDir)

	if hasYAMLExt(in) {
		if p := filepath.Join(jobsDir, in); fileExists(p) {
			return p, nil
		}
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if p := filepath.Join(jobsDir, in+ext); fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match the job's name field.
	refs, err := ws.jobs.ListJobs(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_job",
		Kind: domain.KindNotFound,
		Path: filepath.Join(jobsDir, in),
		Err:  fmt.Errorf("job %q not found", in),
	}
}

// resolveArmArg turns a relative arm path into one rooted at the workspace.
// Names are passed through for the loader to resolve.
func resolveArmArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" || !looksLikePath(in) || filepath.IsAbs(in) {
		return in
	}
	return filepath.Clean(filepath.Join(ws.root, in))
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
