package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/infra/runstore"
	"github.com/aalvaropc/twolink/internal/infra/workspacefinder"
	"github.com/aalvaropc/twolink/internal/infra/yamlarm"
	"github.com/aalvaropc/twolink/internal/infra/yamljob"
	"github.com/aalvaropc/twolink/internal/usecase"
)

const runTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}
		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdLoadArms lists the workspace arm profiles. The built-in default arm is
// always offered; without a workspace it is the only entry.
func cmdLoadArms(root string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		return loadArms(root, log)
	}
}

func loadArms(root string, log *slog.Logger) armsLoadedMsg {
	if root == "" {
		return armsLoadedMsg{cfg: domain.DefaultConfig(), arms: []domain.Arm{domain.DefaultArm()}}
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return armsLoadedMsg{root: root, cfg: cfg, arms: []domain.Arm{domain.DefaultArm()}, err: err}
	}

	loader := yamlarm.NewLoader(root, yamlarm.WithArmsDir(cfg.Paths.ArmsDir))
	refs, err := loader.ListArms(root)
	if err != nil {
		return armsLoadedMsg{root: root, cfg: cfg, arms: []domain.Arm{domain.DefaultArm()}, err: err}
	}

	var arms []domain.Arm
	hasDefault := false
	for _, ref := range refs {
		arm, err := loader.LoadArm(ref.Path)
		if err != nil {
			if log != nil {
				log.Warn("arm.skipped", "path", ref.Path, "err", err)
			}
			continue
		}
		if arm.Name == domain.DefaultArm().Name {
			hasDefault = true
		}
		arms = append(arms, arm)
	}
	if !hasDefault {
		arms = append([]domain.Arm{domain.DefaultArm()}, arms...)
	}
	return armsLoadedMsg{root: root, cfg: cfg, arms: arms}
}

func cmdLoadJobs(root string, cfg domain.Config) tea.Cmd {
	return func() tea.Msg {
		loader := yamljob.NewLoader(yamljob.WithJobsDir(cfg.Paths.JobsDir))
		refs, err := loader.ListJobs(root)
		return jobsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenRunner(ch <-chan runnerDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runnerDoneMsg{err: errors.New("runner channel closed")}
		}
		return msg
	}
}

func startRunAsync(workspaceRoot, jobPath string, log *slog.Logger, debug bool) (chan runnerDoneMsg, tea.Cmd) {
	ch := make(chan runnerDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("tui.run.start", "workspace", workspaceRoot, "job_path", jobPath, "debug", debug)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("tui.run.load_config.failed", "err", err)
			ch <- runnerDoneMsg{err: err}
			return
		}

		jobs := yamljob.NewLoader(yamljob.WithJobsDir(cfg.Paths.JobsDir))
		arms := yamlarm.NewLoader(workspaceRoot, yamlarm.WithArmsDir(cfg.Paths.ArmsDir))
		store := runstore.NewJSONStore(workspaceRoot, cfg, runstore.WithIndex(true))

		uc := usecase.NewRunJob(jobs, arms, store,
			usecase.WithConfig(cfg),
			usecase.WithLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		run, id, execErr := uc.Execute(ctx, jobPath, "")
		if execErr != nil {
			log.Error("tui.run.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("tui.run.ok", "saved_id", id, "failures", run.Failures())
		}

		ch <- runnerDoneMsg{run: run, id: id, err: execErr}
	}()

	return ch, listenRunner(ch)
}
