package tui

import "github.com/aalvaropc/twolink/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type armsLoadedMsg struct {
	root string
	cfg  domain.Config
	arms []domain.Arm
	err  error
}

type jobsLoadedMsg struct {
	root string
	refs []domain.JobRef
	err  error
}

type runnerDoneMsg struct {
	run domain.RunResult
	id  string
	err error
}
