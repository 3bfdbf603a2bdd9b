package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// The arm and joint state at the time of the panic go to the log so the pose
// can be replayed from the CLI.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r)
			s.m = s.m.recoverFromPanic()
			tm, cmd = s, nil
		}
	}()

	next, c := s.m.Update(msg)
	switch v := next.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any) {
	j := s.m.jog
	d1, d2 := j.angles.Degrees()
	s.log.Error("panic.recovered",
		"where", where,
		"screen", s.m.scr.String(),
		"workspace", s.m.workspaceRoot,
		slog.Group("arm",
			"name", j.arm.Name,
			"l1", j.arm.Links.L1,
			"l2", j.arm.Links.L2,
		),
		slog.Group("joints",
			"theta1_deg", d1,
			"theta2_deg", d2,
			"step_deg", j.stepDeg,
		),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// recoverFromPanic drops back to the arm picker. The jog state is kept so the
// user can re-enter the pose that failed.
func (m model) recoverFromPanic() model {
	m.scr = screenArms
	m.running = false
	m.toast = panicToast
	return m
}

var _ tea.Model = (*safeModel)(nil)
