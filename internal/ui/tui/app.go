package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/twolink/internal/domain"
)

type screen int

const (
	screenArms screen = iota
	screenJog
	screenJobs
	screenRun
)

func (s screen) String() string {
	switch s {
	case screenArms:
		return "arms"
	case screenJog:
		return "jog"
	case screenJobs:
		return "jobs"
	case screenRun:
		return "run"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

type armItem struct{ arm domain.Arm }

func (i armItem) Title() string { return i.arm.Name }
func (i armItem) Description() string {
	d := fmt.Sprintf("l1=%g l2=%g", i.arm.Links.L1, i.arm.Links.L2)
	if i.arm.Description != "" {
		d += " · " + i.arm.Description
	}
	return d
}
func (i armItem) FilterValue() string { return i.arm.Name }

type jobItem struct{ ref domain.JobRef }

func (i jobItem) Title() string       { return i.ref.Name }
func (i jobItem) Description() string { return filepath.Base(i.ref.Path) }
func (i jobItem) FilterValue() string { return i.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	arms list.Model
	jobs list.Model
	jog  jog

	cfg  domain.Config
	unit domain.AngleUnit

	workspaceFound bool
	workspaceRoot  string

	running bool
	lastRun *runnerDoneMsg
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func newModel(deps Deps) model {
	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenArms,
		arms:  newList("Arms"),
		jobs:  newList("Jobs"),
		cfg:   domain.DefaultConfig(),
		unit:  domain.UnitDegrees,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	return cmdLoadArms(m.workspaceRoot, m.deps.Logger)
}

func (m model) filtering() bool {
	switch m.scr {
	case screenArms:
		return m.arms.FilterState() == list.Filtering
	case screenJobs:
		return m.jobs.FilterState() == list.Filtering
	}
	return false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.arms.SetSize(msg.Width-4, msg.Height-10)
		m.jobs.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, cmdLoadArms(msg.root, m.deps.Logger)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case armsLoadedMsg:
		m.cfg = msg.cfg
		m.unit = msg.cfg.Output.AngleUnit
		if m.unit == "" {
			m.unit = domain.UnitDegrees
		}
		items := make([]list.Item, 0, len(msg.arms))
		for _, a := range msg.arms {
			items = append(items, armItem{arm: a})
		}
		cmd := m.arms.SetItems(items)
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, cmd

	case jobsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, jobItem{ref: r})
		}
		return m, m.jobs.SetItems(items)

	case runnerDoneMsg:
		m.running = false
		m.lastRun = &msg
		m.scr = screenRun
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenArms:
		m.arms, cmd = m.arms.Update(msg)
	case screenJobs:
		m.jobs, cmd = m.jobs.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit, true
	}

	switch m.scr {
	case screenArms:
		switch key {
		case "q":
			return m, tea.Quit, true
		case "enter":
			it, ok := m.arms.SelectedItem().(armItem)
			if !ok {
				return m, nil, true
			}
			m.jog = newJog(it.arm)
			m.scr = screenJog
			m.toast = ""
			return m, nil, true
		case "tab":
			if !m.workspaceFound {
				m.toast = "No workspace: press i to create one"
				return m, nil, true
			}
			m.scr = screenJobs
			m.toast = ""
			return m, cmdLoadJobs(m.workspaceRoot, m.cfg), true
		case "i":
			if m.workspaceFound {
				return m, nil, true
			}
			wd, err := os.Getwd()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil, true
			}
			return m, cmdInitWorkspaceHere(m.deps, wd), true
		}

	case screenJog:
		switch key {
		case "left", "h":
			m.jog = m.jog.nudge(-1, 0)
		case "right", "l":
			m.jog = m.jog.nudge(1, 0)
		case "down", "j":
			m.jog = m.jog.nudge(0, -1)
		case "up", "k":
			m.jog = m.jog.nudge(0, 1)
		case "+", "=":
			m.jog = m.jog.coarser()
		case "-", "_":
			m.jog = m.jog.finer()
		case "0":
			m.jog = m.jog.reset()
		case "esc", "b", "q":
			m.scr = screenArms
		default:
			return m, nil, false
		}
		return m, nil, true

	case screenJobs:
		switch key {
		case "esc", "b", "q":
			m.scr = screenArms
			return m, nil, true
		case "enter":
			if m.running {
				return m, nil, true
			}
			it, ok := m.jobs.SelectedItem().(jobItem)
			if !ok {
				return m, nil, true
			}
			m.running = true
			m.toast = "Running " + it.ref.Name + "…"
			_, cmd := startRunAsync(m.workspaceRoot, it.ref.Path, m.deps.Logger, m.deps.Debug)
			return m, cmd, true
		}

	case screenRun:
		switch key {
		case "esc", "b", "q", "enter":
			m.scr = screenJobs
			m.toast = ""
			return m, nil, true
		}
	}

	return m, nil, false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("twolink") + "\n" +
		m.theme.Subtitle.Render("2-link planar arm kinematics") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render("Workspace: " + m.workspaceRoot)
	} else {
		banner = m.theme.Help.Render("No workspace found (built-in arm only) • i init here")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Subtitle.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenArms:
		body = m.theme.Card.Render(m.arms.View())
		help = "↑/↓ navigate • enter jog • tab jobs • / search • q quit"

	case screenJog:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Card.Render(m.jog.render(m.unit)),
			"  ",
			m.theme.Plot.Render(plot(m.jog.arm.Links, m.jog.angles, plotWidth, plotHeight)),
		)
		help = "←/→ θ1 • ↑/↓ θ2 • +/- step • 0 zero • esc back"

	case screenJobs:
		body = m.theme.Card.Render(m.jobs.View())
		help = "enter run • / search • esc back"

	case screenRun:
		body = m.theme.Card.Render(m.renderRun())
		help = "esc back"

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + banner + "\n\n" + body + toast + "\n" + m.theme.Help.Render(help))
}

func (m model) renderRun() string {
	if m.lastRun == nil {
		return "(no run yet)"
	}
	run := m.lastRun.run

	var b strings.Builder
	fmt.Fprintf(&b, "Job: %s  Arm: %s (l1=%g, l2=%g)\n", run.JobName, run.ArmName, run.Links.L1, run.Links.L2)
	if m.lastRun.id != "" {
		fmt.Fprintf(&b, "Saved: %s\n", m.lastRun.id)
	}
	b.WriteString("\n")

	for _, r := range run.Results {
		status := m.theme.Pass.Render("PASS")
		if r.Failed() {
			status = m.theme.Fail.Render("FAIL")
		}
		fmt.Fprintf(&b, "[%s] %s (%s)\n", status, r.Name, r.Kind)
		if r.Error != nil {
			fmt.Fprintf(&b, "    %s: %s\n", r.Error.Kind, r.Error.Message)
		}
		for _, a := range r.Assertions {
			if !a.Passed {
				fmt.Fprintf(&b, "    ✗ %s: %s\n", a.Name, a.Message)
			}
		}
	}
	fmt.Fprintf(&b, "\n%d/%d failed", run.Failures(), len(run.Results))
	return b.String()
}
