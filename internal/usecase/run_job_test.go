package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
)

func demoJob() domain.Job {
	return domain.Job{
		Name: "Demo",
		Arm:  "wide",
		Queries: []domain.Query{
			{
				Name:   "fk",
				Kind:   domain.QueryForward,
				Angles: kinematics.FromDegrees(0, 0),
				Expect: domain.ExpectSpec{Position: &kinematics.Point2D{X: 3, Y: 0}},
			},
			{
				Name:   "ik",
				Kind:   domain.QueryInverse,
				Target: kinematics.Point2D{X: 1.5, Y: 1},
				Expect: domain.ExpectSpec{Reachable: ptr(true)},
			},
			{
				Name:   "far",
				Kind:   domain.QueryInverse,
				Target: kinematics.Point2D{X: 10, Y: 0},
				Expect: domain.ExpectSpec{Reachable: ptr(false)},
			},
		},
	}
}

func armLoader() *fakeArmLoader {
	return &fakeArmLoader{arms: map[string]domain.Arm{
		"wide":  {Name: "wide", Links: kinematics.LinkLengths{L1: 2, L2: 1}},
		"short": {Name: "short", Links: kinematics.LinkLengths{L1: 0.5, L2: 0.5}},
	}}
}

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func TestRunJob_Execute_SolvesAndSaves(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunJob(fakeJobLoader{job: demoJob()}, armLoader(), store,
		WithClock(fixedClock()),
		WithIDGenerator(func() string { return "fixed-id" }),
	)

	run, id, err := uc.Execute(context.Background(), "jobs/demo.yaml", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected store id, got %q", id)
	}
	if !store.saved || store.last.ID != "fixed-id" {
		t.Fatalf("expected run saved with generated id, got %+v", store.last)
	}

	if run.JobName != "Demo" || run.JobPath != "jobs/demo.yaml" || run.ArmName != "wide" {
		t.Fatalf("unexpected run header: %+v", run)
	}
	if run.Links != (domain.LinkView{L1: 2, L2: 1}) {
		t.Fatalf("unexpected links: %+v", run.Links)
	}
	if !run.EndedAt.After(run.StartedAt) {
		t.Fatalf("expected EndedAt after StartedAt")
	}
	if len(run.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(run.Results))
	}
	if run.Failures() != 0 {
		t.Fatalf("expected no failures, got %+v", run.Results)
	}
	if run.Results[2].Error == nil || run.Results[2].Error.Kind != domain.KindUnreachable {
		t.Fatalf("expected far target unreachable, got %+v", run.Results[2])
	}
}

func TestRunJob_Execute_ArmFlagOverridesJob(t *testing.T) {
	arms := armLoader()
	uc := NewRunJob(fakeJobLoader{job: demoJob()}, arms, nil)

	run, id, err := uc.Execute(context.Background(), "demo.yaml", "short")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without a store, got %q", id)
	}
	if run.ArmName != "short" {
		t.Fatalf("expected arm override, got %q", run.ArmName)
	}
	// With 0.5/0.5 links the forward expectation at (3, 0) and the inverse
	// target (1.5, 1) no longer hold.
	if run.Failures() != 2 {
		t.Fatalf("expected 2 failures, got %d", run.Failures())
	}
	if len(run.ID) != 36 {
		t.Fatalf("expected uuid run id, got %q", run.ID)
	}
}

func TestRunJob_Execute_FallsBackToBuiltinArm(t *testing.T) {
	job := demoJob()
	job.Arm = ""

	arms := &fakeArmLoader{}
	uc := NewRunJob(fakeJobLoader{job: job}, arms, nil)

	run, _, err := uc.Execute(context.Background(), "demo.yaml", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if run.ArmName != "default" || run.Links != (domain.LinkView{L1: 1, L2: 1}) {
		t.Fatalf("expected built-in default arm, got %s %+v", run.ArmName, run.Links)
	}
	if len(arms.requested) != 1 || arms.requested[0] != "default" {
		t.Fatalf("expected workspace default looked up first, got %v", arms.requested)
	}
}

func TestRunJob_Execute_ConfigDefaultArm(t *testing.T) {
	job := demoJob()
	job.Arm = ""

	cfg := domain.DefaultConfig()
	cfg.Defaults.Arm = "wide"

	uc := NewRunJob(fakeJobLoader{job: job}, armLoader(), nil, WithConfig(cfg))
	run, _, err := uc.Execute(context.Background(), "demo.yaml", "")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if run.ArmName != "wide" {
		t.Fatalf("expected config default arm, got %q", run.ArmName)
	}
}

func TestRunJob_Execute_UnknownArm(t *testing.T) {
	uc := NewRunJob(fakeJobLoader{job: demoJob()}, armLoader(), nil)
	_, _, err := uc.Execute(context.Background(), "demo.yaml", "missing")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestRunJob_Execute_LoadError(t *testing.T) {
	loadErr := &domain.OpError{Op: "config.load_job", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}
	uc := NewRunJob(fakeJobLoader{err: loadErr}, armLoader(), &fakeStore{})

	_, _, err := uc.Execute(context.Background(), "bad.yaml", "")
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestRunJob_Execute_StoreError(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewRunJob(fakeJobLoader{job: demoJob()}, armLoader(), errStore{err: saveErr})

	run, id, err := uc.Execute(context.Background(), "demo.yaml", "")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if id != "" || len(run.Results) != 3 {
		t.Fatalf("expected results returned without id, got id=%q results=%d", id, len(run.Results))
	}
}

func TestRunJob_Execute_StopsOnContextCancel(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunJob(fakeJobLoader{job: demoJob()}, armLoader(), store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, id, err := uc.Execute(ctx, "demo.yaml", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected nothing saved on cancel")
	}
	if len(out.Results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(out.Results))
	}
	if out.StartedAt.IsZero() || out.EndedAt.Before(out.StartedAt) {
		t.Fatalf("expected run timestamps set, got %v..%v", out.StartedAt, out.EndedAt)
	}
}
