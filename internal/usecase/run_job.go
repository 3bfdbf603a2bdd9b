package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/ports"
	"github.com/google/uuid"
)

type RunJob struct {
	jobs  ports.JobLoader
	arms  ports.ArmLoader
	store ports.ArtifactStore

	cfg   domain.Config
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

type RunOption func(*RunJob)

// WithConfig sets the workspace defaults (arm, tolerance).
func WithConfig(cfg domain.Config) RunOption {
	return func(uc *RunJob) { uc.cfg = cfg }
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunJob) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunJob) { uc.now = now }
}

func WithIDGenerator(gen func() string) RunOption {
	return func(uc *RunJob) { uc.newID = gen }
}

// NewRunJob wires a job runner. store may be nil, in which case runs are not persisted.
func NewRunJob(jl ports.JobLoader, al ports.ArmLoader, store ports.ArtifactStore, opts ...RunOption) *RunJob {
	uc := &RunJob{
		jobs:  jl,
		arms:  al,
		store: store,
		cfg:   domain.DefaultConfig(),
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves every query of the job at jobPath in order.
// armArg overrides the job's arm; both fall back to the workspace default.
// It returns the run, the artifact id (empty when not saved) and an error for
// load, cancellation or persistence failures. Query failures are reported in
// the run, not as an error.
func (uc *RunJob) Execute(ctx context.Context, jobPath string, armArg string) (domain.RunResult, string, error) {
	job, err := uc.jobs.LoadJob(jobPath)
	if err != nil {
		return domain.RunResult{}, "", err
	}

	arm, err := ResolveArm(uc.arms, armArg, job.Arm, uc.cfg.Defaults.Arm)
	if err != nil {
		return domain.RunResult{}, "", err
	}

	run := domain.RunResult{
		ID:        uc.newID(),
		JobName:   job.Name,
		JobPath:   jobPath,
		ArmName:   arm.Name,
		Links:     domain.NewLinkView(arm.Links),
		StartedAt: uc.now(),
		Results:   make([]domain.QueryResult, 0, len(job.Queries)),
	}
	uc.log.Info("run.start", "run_id", run.ID, "job", job.Name, "arm", arm.Name, "queries", len(job.Queries))

	for _, q := range job.Queries {
		if err := ctx.Err(); err != nil {
			run.EndedAt = uc.now()
			uc.log.Warn("run.cancelled", "run_id", run.ID, "completed", len(run.Results))
			return run, "", err
		}

		res := EvaluateQuery(q, arm.Links, uc.cfg.Defaults.Tolerance)
		if res.Error != nil && res.Error.Kind == domain.KindUnreachable {
			uc.log.Debug("query.unreachable", "run_id", run.ID, "query", q.Name, "error", res.Error.Message)
		}
		if res.Failed() {
			uc.log.Info("query.failed", "run_id", run.ID, "query", q.Name)
		}
		run.Results = append(run.Results, res)
	}
	run.EndedAt = uc.now()

	uc.log.Info("run.finish", "run_id", run.ID, "failures", run.Failures())

	if uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", err
	}
	uc.log.Debug("run.saved", "run_id", run.ID, "artifact", id)
	return run, id, nil
}
