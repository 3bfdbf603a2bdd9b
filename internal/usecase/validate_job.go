package usecase

import (
	"context"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
	"github.com/aalvaropc/twolink/internal/ports"
)

type ValidateJob struct {
	jobs ports.JobLoader
	arms ports.ArmLoader
	cfg  domain.Config
}

type ValidateOption func(*ValidateJob)

func WithValidateConfig(cfg domain.Config) ValidateOption {
	return func(uc *ValidateJob) { uc.cfg = cfg }
}

func NewValidateJob(jl ports.JobLoader, al ports.ArmLoader, opts ...ValidateOption) *ValidateJob {
	uc := &ValidateJob{
		jobs: jl,
		arms: al,
		cfg:  domain.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks a job against its arm without solving anything.
// It verifies the link lengths, that every JSONPath expression compiles and
// that inverse targets expected to be reachable lie inside the arm's annulus.
func (uc *ValidateJob) Execute(ctx context.Context, jobPath string, armArg string) error {
	job, err := uc.jobs.LoadJob(jobPath)
	if err != nil {
		return err
	}

	arm, err := ResolveArm(uc.arms, armArg, job.Arm, uc.cfg.Defaults.Arm)
	if err != nil {
		return err
	}
	if err := arm.Links.Validate(); err != nil {
		return invalidJob(jobPath, fmt.Errorf("arm %q: %w", arm.Name, err))
	}

	inner, outer := arm.Links.Reach()
	for i, q := range job.Queries {
		if err := ctx.Err(); err != nil {
			return err
		}

		for expr := range q.Expect.JSONPath {
			if _, err := jsonpath.New(expr); err != nil {
				return invalidJob(jobPath, fmt.Errorf("queries[%d] %q: jsonpath %q: %w", i, q.Name, expr, err))
			}
		}

		if q.Kind == domain.QueryInverse && q.Expect.Reachable != nil && *q.Expect.Reachable {
			if !kinematics.Reachable(q.Target, arm.Links) {
				return invalidJob(jobPath, fmt.Errorf(
					"queries[%d] %q: target (%g, %g) expected reachable but lies outside [%g, %g] for arm %q",
					i, q.Name, q.Target.X, q.Target.Y, inner, outer, arm.Name))
			}
		}
	}

	return nil
}

func invalidJob(path string, err error) error {
	return &domain.OpError{
		Op:   "usecase.validate_job",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
