package usecase

import (
	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/ports"
)

type fakeJobLoader struct {
	job domain.Job
	err error
}

func (f fakeJobLoader) LoadJob(_ string) (domain.Job, error) {
	return f.job, f.err
}
func (f fakeJobLoader) ListJobs(_ string) ([]domain.JobRef, error) {
	return nil, nil
}

// fakeArmLoader serves arms by name and reports not_found otherwise.
type fakeArmLoader struct {
	arms      map[string]domain.Arm
	requested []string
}

func (f *fakeArmLoader) LoadArm(name string) (domain.Arm, error) {
	f.requested = append(f.requested, name)
	if a, ok := f.arms[name]; ok {
		return a, nil
	}
	return domain.Arm{}, &domain.OpError{Op: "fake.load_arm", Kind: domain.KindNotFound, Path: name, Err: domain.ErrNotFound}
}
func (f *fakeArmLoader) ListArms(_ string) ([]domain.ArmRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunResult
}

func (s *fakeStore) SaveRun(run domain.RunResult) (string, error) {
	s.saved = true
	s.last = run
	return "run-123", nil
}

type errStore struct{ err error }

func (s errStore) SaveRun(_ domain.RunResult) (string, error) {
	return "", s.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

func ptr[T any](v T) *T { return &v }

var (
	_ ports.JobLoader            = fakeJobLoader{}
	_ ports.ArmLoader            = (*fakeArmLoader)(nil)
	_ ports.ArtifactStore        = (*fakeStore)(nil)
	_ ports.ArtifactStore        = errStore{}
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)
