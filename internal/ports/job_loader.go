package ports

import "github.com/aalvaropc/twolink/internal/domain"

// JobLoader loads jobs from a source (e.g., filesystem).
type JobLoader interface {
	LoadJob(path string) (domain.Job, error)
	ListJobs(root string) ([]domain.JobRef, error)
}
