package ports

import "github.com/aalvaropc/twolink/internal/domain"

// ArtifactStore persists run artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunResult) (id string, err error)
}
