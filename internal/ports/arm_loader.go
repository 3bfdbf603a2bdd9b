package ports

import "github.com/aalvaropc/twolink/internal/domain"

// ArmLoader loads arm profiles from a source (e.g., filesystem).
type ArmLoader interface {
	LoadArm(nameOrPath string) (domain.Arm, error)
	ListArms(root string) ([]domain.ArmRef, error)
}
