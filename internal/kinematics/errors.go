package kinematics

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable matches any *UnreachableTargetError.
	ErrUnreachable = errors.New("target out of reach")
	// ErrInvalidLinks matches any *InvalidLinksError.
	ErrInvalidLinks = errors.New("invalid link lengths")
)

// UnreachableTargetError is returned by Inverse when the target lies outside
// the annulus MinReach <= r <= MaxReach.
type UnreachableTargetError struct {
	Target   Point2D
	Distance float64
	MinReach float64
	MaxReach float64
}

func (e *UnreachableTargetError) Error() string {
	return fmt.Sprintf("target (%g, %g) out of reach: distance %g outside [%g, %g]",
		e.Target.X, e.Target.Y, e.Distance, e.MinReach, e.MaxReach)
}

func (e *UnreachableTargetError) Is(target error) bool {
	return target == ErrUnreachable
}

// InvalidLinksError reports link lengths that are not finite and positive.
type InvalidLinksError struct {
	Links LinkLengths
}

func (e *InvalidLinksError) Error() string {
	return fmt.Sprintf("invalid link lengths l1=%g l2=%g: both must be positive", e.Links.L1, e.Links.L2)
}

func (e *InvalidLinksError) Is(target error) bool {
	return target == ErrInvalidLinks
}
