package domain

import (
	"errors"
	"fmt"

	"github.com/aalvaropc/twolink/internal/kinematics"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is the category reported to users and written to run artifacts.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
	KindUnreachable   ErrorKind = "unreachable"
)

// OpError tags an error with the operation that failed and, for workspace
// files, the file involved.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Op + ": " + string(e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) and friends match on Kind alone.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidConfig:
		return e.Kind == KindInvalidConfig
	case ErrExecution:
		return e.Kind == KindExecution
	case kinematics.ErrUnreachable:
		return e.Kind == KindUnreachable
	}
	return false
}

// kindOf returns the kind of the outermost OpError in err's chain. Bare
// kinematics errors map to their own kinds. Anything else has no kind.
func kindOf(err error) ErrorKind {
	var oe *OpError
	switch {
	case errors.As(err, &oe):
		return oe.Kind
	case errors.Is(err, kinematics.ErrUnreachable):
		return KindUnreachable
	case errors.Is(err, kinematics.ErrInvalidLinks):
		return KindInvalidConfig
	}
	return ""
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && kindOf(err) == kind
}
