package domain

import (
	"errors"
	"time"

	"github.com/aalvaropc/twolink/internal/kinematics"
)

// Position is the serialized form of a point.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPosition(p kinematics.Point2D) Position {
	return Position{X: p.X, Y: p.Y}
}

// JointsView is the serialized form of a joint configuration.
// Degrees are included so JSONPath checks can be written either way.
type JointsView struct {
	Theta1    float64 `json:"theta1"`
	Theta2    float64 `json:"theta2"`
	Theta1Deg float64 `json:"theta1_deg"`
	Theta2Deg float64 `json:"theta2_deg"`
}

func NewJointsView(q kinematics.JointAngles) JointsView {
	d1, d2 := q.Degrees()
	return JointsView{
		Theta1:    q.Theta1,
		Theta2:    q.Theta2,
		Theta1Deg: d1,
		Theta2Deg: d2,
	}
}

func (v JointsView) Angles() kinematics.JointAngles {
	return kinematics.JointAngles{Theta1: v.Theta1, Theta2: v.Theta2}
}

// SolutionView is the serialized form of the inverse kinematics pair.
type SolutionView struct {
	ElbowDown JointsView `json:"elbow_down"`
	ElbowUp   JointsView `json:"elbow_up"`
}

func NewSolutionView(s kinematics.Solution) SolutionView {
	return SolutionView{
		ElbowDown: NewJointsView(s.ElbowDown),
		ElbowUp:   NewJointsView(s.ElbowUp),
	}
}

// SolveError represents a structured error produced while solving a query.
type SolveError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`

	cause error
}

// Err returns the error the SolveError was built from, or an error carrying
// Message when it was decoded or constructed by hand.
func (e *SolveError) Err() error {
	if e.cause != nil {
		return e.cause
	}
	return errors.New(e.Message)
}

// NewSolveError classifies err. It returns nil for a nil error.
func NewSolveError(err error) *SolveError {
	if err == nil {
		return nil
	}
	kind := kindOf(err)
	if kind == "" {
		kind = KindExecution
	}
	return &SolveError{Kind: kind, Message: err.Error(), cause: err}
}

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// QueryResult represents the result of solving a single query.
type QueryResult struct {
	Name string    `json:"name"`
	Kind QueryKind `json:"kind"`

	// Forward input and outputs.
	Angles   *JointsView `json:"angles,omitempty"`
	Position *Position   `json:"position,omitempty"`
	Elbow    *Position   `json:"elbow,omitempty"`

	// Inverse input and outputs.
	Target         *Position     `json:"target,omitempty"`
	Reachable      bool          `json:"reachable"`
	Solution       *SolutionView `json:"solution,omitempty"`
	RoundTripError float64       `json:"round_trip_error"`

	Assertions []AssertionResult `json:"assertions"`
	Error      *SolveError       `json:"error,omitempty"`
}

// Failed reports whether the query errored unexpectedly or an assertion failed.
// An unreachable target is only a failure when no assertion accounted for it.
func (r QueryResult) Failed() bool {
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	if r.Error == nil {
		return false
	}
	if r.Error.Kind == KindUnreachable {
		for _, a := range r.Assertions {
			if a.Name == "reachable" {
				return false
			}
		}
	}
	return true
}

// RunResult represents the result of executing a job.
type RunResult struct {
	ID string `json:"id"`

	JobName string `json:"job_name"`
	JobPath string `json:"job_path"`

	ArmName string   `json:"arm_name"`
	Links   LinkView `json:"links"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Results []QueryResult `json:"results"`
}

// LinkView is the serialized form of link lengths.
type LinkView struct {
	L1 float64 `json:"l1"`
	L2 float64 `json:"l2"`
}

func NewLinkView(l kinematics.LinkLengths) LinkView {
	return LinkView{L1: l.L1, L2: l.L2}
}

// Failures counts failed query results.
func (r RunResult) Failures() int {
	n := 0
	for _, q := range r.Results {
		if q.Failed() {
			n++
		}
	}
	return n
}
