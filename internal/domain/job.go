package domain

import "github.com/aalvaropc/twolink/internal/kinematics"

// QueryKind selects which direction a query solves.
type QueryKind string

const (
	QueryForward QueryKind = "forward"
	QueryInverse QueryKind = "inverse"
)

// JSONPathAssertion defines checks on a value selected from the query result document.
type JSONPathAssertion struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}

// ExpectSpec defines the checks evaluated against a query result.
type ExpectSpec struct {
	// Position is the expected end-effector position (forward queries).
	Position *kinematics.Point2D

	// Reachable states whether an inverse target should be solvable.
	Reachable *bool

	// Tolerance overrides the workspace default distance tolerance.
	Tolerance *float64

	// JSONPath contains JSONPath assertions keyed by expression.
	JSONPath map[string]JSONPathAssertion
}

// Query is one kinematics computation inside a job.
// Angles are always stored in radians.
type Query struct {
	Name   string
	Kind   QueryKind
	Angles kinematics.JointAngles
	Target kinematics.Point2D

	Expect ExpectSpec
}

// Job groups queries that run against one arm profile (Git-friendly).
type Job struct {
	Name string

	// Arm names the profile to use; empty falls back to the workspace default.
	Arm string

	Queries []Query
}

// JobRef is a lightweight reference to a job file on disk.
type JobRef struct {
	Name string
	Path string
}
