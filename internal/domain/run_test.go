package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/twolink/internal/kinematics"
)

func TestNewSolveError_Nil(t *testing.T) {
	if NewSolveError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestNewSolveError_Unreachable(t *testing.T) {
	_, err := kinematics.Inverse(kinematics.Point2D{X: 5}, kinematics.DefaultLinks())
	se := NewSolveError(fmt.Errorf("query %q: %w", "far", err))
	if se.Kind != KindUnreachable {
		t.Fatalf("expected unreachable, got %s", se.Kind)
	}
	if se.Message == "" {
		t.Fatalf("expected message")
	}
}

func TestNewSolveError_InvalidLinks(t *testing.T) {
	err := kinematics.LinkLengths{L1: -1, L2: 1}.Validate()
	if got := NewSolveError(err).Kind; got != KindInvalidConfig {
		t.Fatalf("expected invalid_config, got %s", got)
	}
}

func TestNewSolveError_Other(t *testing.T) {
	if got := NewSolveError(errors.New("boom")).Kind; got != KindExecution {
		t.Fatalf("expected execution, got %s", got)
	}
}

func TestQueryResultFailed(t *testing.T) {
	unreachable := &SolveError{Kind: KindUnreachable, Message: "far"}

	cases := []struct {
		name string
		r    QueryResult
		want bool
	}{
		{"empty", QueryResult{}, false},
		{"passing", QueryResult{Assertions: []AssertionResult{{Name: "position", Passed: true}}}, false},
		{"failing assertion", QueryResult{Assertions: []AssertionResult{{Name: "position", Passed: false}}}, true},
		{"unexpected unreachable", QueryResult{Error: unreachable}, true},
		{"expected unreachable", QueryResult{
			Error:      unreachable,
			Assertions: []AssertionResult{{Name: "reachable", Passed: true}},
		}, false},
		{"wrongly unreachable", QueryResult{
			Error:      unreachable,
			Assertions: []AssertionResult{{Name: "reachable", Passed: false}},
		}, true},
		{"execution error", QueryResult{Error: &SolveError{Kind: KindExecution}}, true},
	}
	for _, c := range cases {
		if got := c.r.Failed(); got != c.want {
			t.Errorf("%s: Failed() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRunResultFailures(t *testing.T) {
	run := RunResult{
		Results: []QueryResult{
			{Assertions: []AssertionResult{{Passed: true}}},
			{Assertions: []AssertionResult{{Passed: false}}},
			{Error: &SolveError{Kind: KindUnreachable}},
		},
	}
	if n := run.Failures(); n != 2 {
		t.Fatalf("expected 2 failures, got %d", n)
	}
}

func TestNewJointsViewDegrees(t *testing.T) {
	v := NewJointsView(kinematics.FromDegrees(30, -45))
	if v.Theta1Deg < 29.999 || v.Theta1Deg > 30.001 || v.Theta2Deg > -44.999 || v.Theta2Deg < -45.001 {
		t.Fatalf("unexpected degree view: %+v", v)
	}
	if v.Angles() != kinematics.FromDegrees(30, -45) {
		t.Fatalf("expected Angles() to round-trip the radians")
	}
}

func TestSolveError_ErrKeepsCause(t *testing.T) {
	_, err := kinematics.Inverse(kinematics.Point2D{X: 5}, kinematics.DefaultLinks())
	se := NewSolveError(err)

	var ute *kinematics.UnreachableTargetError
	if !errors.As(se.Err(), &ute) {
		t.Fatalf("expected *UnreachableTargetError, got %T", se.Err())
	}
	if ute.Distance != 5 {
		t.Fatalf("unexpected distance: %v", ute.Distance)
	}
}

func TestSolveError_ErrWithoutCause(t *testing.T) {
	se := &SolveError{Kind: KindUnreachable, Message: "out of reach"}
	if got := se.Err(); got == nil || got.Error() != "out of reach" {
		t.Fatalf("expected message error, got %v", got)
	}
}
