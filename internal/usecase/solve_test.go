package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestEvaluateQuery_Forward(t *testing.T) {
	q := domain.Query{
		Name:   "reach-45-45",
		Kind:   domain.QueryForward,
		Angles: kinematics.FromDegrees(45, 45),
		Expect: domain.ExpectSpec{Position: &kinematics.Point2D{X: 0.7071, Y: 1.7071}, Tolerance: ptr(1e-4)},
	}

	res := EvaluateQuery(q, kinematics.DefaultLinks(), 1e-9)

	if diff := cmp.Diff(&domain.Position{X: math.Sqrt2 / 2, Y: 1 + math.Sqrt2/2}, res.Position, approx); diff != "" {
		t.Fatalf("position mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&domain.Position{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, res.Elbow, approx); diff != "" {
		t.Fatalf("elbow mismatch (-want +got):\n%s", diff)
	}
	if res.Angles == nil || math.Abs(res.Angles.Theta1Deg-45) > 1e-9 {
		t.Fatalf("expected angles echoed in degrees, got %+v", res.Angles)
	}
	if len(res.Assertions) != 1 || !res.Assertions[0].Passed {
		t.Fatalf("expected passing position check with query tolerance, got %+v", res.Assertions)
	}
	if res.Failed() {
		t.Fatalf("expected query to pass")
	}
}

func TestEvaluateQuery_ForwardUsesDefaultTolerance(t *testing.T) {
	q := domain.Query{
		Kind:   domain.QueryForward,
		Angles: kinematics.FromDegrees(45, 45),
		Expect: domain.ExpectSpec{Position: &kinematics.Point2D{X: 0.7071, Y: 1.7071}},
	}
	res := EvaluateQuery(q, kinematics.DefaultLinks(), 1e-9)
	if !res.Failed() {
		t.Fatalf("4-digit expectation should fail at 1e-9, got %+v", res.Assertions)
	}
}

func TestEvaluateQuery_InverseDemo(t *testing.T) {
	q := domain.Query{
		Name:   "demo",
		Kind:   domain.QueryInverse,
		Target: kinematics.Point2D{X: 0.7, Y: 1.0},
		Expect: domain.ExpectSpec{Reachable: ptr(true)},
	}

	res := EvaluateQuery(q, kinematics.DefaultLinks(), 1e-9)
	if res.Error != nil || !res.Reachable || res.Solution == nil {
		t.Fatalf("expected a solution, got %+v", res)
	}

	want := &domain.SolutionView{
		ElbowDown: domain.NewJointsView(kinematics.JointAngles{Theta1: 0.04574834740470024, Theta2: 1.8286440300019755}),
		ElbowUp:   domain.NewJointsView(kinematics.JointAngles{Theta1: 1.8743923774066757, Theta2: -1.8286440300019755}),
	}
	if diff := cmp.Diff(want, res.Solution, approx); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
	if res.RoundTripError > 1e-9 {
		t.Fatalf("round trip error too large: %g", res.RoundTripError)
	}

	names := []string{}
	for _, a := range res.Assertions {
		names = append(names, a.Name)
		if !a.Passed {
			t.Fatalf("unexpected failure: %+v", a)
		}
	}
	if diff := cmp.Diff([]string{"reachable", "round_trip"}, names); diff != "" {
		t.Fatalf("assertions mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateQuery_Unreachable(t *testing.T) {
	q := domain.Query{
		Name:   "far",
		Kind:   domain.QueryInverse,
		Target: kinematics.Point2D{X: 5, Y: 0},
	}

	res := EvaluateQuery(q, kinematics.DefaultLinks(), 1e-9)
	if res.Error == nil || res.Error.Kind != domain.KindUnreachable {
		t.Fatalf("expected unreachable error, got %+v", res.Error)
	}
	if res.Reachable || res.Solution != nil {
		t.Fatalf("expected no solution, got %+v", res)
	}
	if !errors.Is(res.Error.Err(), kinematics.ErrUnreachable) {
		t.Fatalf("expected the typed cause to be kept, got %v", res.Error.Err())
	}
	if !res.Failed() {
		t.Fatalf("unexpected unreachable target should fail the query")
	}

	q.Expect.Reachable = ptr(false)
	res = EvaluateQuery(q, kinematics.DefaultLinks(), 1e-9)
	if res.Failed() {
		t.Fatalf("expected unreachable target to pass, got %+v", res.Assertions)
	}
}

func TestEvaluateQuery_InvalidLinks(t *testing.T) {
	q := domain.Query{Kind: domain.QueryInverse, Target: kinematics.Point2D{X: 1, Y: 0}}
	res := EvaluateQuery(q, kinematics.LinkLengths{L1: 0, L2: 1}, 1e-9)
	if res.Error == nil || res.Error.Kind != domain.KindInvalidConfig {
		t.Fatalf("expected invalid_config error, got %+v", res.Error)
	}
}

func TestEvaluateQuery_UnknownKind(t *testing.T) {
	res := EvaluateQuery(domain.Query{Name: "x", Kind: "sideways"}, kinematics.DefaultLinks(), 1e-9)
	if res.Error == nil || !res.Failed() {
		t.Fatalf("expected failure for unknown kind, got %+v", res)
	}
}

func TestRoundTripError_Zero(t *testing.T) {
	l := kinematics.LinkLengths{L1: 2, L2: 1}
	target := kinematics.Point2D{X: 1.5, Y: -1}
	sol, err := kinematics.Inverse(target, l)
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}
	if e := RoundTripError(sol, target, l); e > 1e-9 {
		t.Fatalf("expected ~0 round trip error, got %g", e)
	}
	if e := RoundTripError(sol, kinematics.Point2D{X: 1.5, Y: 0}, l); math.Abs(e-1) > 1e-9 {
		t.Fatalf("expected distance 1 to a shifted target, got %g", e)
	}
}

func TestEvaluateQuery_LargeArmStaysFinite(t *testing.T) {
	q := domain.Query{Name: "big", Kind: domain.QueryInverse, Target: kinematics.Point2D{X: 1e200, Y: 0}}
	res := EvaluateQuery(q, kinematics.LinkLengths{L1: 1e200, L2: 1e200}, 1e-9)

	if res.Error != nil || res.Solution == nil {
		t.Fatalf("expected a solution, got %+v", res.Error)
	}
	if math.IsNaN(res.Solution.ElbowDown.Theta2) || math.IsNaN(res.RoundTripError) {
		t.Fatalf("expected finite values, got %+v", res)
	}
}
