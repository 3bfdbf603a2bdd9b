package usecase

import (
	"fmt"
	"math"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
	ucassert "github.com/aalvaropc/twolink/internal/usecase/assert"
)

// EvaluateQuery solves q against links and applies its expectations.
// tol is used when the query does not set its own tolerance.
func EvaluateQuery(q domain.Query, links kinematics.LinkLengths, tol float64) domain.QueryResult {
	res := domain.QueryResult{
		Name:       q.Name,
		Kind:       q.Kind,
		Assertions: []domain.AssertionResult{},
	}

	switch q.Kind {
	case domain.QueryForward:
		angles := domain.NewJointsView(q.Angles)
		elbow, tip := kinematics.Joints(q.Angles, links)
		pos, el := domain.NewPosition(tip), domain.NewPosition(elbow)
		res.Angles = &angles
		res.Position = &pos
		res.Elbow = &el

	case domain.QueryInverse:
		target := domain.NewPosition(q.Target)
		res.Target = &target

		sol, err := kinematics.Inverse(q.Target, links)
		if err != nil {
			res.Error = domain.NewSolveError(err)
			break
		}
		view := domain.NewSolutionView(sol)
		res.Reachable = true
		res.Solution = &view
		res.RoundTripError = RoundTripError(sol, q.Target, links)

	default:
		res.Error = &domain.SolveError{
			Kind:    domain.KindInvalidConfig,
			Message: fmt.Sprintf("unknown query kind %q", q.Kind),
		}
	}

	if q.Expect.Tolerance != nil {
		tol = *q.Expect.Tolerance
	}
	res.Assertions = ucassert.Evaluate(q.Expect, res, tol)
	return res
}

// RoundTripError is the largest distance between target and the forward
// image of either solution.
func RoundTripError(sol kinematics.Solution, target kinematics.Point2D, links kinematics.LinkLengths) float64 {
	down := kinematics.Forward(sol.ElbowDown, links).Dist(target)
	up := kinematics.Forward(sol.ElbowUp, links).Dist(target)
	return math.Max(down, up)
}
