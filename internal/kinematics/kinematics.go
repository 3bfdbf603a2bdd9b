package kinematics

import "math"

// JointAngles holds the two joint angles in radians.
type JointAngles struct {
	Theta1 float64
	Theta2 float64
}

// FromDegrees builds JointAngles from degrees.
func FromDegrees(theta1, theta2 float64) JointAngles {
	return JointAngles{Theta1: Radians(theta1), Theta2: Radians(theta2)}
}

// Degrees returns both angles in degrees.
func (q JointAngles) Degrees() (float64, float64) {
	return Degrees(q.Theta1), Degrees(q.Theta2)
}

// LinkLengths holds the length of each link. Both must be positive.
type LinkLengths struct {
	L1 float64
	L2 float64
}

// DefaultLinks is a pair of unit-length links.
func DefaultLinks() LinkLengths {
	return LinkLengths{L1: 1.0, L2: 1.0}
}

// Validate reports whether both lengths are finite and positive.
func (l LinkLengths) Validate() error {
	if !positive(l.L1) || !positive(l.L2) {
		return &InvalidLinksError{Links: l}
	}
	return nil
}

// Reach returns the radii of the reachable annulus.
func (l LinkLengths) Reach() (inner, outer float64) {
	return math.Abs(l.L1 - l.L2), l.L1 + l.L2
}

// Point2D is a position in the arm's plane.
type Point2D struct {
	X float64
	Y float64
}

// Dist returns the euclidean distance between p and o.
func (p Point2D) Dist(o Point2D) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Elbow tags one of the two inverse kinematics roots.
type Elbow string

const (
	ElbowDown Elbow = "elbow-down"
	ElbowUp   Elbow = "elbow-up"
)

// Solution is the pair of configurations that place the end-effector on the
// same target. ElbowDown carries the non-negative Theta2 root.
type Solution struct {
	ElbowDown JointAngles
	ElbowUp   JointAngles
}

// Get returns the configuration for the given elbow tag.
// Unknown tags fall back to ElbowDown.
func (s Solution) Get(e Elbow) JointAngles {
	if e == ElbowUp {
		return s.ElbowUp
	}
	return s.ElbowDown
}

func (s Solution) Primary() JointAngles   { return s.ElbowDown }
func (s Solution) Alternate() JointAngles { return s.ElbowUp }

// Forward returns the end-effector position for the given joint angles.
func Forward(q JointAngles, l LinkLengths) Point2D {
	_, tip := Joints(q, l)
	return tip
}

// Joints returns the elbow and end-effector positions. Each link's
// orientation is the sum of all preceding joint angles.
func Joints(q JointAngles, l LinkLengths) (elbow, tip Point2D) {
	elbow = Point2D{
		X: l.L1 * math.Cos(q.Theta1),
		Y: l.L1 * math.Sin(q.Theta1),
	}
	tip = Point2D{
		X: elbow.X + l.L2*math.Cos(q.Theta1+q.Theta2),
		Y: elbow.Y + l.L2*math.Sin(q.Theta1+q.Theta2),
	}
	return elbow, tip
}

// Reachable reports whether p lies inside the arm's reachable annulus.
func Reachable(p Point2D, l LinkLengths) bool {
	r := math.Hypot(p.X, p.Y)
	inner, outer := l.Reach()
	return !math.IsNaN(r) && r <= outer && r >= inner
}

// Inverse returns both joint configurations that reach target.
//
// At r == L1+L2 (fully extended) and r == |L1-L2| (fully folded) the two
// roots coincide. A target whose elbow cosine cannot be represented as a
// finite float64 is reported as unreachable.
func Inverse(target Point2D, l LinkLengths) (Solution, error) {
	if err := l.Validate(); err != nil {
		return Solution{}, err
	}

	x, y := target.X, target.Y
	r := math.Hypot(x, y)
	inner, outer := l.Reach()
	if math.IsNaN(r) || r > outer || r < inner {
		return Solution{}, &UnreachableTargetError{
			Target:   target,
			Distance: r,
			MinReach: inner,
			MaxReach: outer,
		}
	}

	c := elbowCosine(r, l)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Solution{}, &UnreachableTargetError{
			Target:   target,
			Distance: r,
			MinReach: inner,
			MaxReach: outer,
		}
	}
	// Rounding near the boundary can push the cosine just outside [-1, 1].
	c = math.Max(-1, math.Min(1, c))

	down := math.Acos(c)
	up := -down

	heading := math.Atan2(y, x)
	return Solution{
		ElbowDown: JointAngles{Theta1: shoulder(heading, down, l), Theta2: down},
		ElbowUp:   JointAngles{Theta1: shoulder(heading, up, l), Theta2: up},
	}, nil
}

// elbowCosine returns cos θ2 = (r² - L1² - L2²) / (2 L1 L2), unclamped.
// Dividing by the link lengths first keeps large arms from overflowing.
func elbowCosine(r float64, l LinkLengths) float64 {
	return ((r/l.L1)*(r/l.L2) - l.L1/l.L2 - l.L2/l.L1) / 2
}

func shoulder(heading, theta2 float64, l LinkLengths) float64 {
	k1 := l.L1 + l.L2*math.Cos(theta2)
	k2 := l.L2 * math.Sin(theta2)
	return heading - math.Atan2(k2, k1)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
