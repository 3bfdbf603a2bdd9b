package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
)

const (
	defaultStepDeg = 5.0
	minStepDeg     = 0.125
	maxStepDeg     = 45.0

	onEdgeSin = 1e-12

	plotWidth  = 41
	plotHeight = 21
)

// jog holds the joint state of the arm being driven from the keyboard.
type jog struct {
	arm     domain.Arm
	angles  kinematics.JointAngles
	stepDeg float64
}

func newJog(arm domain.Arm) jog {
	return jog{
		arm:     arm,
		angles:  kinematics.FromDegrees(45, 45),
		stepDeg: defaultStepDeg,
	}
}

// nudge moves the joints by a number of steps each.
func (j jog) nudge(d1, d2 int) jog {
	step := kinematics.Radians(j.stepDeg)
	j.angles.Theta1 = wrap(j.angles.Theta1 + float64(d1)*step)
	j.angles.Theta2 = wrap(j.angles.Theta2 + float64(d2)*step)
	return j
}

func (j jog) finer() jog {
	j.stepDeg = math.Max(minStepDeg, j.stepDeg/2)
	return j
}

func (j jog) coarser() jog {
	j.stepDeg = math.Min(maxStepDeg, j.stepDeg*2)
	return j
}

func (j jog) reset() jog {
	j.angles = kinematics.JointAngles{}
	return j
}

// wrap keeps an angle in (-π, π].
func wrap(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func (j jog) render(unit domain.AngleUnit) string {
	var b strings.Builder
	l := j.arm.Links
	inner, outer := l.Reach()
	elbow, tip := kinematics.Joints(j.angles, l)

	fmt.Fprintf(&b, "Arm: %s (l1=%g, l2=%g)  reach [%g, %g]\n", j.arm.Name, l.L1, l.L2, inner, outer)
	fmt.Fprintf(&b, "θ1 = %s  θ2 = %s  step %g°\n",
		formatAngle(j.angles.Theta1, unit), formatAngle(j.angles.Theta2, unit), j.stepDeg)
	fmt.Fprintf(&b, "elbow (%.4f, %.4f)\n", elbow.X, elbow.Y)
	fmt.Fprintf(&b, "tip   (%.4f, %.4f)\n\n", tip.X, tip.Y)

	b.WriteString("Inverse of tip:\n")
	sol, err := j.inverseOfTip(tip)
	if err != nil {
		fmt.Fprintf(&b, "  %s\n", err)
		return b.String()
	}
	for _, e := range []kinematics.Elbow{kinematics.ElbowDown, kinematics.ElbowUp} {
		q := sol.Get(e)
		fmt.Fprintf(&b, "  %-10s θ1 = %s  θ2 = %s\n", e, formatAngle(q.Theta1, unit), formatAngle(q.Theta2, unit))
	}
	return b.String()
}

// inverseOfTip solves for the current tip. A straight or folded arm puts the
// tip on the annulus edge, where rounding can land it just outside; the two
// roots coincide there and are read off the joints instead.
func (j jog) inverseOfTip(tip kinematics.Point2D) (kinematics.Solution, error) {
	sol, err := kinematics.Inverse(tip, j.arm.Links)
	if err == nil || !errors.Is(err, kinematics.ErrUnreachable) {
		return sol, err
	}
	if math.Abs(math.Sin(j.angles.Theta2)) > onEdgeSin {
		return sol, err
	}
	theta1 := wrap(j.angles.Theta1)
	theta2 := math.Abs(wrap(j.angles.Theta2))
	return kinematics.Solution{
		ElbowDown: kinematics.JointAngles{Theta1: theta1, Theta2: theta2},
		ElbowUp:   kinematics.JointAngles{Theta1: theta1, Theta2: -theta2},
	}, nil
}

func formatAngle(rad float64, unit domain.AngleUnit) string {
	return fmt.Sprintf("%.2f%s", unit.FromRadians(rad), unit.Symbol())
}

// plot draws the arm and its reach annulus on a character grid.
// The base is '+', the elbow 'o' and the tip '@'.
func plot(links kinematics.LinkLengths, q kinematics.JointAngles, w, h int) string {
	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", w))
	}

	inner, outer := links.Reach()
	scale := outer * 1.05
	set := func(p kinematics.Point2D, ch rune) {
		c := int(math.Round((p.X/scale + 1) / 2 * float64(w-1)))
		r := int(math.Round((1 - p.Y/scale) / 2 * float64(h-1)))
		if r >= 0 && r < h && c >= 0 && c < w {
			grid[r][c] = ch
		}
	}

	for deg := 0; deg < 360; deg += 3 {
		a := kinematics.Radians(float64(deg))
		set(kinematics.Point2D{X: outer * math.Cos(a), Y: outer * math.Sin(a)}, '·')
		if inner > 0 {
			set(kinematics.Point2D{X: inner * math.Cos(a), Y: inner * math.Sin(a)}, '·')
		}
	}

	origin := kinematics.Point2D{}
	elbow, tip := kinematics.Joints(q, links)
	segment := func(from, to kinematics.Point2D) {
		n := 2 * (w + h)
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			set(kinematics.Point2D{X: from.X + t*(to.X-from.X), Y: from.Y + t*(to.Y-from.Y)}, '*')
		}
	}
	segment(origin, elbow)
	segment(elbow, tip)

	set(origin, '+')
	set(elbow, 'o')
	set(tip, '@')

	lines := make([]string, h)
	for r := range grid {
		lines[r] = strings.TrimRight(string(grid[r]), " ")
	}
	return strings.Join(lines, "\n")
}
