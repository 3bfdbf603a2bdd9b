package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/aalvaropc/twolink/internal/kinematics"
)

// Arm is a named link-length profile.
type Arm struct {
	Name        string
	Description string
	Links       kinematics.LinkLengths
}

// ArmRef is a lightweight reference to an arm profile on disk.
type ArmRef struct {
	Name string
	Path string
}

// DefaultArm is used when no workspace profile is available.
func DefaultArm() Arm {
	return Arm{
		Name:        "default",
		Description: "unit links",
		Links:       kinematics.DefaultLinks(),
	}
}

// AngleUnit selects how angles are written in job files and printed.
type AngleUnit string

const (
	UnitDegrees AngleUnit = "deg"
	UnitRadians AngleUnit = "rad"
)

// ParseAngleUnit accepts deg/degrees and rad/radians; empty means degrees.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg", "degree", "degrees":
		return UnitDegrees, nil
	case "rad", "radian", "radians":
		return UnitRadians, nil
	default:
		return "", fmt.Errorf("unsupported angle unit %q (expected deg|rad)", s)
	}
}

// ToRadians converts v, expressed in u, to radians.
func (u AngleUnit) ToRadians(v float64) float64 {
	if u == UnitRadians {
		return v
	}
	return kinematics.Radians(v)
}

// FromRadians converts rad to u.
func (u AngleUnit) FromRadians(rad float64) float64 {
	if u == UnitRadians {
		return rad
	}
	return kinematics.Degrees(rad)
}

// Symbol is the suffix used when printing angles.
func (u AngleUnit) Symbol() string {
	if u == UnitRadians {
		return " rad"
	}
	return "°"
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
