// Package kinematics solves forward and inverse kinematics for a 2-link planar arm.
//
// The base joint sits at the origin. Theta1 is measured from the +X axis and
// Theta2 is measured relative to the first link, both counter-clockwise and in
// radians. Every function is a pure value computation and is safe for
// concurrent use.
package kinematics
