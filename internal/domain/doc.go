// Package domain contains the core domain model for twolink.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing
// or the filesystem. Infra/adapters map into/from these types. The arm geometry itself
// lives in package kinematics; the domain wraps it with jobs, expectations and results.
package domain
