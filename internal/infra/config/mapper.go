package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
)

func MapJob(path string, yj YAMLJob) (domain.Job, error) {
	if strings.TrimSpace(yj.Name) == "" {
		return domain.Job{}, invalidField(path, "name", "job name is required")
	}
	if len(yj.Queries) == 0 {
		return domain.Job{}, invalidField(path, "queries", "at least one query is required")
	}

	unit, err := domain.ParseAngleUnit(yj.Units)
	if err != nil {
		return domain.Job{}, invalidField(path, "units", err.Error())
	}

	job := domain.Job{
		Name:    yj.Name,
		Arm:     strings.TrimSpace(yj.Arm),
		Queries: make([]domain.Query, 0, len(yj.Queries)),
	}

	for i, yq := range yj.Queries {
		q, err := mapQuery(path, fmt.Sprintf("queries[%d]", i), unit, yq)
		if err != nil {
			return domain.Job{}, err
		}
		job.Queries = append(job.Queries, q)
	}

	return job, nil
}

func mapQuery(path, prefix string, unit domain.AngleUnit, yq YAMLQuery) (domain.Query, error) {
	if strings.TrimSpace(yq.Name) == "" {
		return domain.Query{}, invalidField(path, prefix+".name", "query name is required")
	}
	if (yq.Forward == nil) == (yq.Inverse == nil) {
		return domain.Query{}, invalidField(path, prefix, "exactly one of forward or inverse is required")
	}

	q := domain.Query{Name: yq.Name}

	if yq.Forward != nil {
		t1, err := requireFinite(path, prefix+".forward.theta1", yq.Forward.Theta1)
		if err != nil {
			return domain.Query{}, err
		}
		t2, err := requireFinite(path, prefix+".forward.theta2", yq.Forward.Theta2)
		if err != nil {
			return domain.Query{}, err
		}
		q.Kind = domain.QueryForward
		q.Angles = kinematics.JointAngles{
			Theta1: unit.ToRadians(t1),
			Theta2: unit.ToRadians(t2),
		}
	} else {
		p, err := mapPoint(path, prefix+".inverse", yq.Inverse)
		if err != nil {
			return domain.Query{}, err
		}
		q.Kind = domain.QueryInverse
		q.Target = p
	}

	expect, err := mapExpect(path, prefix+".expect", q.Kind, yq.Expect)
	if err != nil {
		return domain.Query{}, err
	}
	q.Expect = expect

	return q, nil
}

func mapExpect(path, prefix string, kind domain.QueryKind, ye YAMLExpect) (domain.ExpectSpec, error) {
	spec := domain.ExpectSpec{
		Reachable: ye.Reachable,
		JSONPath:  mapJSONPath(ye.JSONPath),
	}

	if ye.Position != nil {
		if kind != domain.QueryForward {
			return domain.ExpectSpec{}, invalidField(path, prefix+".position", "position is only valid for forward queries")
		}
		p, err := mapPoint(path, prefix+".position", ye.Position)
		if err != nil {
			return domain.ExpectSpec{}, err
		}
		spec.Position = &p
	}

	if ye.Reachable != nil && kind != domain.QueryInverse {
		return domain.ExpectSpec{}, invalidField(path, prefix+".reachable", "reachable is only valid for inverse queries")
	}

	if ye.Tolerance != nil {
		tol := *ye.Tolerance
		if !domain.IsFinite(tol) || tol <= 0 {
			return domain.ExpectSpec{}, invalidField(path, prefix+".tolerance", "tolerance must be a positive number")
		}
		spec.Tolerance = &tol
	}

	for expr := range spec.JSONPath {
		if strings.TrimSpace(expr) == "" {
			return domain.ExpectSpec{}, invalidField(path, prefix+".jsonpath", "expression must not be empty")
		}
	}
	if spec.JSONPath == nil {
		spec.JSONPath = map[string]domain.JSONPathAssertion{}
	}

	return spec, nil
}

func MapArm(path string, ya YAMLArm) (domain.Arm, error) {
	name := strings.TrimSpace(ya.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	l1, err := requireFinite(path, "links.l1", ya.Links.L1)
	if err != nil {
		return domain.Arm{}, err
	}
	l2, err := requireFinite(path, "links.l2", ya.Links.L2)
	if err != nil {
		return domain.Arm{}, err
	}

	links := kinematics.LinkLengths{L1: l1, L2: l2}
	if err := links.Validate(); err != nil {
		return domain.Arm{}, invalidField(path, "links", err.Error())
	}

	return domain.Arm{
		Name:        name,
		Description: strings.TrimSpace(ya.Description),
		Links:       links,
	}, nil
}

func mapPoint(path, prefix string, yp *YAMLPoint) (kinematics.Point2D, error) {
	x, err := requireFinite(path, prefix+".x", yp.X)
	if err != nil {
		return kinematics.Point2D{}, err
	}
	y, err := requireFinite(path, prefix+".y", yp.Y)
	if err != nil {
		return kinematics.Point2D{}, err
	}
	return kinematics.Point2D{X: x, Y: y}, nil
}

func requireFinite(path, field string, v *float64) (float64, error) {
	if v == nil {
		return 0, invalidField(path, field, "value is required")
	}
	if !domain.IsFinite(*v) {
		return 0, invalidField(path, field, "value must be finite")
	}
	return *v, nil
}

func mapJSONPath(in map[string]YAMLJSONPathAssertion) map[string]domain.JSONPathAssertion {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.JSONPathAssertion, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathAssertion{
			Exists:   v.Exists,
			Eq:       v.Eq,
			Contains: v.Contains,
			Matches:  v.Matches,
			Gt:       v.Gt,
			Lt:       v.Lt,
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
