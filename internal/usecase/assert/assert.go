package assert

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/kinematics"
)

func pass(name, format string, args ...any) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}

// Position checks that got lies within tol of want.
func Position(want kinematics.Point2D, got *domain.Position, tol float64) domain.AssertionResult {
	if got == nil {
		return fail("position", "expected position (%g, %g), got none", want.X, want.Y)
	}
	d := want.Dist(kinematics.Point2D{X: got.X, Y: got.Y})
	if d <= tol {
		return pass("position", "position (%g, %g) within %g", got.X, got.Y, tol)
	}
	return fail("position", "expected position (%g, %g) ±%g, got (%g, %g), off by %g",
		want.X, want.Y, tol, got.X, got.Y, d)
}

func Reachable(want, got bool) domain.AssertionResult {
	if want == got {
		if got {
			return pass("reachable", "target reachable")
		}
		return pass("reachable", "target unreachable as expected")
	}
	if want {
		return fail("reachable", "expected target reachable, got unreachable")
	}
	return fail("reachable", "expected target unreachable, got a solution")
}

// RoundTrip checks that both inverse solutions map back onto the target.
func RoundTrip(errDist, tol float64) domain.AssertionResult {
	if errDist <= tol {
		return pass("round_trip", "round trip error %g <= %g", errDist, tol)
	}
	return fail("round_trip", "expected round trip error <= %g, got %g", tol, errDist)
}

// Evaluate applies expect to a solved query. The round trip check is added
// for every reachable inverse result. JSONPath expressions are evaluated
// against the JSON form of r, in lexical order.
func Evaluate(expect domain.ExpectSpec, r domain.QueryResult, tol float64) []domain.AssertionResult {
	out := []domain.AssertionResult{}

	if expect.Position != nil {
		out = append(out, Position(*expect.Position, r.Position, tol))
	}
	if expect.Reachable != nil {
		out = append(out, Reachable(*expect.Reachable, r.Reachable))
	}
	if r.Kind == domain.QueryInverse && r.Reachable {
		out = append(out, RoundTrip(r.RoundTripError, tol))
	}

	if len(expect.JSONPath) == 0 {
		return out
	}

	exprs := make([]string, 0, len(expect.JSONPath))
	for expr := range expect.JSONPath {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	doc, err := document(r)
	if err != nil {
		for _, expr := range exprs {
			out = append(out, jsonPathChecks(expr, expect.JSONPath[expr], nil,
				fmt.Errorf("result is not representable as JSON: %v", err))...)
		}
		return out
	}

	for _, expr := range exprs {
		val, getErr := jsonpath.Get(expr, doc)
		out = append(out, jsonPathChecks(expr, expect.JSONPath[expr], val, getErr)...)
	}
	return out
}

// document converts r to the generic form jsonpath works on.
func document(r domain.QueryResult) (any, error) {
	r.Assertions = nil
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func jsonPathChecks(expr string, a domain.JSONPathAssertion, val any, getErr error) []domain.AssertionResult {
	var out []domain.AssertionResult
	if a.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if a.Eq != nil {
		out = append(out, checkString("jsonpath.eq", expr, val, getErr, *a.Eq))
	}
	if a.Contains != nil {
		out = append(out, checkString("jsonpath.contains", expr, val, getErr, *a.Contains))
	}
	if a.Matches != nil {
		out = append(out, checkString("jsonpath.matches", expr, val, getErr, *a.Matches))
	}
	if a.Gt != nil {
		out = append(out, checkNumber("jsonpath.gt", expr, val, getErr, *a.Gt))
	}
	if a.Lt != nil {
		out = append(out, checkNumber("jsonpath.lt", expr, val, getErr, *a.Lt))
	}
	return out
}

func checkExists(expr string, val any, getErr error) domain.AssertionResult {
	const name = "jsonpath.exists"
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	if isEmpty(val) {
		return fail(name, "jsonpath %q: expected value to exist, got empty", expr)
	}
	return pass(name, "jsonpath %q exists", expr)
}

func checkString(name, expr string, val any, getErr error, want string) domain.AssertionResult {
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	s, err := toString(val)
	if err != nil {
		return fail(name, "jsonpath %q: %v", expr, err)
	}

	switch name {
	case "jsonpath.eq":
		if s == want {
			return pass(name, "jsonpath %q eq %q", expr, want)
		}
		return fail(name, "jsonpath %q: expected %q, got %q", expr, want, s)
	case "jsonpath.contains":
		if strings.Contains(s, want) {
			return pass(name, "jsonpath %q contains %q", expr, want)
		}
		return fail(name, "jsonpath %q: %q does not contain %q", expr, s, want)
	default:
		re, err := regexp.Compile(want)
		if err != nil {
			return fail(name, "jsonpath %q: invalid regex %q: %v", expr, want, err)
		}
		if re.MatchString(s) {
			return pass(name, "jsonpath %q matches %q", expr, want)
		}
		return fail(name, "jsonpath %q: %q does not match %q", expr, s, want)
	}
}

func checkNumber(name, expr string, val any, getErr error, threshold float64) domain.AssertionResult {
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	f, err := toFloat64(val)
	if err != nil {
		return fail(name, "jsonpath %q: %v", expr, err)
	}

	if name == "jsonpath.gt" {
		if f > threshold {
			return pass(name, "jsonpath %q: %v > %v", expr, f, threshold)
		}
		return fail(name, "jsonpath %q: expected > %v, got %v", expr, threshold, f)
	}
	if f < threshold {
		return pass(name, "jsonpath %q: %v < %v", expr, f, threshold)
	}
	return fail(name, "jsonpath %q: expected < %v, got %v", expr, threshold, f)
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

func toFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
