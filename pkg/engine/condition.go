package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Condition operators.
const (
	OpExists      = "exists"
	OpEquals      = "equals"
	OpContains    = "contains"
	OpGreaterThan = "greater_than"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.]`)

// EvaluateCondition applies one predicate to the context and returns
// "true" or "false" for edge guards to match against.
//
// A nil actual value yields "false" for every operator except exists.
// greater_than compares numerically when both operands parse after
// stripping currency symbols and separators, else falls back to
// lexicographic comparison.
func EvaluateCondition(cfg ConditionConfig, execCtx Context) string {
	actual := execCtx.Resolve(cfg.Variable)

	switch cfg.Operator {
	case OpExists:
		if actual != nil && Stringify(actual) != "" {
			return "true"
		}
		return "false"
	}

	if actual == nil {
		return "false"
	}

	switch cfg.Operator {
	case OpEquals:
		if strings.EqualFold(Stringify(actual), Stringify(cfg.Value)) {
			return "true"
		}
	case OpContains:
		target := Stringify(cfg.Value)
		if target != "" && strings.Contains(strings.ToLower(Stringify(actual)), strings.ToLower(target)) {
			return "true"
		}
	case OpGreaterThan:
		a, aOK := cleanNumber(actual)
		b, bOK := cleanNumber(cfg.Value)
		if aOK && bOK {
			if a > b {
				return "true"
			}
		} else if Stringify(actual) > Stringify(cfg.Value) {
			return "true"
		}
	}

	return "false"
}

// cleanNumber coerces a context value to a float, stripping everything
// that is not a digit or decimal point ("$10,000" parses as 10000).
func cleanNumber(v any) (float64, bool) {
	switch tv := v.(type) {
	case float64:
		return tv, true
	case float32:
		return float64(tv), true
	case int:
		return float64(tv), true
	case int64:
		return float64(tv), true
	}

	cleaned := nonNumericRe.ReplaceAllString(Stringify(v), "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
