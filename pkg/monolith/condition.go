package monolith

import (
	"strconv"
	"strings"
)

// comparisonOperators in scan priority order. Two-character operators come
// first so that ">=" is never mistaken for ">" followed by "=".
var comparisonOperators = []string{"==", "!=", ">=", "<=", ">", "<"}

// evaluateCondition evaluates a conditional directive's expression against a
// scope. Supported forms, in order:
//
//  1. the literals true/false (case-insensitive),
//  2. a comparison <left> <op> <right> using the first operator found,
//  3. the truthiness of a resolved path.
func evaluateCondition(expr string, scope interface{}) bool {
	expr = strings.TrimSpace(expr)

	if strings.EqualFold(expr, "true") {
		return true
	}
	if strings.EqualFold(expr, "false") {
		return false
	}

	for _, op := range comparisonOperators {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}
		left := operand(expr[:idx], scope)
		right := operand(expr[idx+len(op):], scope)
		return compareValues(left, op, right)
	}

	rv := resolve(expr, scope)
	if !rv.found() {
		return false
	}
	return isTruthy(rv.value)
}

// operand resolves one side of a comparison. A side that does not resolve as
// a path in the scope is taken as its literal text, so conditions can compare
// against inline numbers and quoted strings.
func operand(text string, scope interface{}) interface{} {
	text = strings.TrimSpace(text)
	if rv := resolve(text, scope); rv.found() {
		return rv.value
	}
	return text
}

// compareValues applies a comparison operator to two operands. Both sides are
// coerced to numbers when possible; otherwise the comparison falls back to
// case-insensitive strings, where only == and != are defined — an order
// operator against non-numeric operands is false, never an error.
func compareValues(left interface{}, op string, right interface{}) bool {
	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if lok && rok {
		switch op {
		case "==":
			return lf == rf
		case "!=":
			return lf != rf
		case ">=":
			return lf >= rf
		case "<=":
			return lf <= rf
		case ">":
			return lf > rf
		case "<":
			return lf < rf
		}
		return false
	}

	ls := strings.ToLower(stripQuotes(formatValue(left)))
	rs := strings.ToLower(stripQuotes(formatValue(right)))
	switch op {
	case "==":
		return ls == rs
	case "!=":
		return ls != rs
	}
	return false
}

// toFloat attempts numeric coercion of an operand.
func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(stripQuotes(strings.TrimSpace(v)), 64)
		return f, err == nil
	}
	return 0, false
}

func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
