package monolith

import (
	"fmt"
	"strconv"
	"strings"
)

// Context represents the data a template is rendered against. Values can be
// strings, numbers, booleans, nested maps, or slices — the shapes produced
// by decoding YAML or JSON into interface{} trees.
//
// Example:
//
//	ctx := monolith.Context{
//	    "name": "Jane Doe",
//	    "education": []interface{}{
//	        map[string]interface{}{"institute": "State University", "year": 2019},
//	    },
//	}
type Context map[string]interface{}

// isTruthy reports whether a value counts as true in a condition context.
// Absent, empty, and false-like values are falsy.
func isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}

	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v != "" && !strings.EqualFold(v, "false")
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case uint:
		return v != 0
	case []interface{}:
		return len(v) > 0
	case map[string]interface{}:
		return len(v) > 0
	case Context:
		return len(v) > 0
	default:
		return true
	}
}

// toSequence converts a resolved loop iterable to a slice for iteration.
// A value that is not a sequence becomes a one-element sequence containing
// that value, so a loop over a scalar field runs exactly once.
func toSequence(val interface{}) []interface{} {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case []interface{}:
		return v
	case []string:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result
	case []int:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result
	case []float64:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result
	case []map[string]interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result
	default:
		return []interface{}{val}
	}
}

// formatValue converts a value to its substitution-output string form.
func formatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 10, 32)
	case float64:
		// 'g' with precision 15 avoids trailing zeros and float noise
		return strconv.FormatFloat(v, 'g', 15, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
