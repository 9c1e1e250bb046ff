package monolith

import "strings"

// resolveState classifies the outcome of a path resolution, so each caller
// can apply its own interpretation of "absent": empty string in variable
// substitution, falsy in conditions, empty sequence in loops.
type resolveState int

const (
	stateResolved resolveState = iota
	stateDefault
	stateAbsent
)

// resolvedValue is the result of resolving a path expression.
type resolvedValue struct {
	state resolveState
	value interface{}
}

func (r resolvedValue) found() bool {
	return r.state != stateAbsent
}

// substitution returns the string emitted for a variable directive.
func (r resolvedValue) substitution() string {
	if r.state == stateAbsent {
		return ""
	}
	return formatValue(r.value)
}

// resolve evaluates a path expression, optionally carrying a default filter,
// against a scope. The expression has the form
//
//	path.to.value
//	path.to.value | default:'fallback'
//
// The path is split on '.' into segments; an all-digit segment indexes into
// a sequence (zero-based), any other segment keys into a mapping. A missing
// key, out-of-range index, or descent into a scalar fails resolution: the
// default is returned if one was given, otherwise an absent value.
func resolve(expr string, scope interface{}) resolvedValue {
	path, def, hasDefault := splitDefault(expr)

	current := scope
	for _, segment := range strings.Split(path, ".") {
		segment = strings.TrimSpace(segment)
		next, ok := descend(current, segment)
		if !ok {
			if hasDefault {
				return resolvedValue{state: stateDefault, value: def}
			}
			return resolvedValue{state: stateAbsent}
		}
		current = next
	}

	return resolvedValue{state: stateResolved, value: current}
}

// splitDefault separates the path portion from an optional default filter
// and strips surrounding quotes from the default literal.
func splitDefault(expr string) (path, def string, has bool) {
	parts := strings.SplitN(expr, "|", 2)
	path = strings.TrimSpace(parts[0])

	if len(parts) > 1 {
		if _, after, ok := strings.Cut(parts[1], "default:"); ok {
			def = strings.Trim(strings.TrimSpace(after), `"'`)
			has = true
		}
	}

	return path, def, has
}

// descend walks one path segment into a value.
func descend(current interface{}, segment string) (interface{}, bool) {
	if seq, ok := asSequence(current); ok && isDigits(segment) {
		index := 0
		for _, c := range segment {
			index = index*10 + int(c-'0')
		}
		if index >= len(seq) {
			return nil, false
		}
		return seq[index], true
	}

	switch m := current.(type) {
	case Context:
		v, ok := m[segment]
		return v, ok
	case map[string]interface{}:
		v, ok := m[segment]
		return v, ok
	case map[string]string:
		v, ok := m[segment]
		return v, ok
	}

	return nil, false
}

// asSequence reports whether a value is an indexable sequence, without the
// singleton coercion toSequence applies for loops.
func asSequence(val interface{}) ([]interface{}, bool) {
	switch val.(type) {
	case []interface{}, []string, []int, []float64, []map[string]interface{}:
		return toSequence(val), true
	}
	return nil, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
