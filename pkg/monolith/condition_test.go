package monolith

import "testing"

func TestEvaluateCondition(t *testing.T) {
	scope := Context{
		"x":       2,
		"count":   "5",
		"label":   "abc",
		"enabled": true,
		"hidden":  false,
		"empty":   "",
		"items":   []interface{}{1, 2},
		"none":    []interface{}{},
		"user": map[string]interface{}{
			"age": 30,
		},
	}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{name: "literal true", expr: "true", want: true},
		{name: "literal false", expr: "false", want: false},
		{name: "literal true uppercase", expr: "TRUE", want: true},

		{name: "numeric equality", expr: "x == 2", want: true},
		{name: "numeric inequality", expr: "x != 3", want: true},
		{name: "numeric string coerced", expr: "count == 5", want: true},
		{name: "quoted number equals bare number", expr: `"5" == 5`, want: true},
		{name: "greater or equal", expr: "user.age >= 30", want: true},
		{name: "less than", expr: "x < 1", want: false},
		{name: "operator priority means >= is not >", expr: "x >= 2", want: true},

		{name: "string equality is case-insensitive", expr: "label == 'ABC'", want: true},
		{name: "string inequality", expr: "label != 'xyz'", want: true},
		{name: "order operator on strings is false", expr: "label > 'abd'", want: false},
		{name: "order operator on strings is false either way", expr: "label < 'abd'", want: false},

		{name: "truthy path", expr: "enabled", want: true},
		{name: "false path", expr: "hidden", want: false},
		{name: "empty string is falsy", expr: "empty", want: false},
		{name: "non-empty sequence is truthy", expr: "items", want: true},
		{name: "empty sequence is falsy", expr: "none", want: false},
		{name: "absent path is falsy", expr: "nothing.here", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluateCondition(tt.expr, scope); got != tt.want {
				t.Errorf("evaluateCondition(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name  string
		left  interface{}
		op    string
		right interface{}
		want  bool
	}{
		{name: "float and int equal", left: 5.0, op: "==", right: 5, want: true},
		{name: "numeric strings compare numerically", left: "10", op: ">", right: "9", want: true},
		{name: "mixed falls back to strings", left: "abc", op: "==", right: "ABC", want: true},
		{name: "string order operator undefined", left: "abc", op: ">=", right: "abc", want: false},
		{name: "quoted right operand stripped", left: "active", op: "==", right: `"active"`, want: true},
		{name: "not equal on strings", left: "a", op: "!=", right: "b", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.left, tt.op, tt.right); got != tt.want {
				t.Errorf("compareValues(%v %s %v) = %v, want %v", tt.left, tt.op, tt.right, got, tt.want)
			}
		})
	}
}
