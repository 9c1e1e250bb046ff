package monolith

import (
	"regexp"
	"strings"
)

// Loop groups use the same block-id pairing as conditionals:
//
//	{%1 for item in items %} ... {%1 endfor %}
var forOpenPattern = regexp.MustCompile(`\{%(\d+)\s+for\s+(\w+)\s+in\s+([\w|.]+)\s*%\}`)

func forGroupPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\{%` + id + `\s+for\s+(\w+)\s+in\s+([\w|.]+)\s*%\}(.*?)\{%` + id + `\s+endfor\s*%\}`)
}

// expandLoops replaces every complete for...endfor group with its body
// expanded once per element of the resolved iterable.
//
// Each iteration runs in a fresh scope containing only the loop variable;
// the enclosing scope is deliberately not visible inside the body. Nested
// loops expand against that child scope, and variable substitution of the
// body happens against it too, so nothing from outside the loop can leak in.
func expandLoops(template string, scope interface{}) string {
	searchFrom := 0
	for {
		loc := forOpenPattern.FindStringSubmatchIndex(template[searchFrom:])
		if loc == nil {
			return template
		}
		openStart := searchFrom + loc[0]
		id := template[searchFrom+loc[2] : searchFrom+loc[3]]

		m := forGroupPattern(id).FindStringSubmatchIndex(template[openStart:])
		if m == nil || m[0] != 0 {
			// No endfor with this id: the tag stays verbatim.
			searchFrom += loc[1]
			continue
		}

		varName := template[openStart+m[2] : openStart+m[3]]
		pathExpr := template[openStart+m[4] : openStart+m[5]]
		body := template[openStart+m[6] : openStart+m[7]]

		template = template[:openStart] + iterate(varName, pathExpr, body, scope) + template[openStart+m[1]:]
		searchFrom = 0
	}
}

// iterate renders a loop body once per element. An iterable that fails to
// resolve is treated as empty; a non-sequence value is treated as a
// one-element sequence, so {%N for x in scalar %} runs exactly once.
func iterate(varName, pathExpr, body string, scope interface{}) string {
	rv := resolve(pathExpr, scope)
	if !rv.found() {
		return ""
	}

	var out strings.Builder
	for _, element := range toSequence(rv.value) {
		child := Context{varName: element}
		expanded := expandLoops(body, child)
		out.WriteString(substituteVariables(expanded, child))
	}
	return out.String()
}
