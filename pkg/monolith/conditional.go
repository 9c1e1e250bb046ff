package monolith

import "regexp"

// Conditional groups are delimited by tags carrying a numeric block id:
//
//	{%1 if cond %} ... {%1 elseif other %} ... {%1 else %} ... {%1 endif %}
//
// The id pairs an opening tag with its branch and closing tags; without it,
// non-greedy matching could not tell an inner endif from the one belonging
// to an enclosing block. Go's regexp has no backreferences, so the opening
// tag is located first and an id-specific pattern is built from it.
var ifOpenPattern = regexp.MustCompile(`\{%(\d+)\s+if\s`)

func ifGroupPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\{%` + id + `\s+if\s+(.*?)\s*%\}(.*?)\{%` + id + `\s+endif\s*%\}`)
}

func branchPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\{%` + id + `\s+elseif\s+(.*?)\s*%\}|\{%` + id + `\s+else\s*%\}`)
}

// expandConditionals reduces every complete if...endif group in the template
// to its selected branch body, evaluated against the scope. Tags that cannot
// be paired by id are left verbatim in the output; mismatched markup degrades
// rather than failing the render.
func expandConditionals(template string, scope interface{}) string {
	searchFrom := 0
	for {
		loc := ifOpenPattern.FindStringSubmatchIndex(template[searchFrom:])
		if loc == nil {
			return template
		}
		openStart := searchFrom + loc[0]
		id := template[searchFrom+loc[2] : searchFrom+loc[3]]

		m := ifGroupPattern(id).FindStringSubmatchIndex(template[openStart:])
		if m == nil || m[0] != 0 {
			// No endif with this id: skip the opening tag and keep scanning.
			searchFrom += loc[1]
			continue
		}

		condition := template[openStart+m[2] : openStart+m[3]]
		body := template[openStart+m[4] : openStart+m[5]]

		selected := selectBranch(id, condition, body, scope)
		template = template[:openStart] + selected + template[openStart+m[1]:]
		searchFrom = 0
	}
}

// selectBranch expands nested groups inside the body first (so their tags
// never reach the branch splitting below), then splits the body into
// if/elseif/else branches by same-id tags and returns the body of the first
// branch whose condition holds. No matching branch and no else yields "".
func selectBranch(id, condition, body string, scope interface{}) string {
	body = expandConditionals(body, scope)

	conditions := []string{condition}
	isElse := []bool{false}
	var bodies []string

	prev := 0
	for _, m := range branchPattern(id).FindAllStringSubmatchIndex(body, -1) {
		bodies = append(bodies, body[prev:m[0]])
		if m[2] >= 0 {
			conditions = append(conditions, body[m[2]:m[3]])
			isElse = append(isElse, false)
		} else {
			conditions = append(conditions, "")
			isElse = append(isElse, true)
		}
		prev = m[1]
	}
	bodies = append(bodies, body[prev:])

	for i, cond := range conditions {
		if isElse[i] || evaluateCondition(cond, scope) {
			return bodies[i]
		}
	}
	return ""
}
