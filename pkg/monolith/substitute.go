package monolith

import "regexp"

var variablePattern = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)

// substituteVariables replaces every {{ ... }} directive with its resolved
// value. A path that cannot be resolved renders as its declared default, or
// as the empty string when no default filter was given.
func substituteVariables(template string, scope interface{}) string {
	return variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		expr := variablePattern.FindStringSubmatch(match)[1]
		return resolve(expr, scope).substitution()
	})
}
