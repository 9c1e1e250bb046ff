package monolith

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var includePattern = regexp.MustCompile(`\{%\s*include\s*"(.*?)"\s*%\}`)

// expandIncludes runs once, before any other expansion, over the literal
// template text. Every occurrence of each distinct include directive is
// replaced with the raw content of the named partial file. A missing partial
// leaves its directive in place. Included content is not scanned for further
// includes, but it does flow through the later conditional, loop, and
// variable passes.
func (e *Engine) expandIncludes(template string) string {
	seen := make(map[string]bool)

	for _, m := range includePattern.FindAllStringSubmatch(template, -1) {
		directive, name := m[0], m[1]
		if seen[directive] {
			continue
		}
		seen[directive] = true

		content, ok := e.readPartial(name)
		if !ok {
			e.logger.Debug("partial not found, leaving include directive in place",
				zap.String("partial", name))
			continue
		}
		template = strings.ReplaceAll(template, directive, content)
	}

	return template
}
