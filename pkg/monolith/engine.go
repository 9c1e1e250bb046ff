package monolith

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Engine renders templates from a fixed template directory. It holds no
// mutable state across calls, so concurrent Render calls on different
// templates are safe.
type Engine struct {
	templateDir string
	logger      *zap.Logger
}

// Option represents a configuration option for the engine.
type Option func(*Engine)

// WithLogger returns an option that sets the engine's logger.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine that reads templates and partials from templateDir.
func New(templateDir string, opts ...Option) *Engine {
	if templateDir == "" {
		templateDir = "."
	}
	e := &Engine{
		templateDir: templateDir,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render reads the named template from the template directory and renders it
// against the context. An unreadable template file is the one fatal failure;
// the returned error identifies the template and the underlying cause.
func (e *Engine) Render(name string, ctx Context) (string, error) {
	raw, err := os.ReadFile(filepath.Join(e.templateDir, name))
	if err != nil {
		return "", NewTemplateError(name, err)
	}
	e.logger.Debug("rendering template",
		zap.String("template", name),
		zap.Int("length", len(raw)),
	)
	return e.renderText(string(raw), ctx), nil
}

// RenderString renders in-memory template text against the context. Include
// directives still resolve against the engine's template directory.
func (e *Engine) RenderString(template string, ctx Context) string {
	return e.renderText(template, ctx)
}

// renderText runs the fixed expansion pipeline: includes, then conditionals,
// then loops, then final variable substitution. The order is part of the
// contract: a partial may contain conditional, loop, and variable directives
// and they expand exactly as if written inline.
func (e *Engine) renderText(template string, ctx Context) string {
	template = e.expandIncludes(template)
	template = expandConditionals(template, ctx)
	template = expandLoops(template, ctx)
	return substituteVariables(template, ctx)
}

// readPartial reads a partial file from the template directory. Absence is
// non-fatal: the caller leaves the include directive unexpanded.
func (e *Engine) readPartial(name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(e.templateDir, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}
