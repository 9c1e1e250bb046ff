// Package generator ties the pieces together: it loads a content document,
// renders its template, and writes the result to the configured output path.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arixsnow/monolith/internal/config"
	"github.com/arixsnow/monolith/pkg/monolith"
)

// Generator produces one rendered output file per content document.
type Generator struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates a generator.
func New(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// Generate renders the site described by the named content document and
// returns the path of the written output file.
func (g *Generator) Generate(contentName string) (string, error) {
	ctx, site, err := g.cfg.LoadContent(contentName)
	if err != nil {
		return "", err
	}

	g.logger.Info("content loaded",
		zap.String("content", contentName),
		zap.String("template_dir", site.TemplateDir),
		zap.String("template", site.Template),
	)

	engine := monolith.New(site.TemplateDir, monolith.WithLogger(g.logger))

	rendered, err := engine.Render(site.Template, ctx)
	if err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}

	if err := os.MkdirAll(site.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", site.OutputDir, err)
	}

	outPath := filepath.Join(site.OutputDir, site.OutputFile)
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("writing output file %q: %w", outPath, err)
	}

	g.logger.Info("site generated",
		zap.String("output", outPath),
		zap.Int("bytes", len(rendered)),
	)

	return outPath, nil
}
