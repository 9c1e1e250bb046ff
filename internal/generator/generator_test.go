package generator

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/arixsnow/monolith/internal/config"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	templateDir := filepath.Join(root, "templates")
	outputDir := filepath.Join(root, "out")
	for _, dir := range []string{contentDir, templateDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	doc := `
template_path: ` + templateDir + `
template: base.html
outpath: ` + outputDir + `
render: index.html
title: My Site
posts:
  - name: first
  - name: second
`
	if err := os.WriteFile(filepath.Join(contentDir, "content.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tpl := "<h1>{{ title }}</h1>{%1 for post in posts %}<li>{{ post.name }}</li>{%1 endfor %}"
	if err := os.WriteFile(filepath.Join(templateDir, "base.html"), []byte(tpl), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := New(&config.Config{ContentDir: contentDir, LogLevel: "info"}, zap.NewNop())

	outPath, err := gen.Generate("content.yaml")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if want := filepath.Join(outputDir, "index.html"); outPath != want {
		t.Errorf("Generate() path = %q, want %q", outPath, want)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "<h1>My Site</h1><li>first</li><li>second</li>"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestGenerateMissingContent(t *testing.T) {
	gen := New(&config.Config{ContentDir: t.TempDir(), LogLevel: "info"}, zap.NewNop())

	if _, err := gen.Generate("absent.yaml"); err == nil {
		t.Fatal("Generate() error = nil, want error for missing content document")
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatal(err)
	}

	doc := "template_path: " + filepath.Join(root, "templates") + "\n"
	if err := os.WriteFile(filepath.Join(contentDir, "content.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := New(&config.Config{ContentDir: contentDir, LogLevel: "info"}, zap.NewNop())

	if _, err := gen.Generate("content.yaml"); err == nil {
		t.Fatal("Generate() error = nil, want error for unreadable template")
	}
}
