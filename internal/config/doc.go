// Package config loads the generator's process-level settings from the
// environment and the per-site content document from disk.
//
// The content document is a single YAML file that serves two roles: its full
// mapping is the root context templates render against, and a handful of
// well-known keys (template_path, template, outpath, render) select the
// template to render and where the output goes.
package config
