package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nReturns are accepted within **30 days**.", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("Rendered output missing heading text: %q", out)
	}
	if !strings.Contains(out, "30 days") {
		t.Errorf("Rendered output missing body text: %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("plain text", 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() error = %v", err)
	}
	if out == "" {
		t.Error("Expected non-empty output")
	}
}

func TestMarkdownEmptyContent(t *testing.T) {
	if _, err := Markdown("", DefaultOptions()); err != nil {
		t.Errorf("Markdown(\"\") error = %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("Width = %d, want 80", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark", opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines || !opts.TableWrap {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
}

func TestOptionsWith(t *testing.T) {
	opts := DefaultOptions().WithWidth(120).WithStyle("light")

	if opts.Width != 120 {
		t.Errorf("Width = %d, want 120", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("Style = %q, want light", opts.Style)
	}
}

func TestRendererPoolReuse(t *testing.T) {
	ClearCache()

	opts := DefaultOptions()
	if _, err := Markdown("one", opts); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if _, err := Markdown("two", opts); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}

	if got := CacheSize(); got != 1 {
		t.Errorf("CacheSize() = %d, want 1 for identical options", got)
	}

	if _, err := Markdown("three", opts.WithWidth(40)); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if got := CacheSize(); got != 2 {
		t.Errorf("CacheSize() = %d, want 2 after a second option set", got)
	}
}

func TestLoadOptionsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GLAMOUR_STYLE", "")

	opts := LoadOptionsFromConfig()
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark", opts.Style)
	}

	t.Setenv("GLAMOUR_STYLE", "light")
	opts = LoadOptionsFromConfig()
	if opts.Style != "light" {
		t.Errorf("Style = %q, want env override light", opts.Style)
	}
}

func TestLoadOptionsFromConfigWithWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := LoadOptionsFromConfigWithWidth(60)
	if opts.Width != 60 {
		t.Errorf("Width = %d, want 60", opts.Width)
	}
}
