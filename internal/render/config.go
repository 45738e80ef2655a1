package render

import (
	"os"

	"github.com/diogo/sopchat/internal/config"
)

// LoadOptionsFromConfig loads render options from user configuration.
// The GLAMOUR_STYLE environment variable takes precedence over the config
// file for the style.
func LoadOptionsFromConfig() Options {
	opts := DefaultOptions()

	cfg, err := config.LoadConfig()
	if err == nil {
		md := cfg.Markdown
		if md.Style != "" {
			opts.Style = md.Style
		}
		opts.EnableEmoji = md.EnableEmoji
		opts.PreserveNewLines = md.PreserveNewLines
		opts.TableWrap = md.TableWrap
	}

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}

// LoadOptionsFromConfigWithWidth loads options from config with a specific width.
func LoadOptionsFromConfigWithWidth(width int) Options {
	opts := LoadOptionsFromConfig()
	opts.Width = width
	return opts
}
