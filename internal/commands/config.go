package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/sopchat/internal/config"
)

// configCmd manages persistent settings
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sopchat configuration",
	Long: `View and change settings stored in ` + "`~/.sopchat/config.json`" + `.

Keys:
  base-url           Backend base URL
  top-k              Number of document chunks retrieved per query
  verbose            Enable debug logging (true/false)
  copy-to-clipboard  Copy answers to the clipboard (true/false)
  markdown-style     Glamour style for rendered answers (dark, light, notty, ...)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path, _ := config.GetConfigPath()
		dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)
		keyStyle := lipgloss.NewStyle().Foreground(colorPrimary)

		fmt.Println(dimStyle.Render("Config file: " + path))
		fmt.Printf("%s %s\n", keyStyle.Render("base-url:"), cfg.BaseURL)
		fmt.Printf("%s %d\n", keyStyle.Render("top-k:"), cfg.TopK)
		fmt.Printf("%s %v\n", keyStyle.Render("verbose:"), cfg.Verbose)
		fmt.Printf("%s %v\n", keyStyle.Render("copy-to-clipboard:"), cfg.CopyToClipboard)
		fmt.Printf("%s %s\n", keyStyle.Render("markdown-style:"), cfg.Markdown.Style)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		key, value := args[0], args[1]
		switch key {
		case "base-url":
			cfg.BaseURL = value
		case "top-k":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("top-k must be a positive integer, got %q", value)
			}
			cfg.TopK = n
		case "verbose":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("verbose must be true or false, got %q", value)
			}
			cfg.Verbose = b
		case "copy-to-clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("copy-to-clipboard must be true or false, got %q", value)
			}
			cfg.CopyToClipboard = b
		case "markdown-style":
			cfg.Markdown.Style = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		successStyle := lipgloss.NewStyle().Foreground(colorSuccess)
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ %s = %s", key, value)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
