package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/diogo/sopchat/internal/config"
	apierrors "github.com/diogo/sopchat/internal/errors"
	"github.com/diogo/sopchat/internal/logging"
	"github.com/diogo/sopchat/internal/render"
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)

	sourcesHeaderStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Bold(true)

	sourceItemStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// runQuery executes a single query and outputs the answer.
// If rawOutput is true, only the raw answer text is printed without decoration.
func runQuery(question string, rawOutput bool) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	cfg, _ := config.LoadConfig()

	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Searching knowledge base")
		spin.start()
	}

	startTime := time.Now()
	resp, err := client.Query(context.Background(), question)
	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Query failed"))
		}
		return fmt.Errorf("query failed: %w", err)
	}
	if !rawOutput {
		spin.stopWithSuccess("Done")
	}

	logging.Logger.Debug("query answered",
		zap.Duration("elapsed", time.Since(startTime)),
		zap.Int("sources", len(resp.Sources)),
	)

	// Raw output mode: answer text only
	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(resp.Answer), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(resp.Answer)
		return nil
	}

	// Decorated output mode (TTY)
	fmt.Fprintln(os.Stderr)

	// Copy to clipboard if enabled in config
	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(resp.Answer); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorErr).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	// Output to file if specified
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(resp.Answer), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Answer saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	// Get terminal width for proper formatting
	termWidth := getTerminalWidth()
	bubbleWidth := termWidth - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}
	contentWidth := bubbleWidth - 4

	// Print assistant label (matches the chat TUI)
	label := assistantLabelStyle.Render("✦ Assistant")
	fmt.Println(label)

	// Render markdown for terminal output using user config
	renderOpts := render.LoadOptionsFromConfigWithWidth(contentWidth)
	rendered, err := render.Markdown(resp.Answer, renderOpts)
	if err != nil {
		rendered = resp.Answer
	}
	// Trim trailing newlines from glamour
	rendered = strings.TrimRight(rendered, "\n")

	bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
	fmt.Println(bubble)

	// Citation list; an empty list renders nothing
	if resp.HasSources() {
		fmt.Println(sourcesHeaderStyle.Render("Sources"))
		for _, source := range resp.Sources {
			fmt.Println(sourceItemStyle.Render("  • " + source))
		}
	}

	return nil
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorErr)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %s", context, apierrors.DisplayMessage(err))))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	// Show response body if available (may carry validation details)
	if body := apierrors.GetResponseBody(err); body != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n\n  %s", strings.ReplaceAll(body, "\n", "\n  "))))
	} else if apierrors.IsNetworkError(err) {
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running and " +
			config.EnvBaseURL + " points at it"))
	}

	return sb.String()
}
