// Package tui provides the terminal user interface for sopchat.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/sopchat/internal/errors"
)

// Fixed tokyonight-flavored palette.
var (
	colorBorder    = lipgloss.Color("#3b4261")
	colorPrimary   = lipgloss.Color("#7aa2f7")
	colorSecondary = lipgloss.Color("#9ece6a")
	colorAccent    = lipgloss.Color("#bb9af7")
	colorError     = lipgloss.Color("#f7768e")
	colorText      = lipgloss.Color("#c0caf5")
	colorTextDim   = lipgloss.Color("#565f89")
	colorTextMute  = lipgloss.Color("#3b4261")
)

// Gradient colors for the animated spinner
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"), // Red
	lipgloss.Color("#feca57"), // Yellow
	lipgloss.Color("#48dbfb"), // Cyan
	lipgloss.Color("#ff9ff3"), // Pink
	lipgloss.Color("#54a0ff"), // Blue
	lipgloss.Color("#5f27cd"), // Purple
	lipgloss.Color("#00d2d3"), // Teal
	lipgloss.Color("#1dd1a1"), // Green
}

var (
	// Header panel style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginBottom(1)

	// Title style for header
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle/backend URL style
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Hint text style
	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			Italic(true)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(1)

	// User message bubble
	userBubbleStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 1).
			MarginLeft(4)

	// User label style
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			MarginLeft(4)

	// Assistant message bubble
	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginRight(4)

	// Assistant label style
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Sources section styles
	sourcesSectionStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorTextDim).
				BorderLeft(true).
				PaddingLeft(1).
				MarginLeft(1)

	sourcesHeaderStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Bold(true)

	sourceItemStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginTop(1)

	// Input label style
	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginRight(1)

	// Loading/spinner style
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMute).
			MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Error banner style
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// Welcome styles
	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Align(lipgloss.Center)

	welcomeIconStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Align(lipgloss.Center)
)

// FormatError returns a styled error message with additional context.
// It extracts details from the structured error types when available.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	if status := errors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := errors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	switch {
	case errors.IsNetworkError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running and reachable"))
	case errors.GetHTTPStatus(err) == 422:
		sb.WriteString(dimStyle.Render("\n  Hint: The backend rejected the query. Try rephrasing it"))
	}

	return sb.String()
}
