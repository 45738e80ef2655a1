package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/sopchat/internal/models"
	"github.com/diogo/sopchat/internal/render"
	"github.com/diogo/sopchat/internal/session"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	responseMsg struct {
		resp *models.QueryResponse
	}
	errMsg struct {
		err error
	}
)

// Model represents the TUI state
type Model struct {
	client  session.QueryClient
	sess    *session.Session
	backend string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready          bool
	err            error
	animationFrame int // Frame counter for loading animation

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client session.QueryClient, backend string) Model {
	return newChatModel(client, session.New(), backend)
}

// NewChatModelWithSession creates a chat TUI model over an existing session
func NewChatModelWithSession(client session.QueryClient, sess *session.Session, backend string) Model {
	return newChatModel(client, sess, backend)
}

func newChatModel(client session.QueryClient, sess *session.Session, backend string) Model {
	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Ask about your documents..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:   client,
		sess:     sess,
		backend:  backend,
		textarea: ta,
		spinner:  s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// No cancellation: the busy gate releases only when the
			// in-flight request resolves.
			if !m.sess.Busy() {
				return m, tea.Quit
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())

			// Check for exit commands
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			// Begin rejects empty input and busy sessions silently
			if text, ok := m.sess.Begin(m.textarea.Value()); ok {
				m.err = nil
				m.animationFrame = 0
				m.textarea.Reset()
				m.updateViewport()
				m.viewport.GotoBottom()

				return m, tea.Batch(
					m.sendQuery(text),
					m.spinner.Tick,
					animationTick(),
				)
			}
		}

	case responseMsg:
		m.sess.Complete(msg.resp)
		m.updateViewport()
		m.viewport.GotoBottom()

	case errMsg:
		m.sess.Fail(msg.err)
		m.err = msg.err
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.sess.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.sess.Busy() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Update child components - only pass KeyMsg to textarea to prevent
	// escape sequence leaks
	if !m.sess.Busy() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("✦ SOP Chat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.backend),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if m.sess.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area
	var inputContent string
	if m.sess.Busy() {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	// Error banner
	if m.sess.LastError() != "" && m.err != nil {
		sections = append(sections, FormatError(m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("Welcome to SOP Chat")
	subtitle := welcomeStyle.Width(width).Render("Ask a question about your document base below")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	// Center vertically
	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)

		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Searching documents ")

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// sendQuery creates a command that runs the in-flight exchange
func (m Model) sendQuery(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Query(context.Background(), text)
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{resp: resp}
	}
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.sess.Transcript() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ Assistant")
			content.WriteString(label + "\n")

			// Render markdown content
			rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
			if err != nil {
				rendered = msg.Content
			}
			// Trim trailing newlines from glamour
			rendered = strings.TrimRight(rendered, "\n")

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(bubble)

			// Citations, omitted entirely when there are none
			if msg.HasSources() {
				content.WriteString("\n" + renderSources(msg.Sources, bubbleWidth))
			}
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderSources renders the citation list under an assistant message
func renderSources(sources []string, width int) string {
	var sb strings.Builder
	sb.WriteString(sourcesHeaderStyle.Render("Sources"))
	for _, source := range sources {
		sb.WriteString("\n" + sourceItemStyle.Render("• "+source))
	}
	return sourcesSectionStyle.Width(width - 2).Render(sb.String())
}

// RunChat starts the chat TUI
func RunChat(client session.QueryClient, backend string) error {
	m := NewChatModel(client, backend)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
