package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/exedev/humanize/internal/chat"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	userLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	assistantLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("114"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)

const minViewportHeight = 3

// layout recomputes component dimensions after a resize.
func (m *Model) layout() {
	contentWidth := m.width - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	taHeight := m.height / 2
	if taHeight > 12 {
		taHeight = 12
	}
	if taHeight < 3 {
		taHeight = 3
	}
	m.textarea.SetWidth(contentWidth)
	m.textarea.SetHeight(taHeight)
	m.input.Width = contentWidth - 4

	// Header, separators, composer, and help line share the screen with
	// the transcript.
	chrome := taHeight + 5
	vpHeight := m.height - chrome
	if vpHeight < minViewportHeight {
		vpHeight = minViewportHeight
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
}

// refreshTranscript re-renders the conversation store into the viewport.
// The viewport is replayed from the store on every change, so its content
// always reflects exactly what the controller committed.
func (m *Model) refreshTranscript() {
	msgs := m.ctrl.Conversation().Messages()
	if len(msgs) == 0 {
		m.viewport.SetContent(mutedStyle.Render("No turns yet. Paste an article below and press ctrl+s."))
		return
	}

	wrap := lipgloss.NewStyle().Width(m.viewport.Width)
	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(labelFor(msg.Role))
		b.WriteString("\n")
		b.WriteString(wrap.Render(msg.Content))
	}
	m.viewport.SetContent(b.String())
}

func labelFor(r chat.Role) string {
	if r == chat.RoleUser {
		return userLabelStyle.Render(r.DisplayName())
	}
	return assistantLabelStyle.Render(r.DisplayName())
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := headerStyle.Render(
		runewidth.Truncate("AI Article Humanizer · "+m.currentModel(), m.width-1, "…"))

	var sections []string
	sections = append(sections, header, "", m.viewport.View(), "")

	if m.warning != "" {
		sections = append(sections, warningStyle.Render("⚠ "+m.warning))
	}
	if m.errText != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.errText))
	}

	switch m.state {
	case stateCompose:
		sections = append(sections,
			m.textarea.View(),
			mutedStyle.Render("ctrl+s polish · tab switch model · esc quit"))
	case stateWaiting:
		sections = append(sections,
			m.spinner.View()+mutedStyle.Render(" Polishing with "+m.currentModel()+"..."))
	case stateChat:
		sections = append(sections,
			m.input.View(),
			mutedStyle.Render("enter send · tab switch model · ↑/↓ scroll · esc quit"))
	}

	return strings.Join(sections, "\n")
}
