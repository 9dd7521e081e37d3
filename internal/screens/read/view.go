package read

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/ui/layout"
	"github.com/abhisek/vidya/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.profile.XP, m.profile.StreakCount, m.profile.PendingSyncCount, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	switch m.phase {
	case phaseSelecting:
		content = m.renderSelection()
	case phaseReading:
		content = m.renderReading()
	case phaseTranscript:
		content = m.renderTranscript()
	case phaseSummary:
		content = m.renderSummary()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	if m.phase == phaseSelecting {
		return "Choose a Passage"
	}
	return m.module.Title
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseSelecting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseReading:
		return []layout.KeyHint{
			{Key: "Enter", Description: "I finished"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseTranscript:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Score"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
}

func (m Model) renderSelection() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(m.width).Render("Read aloud & earn XP"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	return b.String()
}

func (m Model) renderReading() string {
	var b strings.Builder

	timer := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Time left: %s", formatRemaining(m.attempt.Remaining)))
	b.WriteString(timer)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	card := theme.Card.Width(max(m.width-8, 20)).Render(strings.Join(m.attempt.Passage, "\n\n"))
	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Read the passage out loud. Press Enter when you finish."))

	return b.String()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.transcribing {
		b.WriteString(theme.Hint.Render("  Transcribing your reading..."))
		return b.String()
	}

	b.WriteString(theme.Subtitle.Width(m.width).Render("How did it go?"))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Leave empty if you read without help; you still earn XP."))

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(m.width).Render("Reading Complete!"))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("Accuracy: %d%%", int(m.result.AccuracyPercent))
	if !m.result.Measured {
		accuracy += " (estimated)"
	}

	lines := []string{
		fmt.Sprintf("Pace: %d words per minute", m.result.WordsPerMinute),
		accuracy,
	}
	if m.outcome != nil {
		lines = append(lines, fmt.Sprintf("XP Gained: +%d", m.outcome.XPGained))
		for _, badge := range m.outcome.NewBadges {
			lines = append(lines, "New badge: "+badge)
		}
		if m.outcome.LevelUp != nil {
			lines = append(lines, fmt.Sprintf("LEVEL UP! You reached level %d", m.outcome.LevelUp.NewLevel))
		}
	}
	if m.saveErr != nil {
		lines = append(lines, "Warning: progress could not be saved: "+m.saveErr.Error())
	}

	for _, line := range lines {
		b.WriteString(theme.Body.Width(m.width).Align(lipgloss.Center).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func formatRemaining(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
