package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vidya/internal/assessment"
	"github.com/abhisek/vidya/internal/ui/components"
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
	switch {
	case m.session == nil && m.reviewing:
		content = m.renderContent()
	case m.session == nil:
		content = m.renderSelection()
	case m.session.Phase == assessment.PhaseCompleted:
		content = m.renderSummary()
	default:
		content = m.renderQuestion()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	switch {
	case m.session != nil:
		return m.session.ModuleTitle
	case m.reviewing:
		return m.active.Title
	default:
		return "Choose a Module"
	}
}

func (m Model) keyHints() []layout.KeyHint {
	switch {
	case m.session == nil && m.reviewing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Quit"},
		}
	case m.session == nil:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Quit"},
		}
	case m.session.Phase == assessment.PhaseAwaitingFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	case m.session.Phase == assessment.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (m Model) renderSelection() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(m.width).Render("Improve your skills & earn XP"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	return b.String()
}

func (m Model) renderContent() string {
	var b strings.Builder

	b.WriteString("\n")
	if m.active.Subtitle != "" {
		b.WriteString(theme.Subtitle.Width(m.width).Render(m.active.Subtitle))
		b.WriteString("\n\n")
	}

	basic := m.profile.Language == "basic"
	card := theme.Card.Width(max(m.width-8, 20)).Render(strings.Join(m.active.Passage(basic), "\n\n"))
	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Read carefully, then press Enter to start the quiz."))

	return b.String()
}

func (m Model) renderQuestion() string {
	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", m.session.Index+1, len(m.session.Questions)))
	score := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score: %d", m.session.Score))

	pad := m.width - lipgloss.Width(info) - lipgloss.Width(score) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(info + strings.Repeat(" ", pad) + score)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(m.session.Index)/float64(len(m.session.Questions)), false, m.width-8)
	b.WriteString("    " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(m.choice.View())

	if m.feedback != nil {
		b.WriteString("\n")
		if m.feedback.Correct {
			b.WriteString(theme.Correct.Render("  Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("  Not quite."))
		}
		b.WriteString("\n")

		if m.aiThinking {
			b.WriteString(theme.Hint.Render("\n  Thinking..."))
		} else if m.explanation != "" {
			card := theme.Card.Width(max(m.width-8, 20)).Render(
				theme.Hint.Render("“" + m.explanation + "”"))
			b.WriteString("\n" + card)
		}
	}

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(m.width).Render("Module Complete!"))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Score: %d / %d", m.result.Score, m.result.MaxScore),
		fmt.Sprintf("Accuracy: %d%%", int(m.result.MasteryRatio()*100)),
	}
	if m.outcome != nil {
		lines = append(lines, fmt.Sprintf("XP Gained: +%d", m.outcome.XPGained))
		lines = append(lines, fmt.Sprintf("Next difficulty: %s", m.outcome.NextTier))
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
