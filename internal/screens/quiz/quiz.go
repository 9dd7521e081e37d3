// Package quiz drives a full study session: module selection, the
// question loop with tutor explanations, and the completion summary.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/assessment"
	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/learner"
	"github.com/abhisek/vidya/internal/progression"
	"github.com/abhisek/vidya/internal/tutor"
	"github.com/abhisek/vidya/internal/ui/components"
)

const explanationPollInterval = 200 * time.Millisecond

// Model is the root Bubble Tea model for a study session.
type Model struct {
	profile *learner.Profile
	ledger  *ledger.Ledger
	tutor   *tutor.Service // nil when no provider is configured

	modules []content.Module
	menu    components.Menu

	// reviewing is the content page shown between module selection and
	// the first question.
	reviewing bool

	session *assessment.Session
	active  content.Module
	choice  components.MultiChoice

	feedback    *assessment.Feedback
	explanation string
	aiThinking  bool

	result  *assessment.Result
	outcome *progression.Outcome
	saveErr error

	width  int
	height int
}

// New creates the study session model. The module list is already
// filtered for the learner's grade.
func New(profile *learner.Profile, led *ledger.Ledger, tut *tutor.Service, modules []content.Module) Model {
	items := make([]components.MenuItem, len(modules))
	for i, m := range modules {
		detail := m.Subject
		if profile.HasCompleted(m.ID) {
			detail += " · completed"
		}
		items[i] = components.MenuItem{Label: m.Title, Detail: detail}
	}

	return Model{
		profile: profile,
		ledger:  led,
		tutor:   tut,
		modules: modules,
		menu:    components.NewMenu(items),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case explanationTickMsg:
		return m.handleExplanationTick()

	case savedMsg:
		m.saveErr = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Leaving mid-session discards the run; completed progress is
		// already committed.
		return m, tea.Quit
	}

	switch {
	case m.session == nil && m.reviewing:
		if msg.String() == "enter" {
			return m.startSession()
		}
		return m, nil
	case m.session == nil:
		return m.updateSelection(msg)
	case m.session.Phase == assessment.PhaseAwaitingFeedback:
		if msg.String() == "enter" {
			return m.advance()
		}
		return m, nil
	case m.session.Phase == assessment.PhaseCompleted:
		if msg.String() == "enter" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m.updateQuestion(msg)
	}
}

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.active = m.modules[m.menu.Selected]
		m.reviewing = true
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	session, err := assessment.Start(m.active, m.profile.PreferredDifficulty, m.tutor)
	if err != nil {
		return m, nil
	}
	m.reviewing = false
	m.session = session
	m.choice = newChoice(session.Current())
	return m, nil
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)

	if m.choice.Submitted && m.feedback == nil {
		fb, err := m.session.SubmitAnswer(context.Background(), m.choice.ChosenIndex)
		if err != nil {
			return m, cmd
		}
		m.feedback = &fb
		m.explanation = ""

		if m.tutor != nil {
			m.aiThinking = true
			return m, tea.Batch(cmd, explanationTick())
		}
		m.explanation = tutor.Fallback(fb.Correct)
	}

	return m, cmd
}

func (m Model) handleExplanationTick() (tea.Model, tea.Cmd) {
	if m.session == nil || m.session.Phase != assessment.PhaseAwaitingFeedback {
		m.aiThinking = false
		return m, nil
	}

	if expl, done := m.session.Explanation(); done {
		m.aiThinking = false
		if expl != nil {
			m.explanation = expl.Text
		} else {
			// Generation failed; degrade to canned feedback.
			m.explanation = tutor.Fallback(m.feedback.Correct)
		}
		return m, nil
	}

	return m, explanationTick()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	result, err := m.session.Advance()
	if err != nil {
		return m, nil
	}

	m.feedback = nil
	m.explanation = ""
	m.aiThinking = false

	if result == nil {
		m.choice = newChoice(m.session.Current())
		return m, nil
	}

	m.result = result
	outcome := progression.RecordAssessment(m.profile, m.active, *result)
	m.outcome = &outcome

	return m, m.commit()
}

func (m Model) commit() tea.Cmd {
	profile := m.profile
	led := m.ledger
	return func() tea.Msg {
		return savedMsg{Err: led.Commit(context.Background(), profile)}
	}
}

func newChoice(q content.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
}

func explanationTick() tea.Cmd {
	return tea.Tick(explanationPollInterval, func(t time.Time) tea.Msg {
		return explanationTickMsg(t)
	})
}
