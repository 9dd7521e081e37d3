// Package read drives a timed read-aloud session: passage selection,
// the countdown while the learner reads, transcript capture, and the
// scored summary.
package read

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/fluency"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/learner"
	"github.com/abhisek/vidya/internal/progression"
	"github.com/abhisek/vidya/internal/speech"
	"github.com/abhisek/vidya/internal/ui/components"
)

const (
	readingAllotment = 60 * time.Second
	timerInterval    = time.Second
)

type phase int

const (
	phaseSelecting phase = iota
	phaseReading
	phaseTranscript
	phaseSummary
)

// Model is the root Bubble Tea model for a reading session.
type Model struct {
	profile    *learner.Profile
	ledger     *ledger.Ledger
	recognizer speech.Recognizer // nil when no recognizer is configured
	audioPath  string            // recorded attempt to transcribe, may be empty

	modules []content.Module
	menu    components.Menu

	phase   phase
	module  content.Module
	attempt *fluency.Attempt
	elapsed time.Duration

	input        components.TextInput
	transcribing bool

	result  *fluency.Result
	outcome *progression.Outcome
	saveErr error

	width  int
	height int
}

// New creates the reading session model. The module list is already
// filtered for the learner's grade.
func New(profile *learner.Profile, led *ledger.Ledger, rec speech.Recognizer, audioPath string, modules []content.Module) Model {
	items := make([]components.MenuItem, len(modules))
	for i, m := range modules {
		items[i] = components.MenuItem{Label: m.Title, Detail: m.Subject}
	}

	return Model{
		profile:    profile,
		ledger:     led,
		recognizer: rec,
		audioPath:  audioPath,
		modules:    modules,
		menu:       components.NewMenu(items),
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

	case timerTickMsg:
		return m.handleTimerTick()

	case transcriptMsg:
		return m.handleTranscript(msg)

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
	case "ctrl+c", "esc":
		// Leaving mid-attempt discards the run; scored attempts are
		// already committed.
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSelecting:
		return m.updateSelection(msg)
	case phaseReading:
		if msg.String() == "enter" || msg.String() == " " {
			return m.finishReading()
		}
		return m, nil
	case phaseTranscript:
		if m.transcribing {
			return m, nil
		}
		if msg.String() == "enter" {
			return m.finish(m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case phaseSummary:
		if msg.String() == "enter" || msg.String() == "q" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.module = m.modules[m.menu.Selected]
		basic := m.profile.Language == "basic"
		m.attempt = fluency.NewAttempt(m.module.Passage(basic), readingAllotment)
		m.phase = phaseReading
		return m, timerTick()
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) handleTimerTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseReading {
		return m, nil
	}
	if m.attempt.Tick(timerInterval) {
		return m.finishReading()
	}
	return m, timerTick()
}

// finishReading ends the countdown and moves on to transcript capture:
// recognizer first when a recording was supplied, typed entry otherwise.
func (m Model) finishReading() (tea.Model, tea.Cmd) {
	m.elapsed = m.attempt.Allotted - m.attempt.Remaining
	m.phase = phaseTranscript

	if m.recognizer != nil && m.audioPath != "" {
		m.transcribing = true
		return m, m.transcribeCmd()
	}

	m.input = components.NewTextInput("Type what you read, or press Enter to skip", false, 0)
	return m, m.input.Init()
}

func (m Model) handleTranscript(msg transcriptMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseTranscript {
		return m, nil
	}
	m.transcribing = false

	text := strings.TrimSpace(msg.Text)
	if msg.Err != nil || text == "" {
		// Recognition failed; fall back to a typed transcript.
		m.input = components.NewTextInput("Type what you read, or press Enter to skip", false, 0)
		return m, m.input.Init()
	}

	return m.finish(text)
}

func (m Model) finish(transcript string) (tea.Model, tea.Cmd) {
	res := m.attempt.Finish(m.elapsed, strings.TrimSpace(transcript))
	m.result = &res

	outcome := progression.RecordFluency(m.profile, res)
	m.outcome = &outcome
	m.phase = phaseSummary

	return m, m.commit()
}

func (m Model) commit() tea.Cmd {
	profile := m.profile
	led := m.ledger
	return func() tea.Msg {
		return savedMsg{Err: led.Commit(context.Background(), profile)}
	}
}

func (m Model) transcribeCmd() tea.Cmd {
	rec, path := m.recognizer, m.audioPath
	return func() tea.Msg {
		audio, err := os.ReadFile(path)
		if err != nil {
			return transcriptMsg{Err: err}
		}
		text, err := rec.Transcribe(context.Background(), audio, mimeTypeFor(path))
		return transcriptMsg{Text: text, Err: err}
	}
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/mp4"
	default:
		return "audio/wav"
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(timerInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
