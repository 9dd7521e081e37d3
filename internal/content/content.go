package content

import (
	"errors"
	"fmt"
)

// Tier is a question difficulty tier. Tiers form a small ordered set;
// the difficulty policy moves a learner between them one session at a time.
type Tier string

const (
	TierEasy     Tier = "easy"
	TierStandard Tier = "standard"
	TierExpert   Tier = "expert"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierStandard, TierExpert:
		return true
	}
	return false
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID           string
	Text         string
	Options      []string
	CorrectIndex int
	Tier         Tier
}

// Module is a static content unit: reading paragraphs plus a quiz.
// Modules are loaded from the compiled-in catalog and never mutated.
type Module struct {
	ID       string
	Title    string
	Subtitle string
	Subject  string
	Grade    string

	// Content is the full reading text; BasicContent is the simplified
	// variant shown when the learner's language preference is "basic".
	Content      []string
	BasicContent []string

	Questions []Question

	// XPReward is granted once, on first completion of the module.
	XPReward int
}

// ErrUnknownModule is returned when a module id is not in the catalog.
var ErrUnknownModule = errors.New("unknown module")

// Get returns the module with the given id.
func Get(id string) (Module, error) {
	for _, m := range modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, id)
}

// Catalog returns all modules in catalog order.
func Catalog() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// ForGrade returns the modules available to a learner in the given grade.
// Modules without a grade tag are available to everyone.
func ForGrade(grade string) []Module {
	var out []Module
	for _, m := range modules {
		if m.Grade == "" || m.Grade == grade {
			out = append(out, m)
		}
	}
	return out
}

// QuestionsForTier returns the module's questions matching the tier.
// When the tier has no matching questions the full set is returned: a
// learner is never blocked from practicing a module for lack of
// tier-specific content.
func QuestionsForTier(m Module, tier Tier) []Question {
	var out []Question
	for _, q := range m.Questions {
		if q.Tier == tier {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		out = make([]Question, len(m.Questions))
		copy(out, m.Questions)
	}
	return out
}

// Passage returns the module's reading text in the requested variant,
// falling back to the full text when no simplified variant exists.
func (m Module) Passage(basic bool) []string {
	if basic && len(m.BasicContent) > 0 {
		return m.BasicContent
	}
	return m.Content
}
