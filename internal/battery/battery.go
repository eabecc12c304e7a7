package battery

import (
	"fmt"
	"strings"

	"github.com/nvaldes/cribado/internal/scoring"
)

// InputKind tells the UI what widget a question needs.
type InputKind string

const (
	InputFreeText     InputKind = "free_text"
	InputSingleChoice InputKind = "single_choice"
)

// Question defines one catalog item. Immutable once registered.
type Question struct {
	Key     string
	Prompt  string
	Input   InputKind
	Choices []string // single_choice only, in display order
	Hint    string   // extra guidance rendered under the prompt
}

// Type identifies a battery in the registry.
type Type string

const (
	TypeCognitive Type = "cognitive"
	TypeAffective Type = "affective"
)

// Battery bundles the static configuration of one assessment: the
// ordered question catalog, the criterion set and the interpretation
// bands. All three are fixed at startup; sessions never mutate them.
type Battery struct {
	ID   Type
	Name string

	// Instructions is shown on its own stage before answer collection.
	// Empty means the battery has no instructions stage.
	Instructions string

	Questions []Question
	Criteria  []scoring.Criterion
	Bands     []scoring.Band
}

// MaxScore is the sum of all criterion weights.
func (b *Battery) MaxScore() int {
	sum := 0
	for _, c := range b.Criteria {
		sum += c.Points
	}
	return sum
}

// Question returns the catalog entry for key, or nil.
func (b *Battery) Question(key string) *Question {
	for i := range b.Questions {
		if b.Questions[i].Key == key {
			return &b.Questions[i]
		}
	}
	return nil
}

// Validate performs the structural checks that make a battery safe to
// score: unique question keys, every criterion bound to a question,
// positive weights, a non-empty criterion set, and bands that are
// sorted ascending and cover [0, MaxScore] starting at zero. Violations
// are configuration errors and abort startup; they are never surfaced
// mid-session.
func (b *Battery) Validate() error {
	var errs []string

	if b.ID == "" {
		errs = append(errs, "battery ID is empty")
	}
	if len(b.Questions) == 0 {
		errs = append(errs, "battery has no questions")
	}
	if len(b.Criteria) == 0 {
		errs = append(errs, "battery has no criteria")
	}

	keys := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if q.Key == "" {
			errs = append(errs, "question with empty key")
			continue
		}
		if keys[q.Key] {
			errs = append(errs, fmt.Sprintf("duplicate question key %q", q.Key))
		}
		keys[q.Key] = true
		if q.Input == InputSingleChoice && len(q.Choices) == 0 {
			errs = append(errs, fmt.Sprintf("question %q is single_choice but has no choices", q.Key))
		}
	}

	for _, c := range b.Criteria {
		if !keys[c.Key] {
			errs = append(errs, fmt.Sprintf("criterion %q has no matching question", c.Key))
		}
		if c.Points <= 0 {
			errs = append(errs, fmt.Sprintf("criterion %q has non-positive weight %d", c.Key, c.Points))
		}
		if c.Evaluate == nil {
			errs = append(errs, fmt.Sprintf("criterion %q has no evaluate function", c.Key))
		}
	}

	if len(b.Bands) == 0 {
		errs = append(errs, "battery has no interpretation bands")
	} else {
		if b.Bands[0].Min != 0 {
			errs = append(errs, fmt.Sprintf("lowest band starts at %d, want 0", b.Bands[0].Min))
		}
		max := b.MaxScore()
		for i := 1; i < len(b.Bands); i++ {
			if b.Bands[i].Min <= b.Bands[i-1].Min {
				errs = append(errs, fmt.Sprintf("bands not ascending at index %d", i))
			}
			if b.Bands[i].Min > max {
				errs = append(errs, fmt.Sprintf("band %q starts at %d, beyond max score %d", b.Bands[i].Label, b.Bands[i].Min, max))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("battery %q: %s", b.ID, strings.Join(errs, "; "))
	}
	return nil
}

// registry holds all batteries available to the application. Built-ins
// are seeded by init(); custom imports register at startup before any
// session is created.
var (
	registry = map[Type]*Battery{}
	order    []Type
)

// Register validates and installs a battery. Duplicate IDs are a
// configuration error.
func Register(b *Battery) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, exists := registry[b.ID]; exists {
		return fmt.Errorf("battery %q already registered", b.ID)
	}
	registry[b.ID] = b
	order = append(order, b.ID)
	return nil
}

// Get returns the battery registered under t.
func Get(t Type) (*Battery, error) {
	b, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("unknown battery %q", t)
	}
	return b, nil
}

// All returns every registered battery in registration order.
func All() []*Battery {
	out := make([]*Battery, 0, len(order))
	for _, t := range order {
		out = append(out, registry[t])
	}
	return out
}

func mustRegister(b *Battery) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

func init() {
	mustRegister(cognitive())
	mustRegister(affective())
}
