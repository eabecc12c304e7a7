package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/scoring"
)

// Stage is the current step of an assessment run.
type Stage string

const (
	StageInstructions Stage = "instructions"
	StageCollecting   Stage = "collecting"
	StageConfirming   Stage = "confirming"
	StageScored       Stage = "scored"
)

// MissingAnswersError reports which questions still need an answer
// before the session may leave the collecting stage. The session is
// left unchanged.
type MissingAnswersError struct {
	Keys []string
}

func (e *MissingAnswersError) Error() string {
	return fmt.Sprintf("unanswered questions: %s", strings.Join(e.Keys, ", "))
}

// InvalidTransitionError reports an action that is not legal in the
// session's current stage.
type InvalidTransitionError struct {
	Stage  Stage
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while in stage %q", e.Action, e.Stage)
}

// Session is one end-to-end run of a battery: instructions (optional),
// answer collection, confirmation, scoring. It owns the in-progress
// answer map and triggers the scoring engine exactly once per completed
// pass. Sessions are plain values with no global state, so they run
// headless in tests; each concurrent assessment must own its own
// instance.
type Session struct {
	id      string
	battery *battery.Battery
	stage   Stage
	answers scoring.AnswerMap
	result  *scoring.Result
	started time.Time
}

// New creates a session for the given battery type. Batteries with
// instructions open on the instructions stage; the rest open directly
// in collection.
func New(t battery.Type) (*Session, error) {
	b, err := battery.Get(t)
	if err != nil {
		return nil, err
	}
	stage := StageCollecting
	if b.Instructions != "" {
		stage = StageInstructions
	}
	return &Session{
		id:      uuid.NewString(),
		battery: b,
		stage:   stage,
		answers: scoring.AnswerMap{},
		started: time.Now(),
	}, nil
}

// ID is the unique identifier of this run.
func (s *Session) ID() string { return s.id }

// Battery returns the static configuration this session runs.
func (s *Session) Battery() *battery.Battery { return s.battery }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// StartedAt is when the session was created.
func (s *Session) StartedAt() time.Time { return s.started }

// Answer returns the recorded answer for key ("" if unanswered).
func (s *Session) Answer(key string) string { return s.answers[key] }

// Answers returns a copy of the answer map.
func (s *Session) Answers() scoring.AnswerMap {
	out := make(scoring.AnswerMap, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Result returns the score of a completed run, or nil in every stage
// other than scored.
func (s *Session) Result() *scoring.Result { return s.result }

// SetAnswer records one answer. Only legal while collecting.
func (s *Session) SetAnswer(key, value string) error {
	if s.stage != StageCollecting {
		return &InvalidTransitionError{Stage: s.stage, Action: "record an answer"}
	}
	if s.battery.Question(key) == nil {
		return fmt.Errorf("battery %q has no question %q", s.battery.ID, key)
	}
	s.answers[key] = value
	return nil
}

// SetAnswers replaces the whole answer map. Only legal while
// collecting; unknown keys are rejected and nothing is changed.
func (s *Session) SetAnswers(answers map[string]string) error {
	if s.stage != StageCollecting {
		return &InvalidTransitionError{Stage: s.stage, Action: "record answers"}
	}
	for k := range answers {
		if s.battery.Question(k) == nil {
			return fmt.Errorf("battery %q has no question %q", s.battery.ID, k)
		}
	}
	replacement := make(scoring.AnswerMap, len(answers))
	for k, v := range answers {
		replacement[k] = v
	}
	s.answers = replacement
	return nil
}

// Advance moves the session forward one stage. Leaving collection
// requires a non-blank answer for every catalog question; otherwise a
// MissingAnswersError lists the gaps and the stage does not change.
// Advancing out of confirmation runs the scoring engine and stores the
// result — the only path that produces one.
func (s *Session) Advance() error {
	switch s.stage {
	case StageInstructions:
		s.stage = StageCollecting
		return nil

	case StageCollecting:
		if missing := s.missingKeys(); len(missing) > 0 {
			return &MissingAnswersError{Keys: missing}
		}
		s.stage = StageConfirming
		return nil

	case StageConfirming:
		r := scoring.Score(s.answers, s.battery.Criteria)
		r.Interpretation = scoring.Interpret(r.Total, s.battery.Bands)
		s.result = &r
		s.stage = StageScored
		return nil

	default:
		return &InvalidTransitionError{Stage: s.stage, Action: "advance"}
	}
}

// Back returns from confirmation to collection without touching the
// answers. It is not legal anywhere else; repeating a scored session
// goes through Retake.
func (s *Session) Back() error {
	if s.stage != StageConfirming {
		return &InvalidTransitionError{Stage: s.stage, Action: "go back"}
	}
	s.stage = StageCollecting
	return nil
}

// Retake clears the answers and result of a scored session and returns
// it to collection for a fresh run. Stale partial answers are never
// kept.
func (s *Session) Retake() error {
	if s.stage != StageScored {
		return &InvalidTransitionError{Stage: s.stage, Action: "retake"}
	}
	s.answers = scoring.AnswerMap{}
	s.result = nil
	s.stage = StageCollecting
	return nil
}

// missingKeys lists catalog keys without a non-blank answer, in
// catalog order.
func (s *Session) missingKeys() []string {
	var missing []string
	for _, q := range s.battery.Questions {
		if strings.TrimSpace(s.answers[q.Key]) == "" {
			missing = append(missing, q.Key)
		}
	}
	return missing
}
