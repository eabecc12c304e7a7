package assessment

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/router"
	"github.com/nvaldes/cribado/internal/screen"
	"github.com/nvaldes/cribado/internal/session"
	"github.com/nvaldes/cribado/internal/store"
	"github.com/nvaldes/cribado/internal/ui/components"
	"github.com/nvaldes/cribado/internal/ui/layout"
)

// Screen runs one assessment session end to end. The session state
// machine owns the stage sequence; this screen only renders the
// current stage and forwards the examiner's input.
type Screen struct {
	sess    *session.Session
	results store.ResultRepo // nil disables persistence

	// collecting state
	index  int
	input  components.TextInput
	choice components.Choice

	statusMsg   string
	confirmQuit bool
	saveNote    string
	saved       bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a screen for a fresh session of the given battery.
func New(t battery.Type, results store.ResultRepo) (*Screen, error) {
	sess, err := session.New(t)
	if err != nil {
		return nil, err
	}
	s := &Screen{sess: sess, results: results}
	s.loadWidget()
	return s, nil
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return s.sess.Battery().Name
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "S", Description: "Abandonar"},
			{Key: "N", Description: "Continuar"},
		}
	}
	switch s.sess.Stage() {
	case session.StageInstructions:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Comenzar"},
			{Key: "Esc", Description: "Salir"},
		}
	case session.StageCollecting:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Siguiente"},
			{Key: "Shift+Tab", Description: "Anterior"},
			{Key: "Esc", Description: "Salir"},
		}
	case session.StageConfirming:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Puntuar"},
			{Key: "E", Description: "Editar"},
			{Key: "Esc", Description: "Salir"},
		}
	default:
		return []layout.KeyHint{
			{Key: "R", Description: "Repetir"},
			{Key: "Enter/Esc", Description: "Inicio"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateWidget(msg)
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "s", "y", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.Stage() {
	case session.StageInstructions:
		return s.updateInstructions(kmsg)
	case session.StageCollecting:
		return s.updateCollecting(msg, kmsg)
	case session.StageConfirming:
		return s.updateConfirming(kmsg)
	default:
		return s.updateScored(kmsg)
	}
}

func (s *Screen) updateInstructions(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true
	case "enter":
		_ = s.sess.Advance()
		s.loadWidget()
	}
	return s, nil
}

func (s *Screen) updateCollecting(msg tea.Msg, kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil

	case "shift+tab":
		s.recordAnswer()
		if s.index > 0 {
			s.index--
			s.loadWidget()
		}
		s.statusMsg = ""
		return s, nil

	case "enter":
		s.recordAnswer()
		if s.index < len(s.questions())-1 {
			s.index++
			s.loadWidget()
			s.statusMsg = ""
			return s, nil
		}
		// Last question: try to move to the confirmation stage.
		if err := s.sess.Advance(); err != nil {
			var missing *session.MissingAnswersError
			if errors.As(err, &missing) {
				s.jumpToKey(missing.Keys[0])
				s.statusMsg = fmt.Sprintf("Faltan %d respuestas", len(missing.Keys))
			} else {
				s.statusMsg = err.Error()
			}
			return s, nil
		}
		s.statusMsg = ""
		return s, nil
	}

	return s.updateWidget(msg)
}

func (s *Screen) updateConfirming(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true

	case "e":
		_ = s.sess.Back()
		s.index = 0
		s.loadWidget()

	case "enter":
		if err := s.sess.Advance(); err != nil {
			s.statusMsg = err.Error()
			return s, nil
		}
		s.persistResult()
	}
	return s, nil
}

func (s *Screen) updateScored(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "r":
		if err := s.sess.Retake(); err == nil {
			s.index = 0
			s.saved = false
			s.saveNote = ""
			s.statusMsg = ""
			s.loadWidget()
		}
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// updateWidget forwards non-navigation input to the active answer
// widget.
func (s *Screen) updateWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.sess.Stage() != session.StageCollecting {
		return s, nil
	}
	q := s.currentQuestion()
	if q == nil {
		return s, nil
	}
	var cmd tea.Cmd
	switch q.Input {
	case battery.InputSingleChoice:
		s.choice, cmd = s.choice.Update(msg)
	default:
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *Screen) questions() []battery.Question {
	return s.sess.Battery().Questions
}

func (s *Screen) currentQuestion() *battery.Question {
	qs := s.questions()
	if s.index < 0 || s.index >= len(qs) {
		return nil
	}
	return &qs[s.index]
}

// loadWidget builds the input widget for the current question,
// restoring any previously recorded answer.
func (s *Screen) loadWidget() {
	q := s.currentQuestion()
	if q == nil {
		return
	}
	prev := s.sess.Answer(q.Key)
	switch q.Input {
	case battery.InputSingleChoice:
		s.choice = components.NewChoice(q.Choices, prev)
	default:
		s.input = components.NewTextInput(q.Hint, prev)
	}
}

// recordAnswer pushes the widget value into the session.
func (s *Screen) recordAnswer() {
	q := s.currentQuestion()
	if q == nil {
		return
	}
	var value string
	switch q.Input {
	case battery.InputSingleChoice:
		value = s.choice.Value()
	default:
		value = s.input.Value()
	}
	_ = s.sess.SetAnswer(q.Key, value)
}

// jumpToKey positions collection on the question with the given key.
func (s *Screen) jumpToKey(key string) {
	for i, q := range s.questions() {
		if q.Key == key {
			s.index = i
			s.loadWidget()
			return
		}
	}
}

// persistResult stores the completed result. Persistence failures are
// surfaced on screen but never block the result display.
func (s *Screen) persistResult() {
	r := s.sess.Result()
	if r == nil || s.results == nil {
		return
	}
	b := s.sess.Battery()
	err := s.results.Save(context.Background(), &store.ResultRecord{
		SessionID:      s.sess.ID(),
		BatteryID:      string(b.ID),
		BatteryName:    b.Name,
		TotalScore:     r.Total,
		MaxScore:       r.Max,
		Interpretation: r.Interpretation,
		Answers:        s.sess.Answers(),
		CreatedAt:      s.sess.StartedAt(),
	})
	if err != nil {
		s.saveNote = "No se pudo guardar el resultado: " + err.Error()
		return
	}
	s.saved = true
	s.saveNote = "Resultado guardado"
}
