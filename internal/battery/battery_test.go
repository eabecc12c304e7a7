package battery

import (
	"strings"
	"testing"

	"github.com/nvaldes/cribado/internal/scoring"
)

// validBattery builds a minimal battery that passes Validate. Tests
// break individual fields from this baseline.
func validBattery() *Battery {
	return &Battery{
		ID:   "test",
		Name: "Prueba",
		Questions: []Question{
			{Key: "q1", Prompt: "¿Uno?", Input: InputFreeText},
			{Key: "q2", Prompt: "¿Dos?", Input: InputSingleChoice, Choices: []string{"Sí", "No"}},
		},
		Criteria: []scoring.Criterion{
			{Key: "q1", Points: 2, Evaluate: Phrase("uno")},
			{Key: "q2", Points: 1, Evaluate: Option("Sí")},
		},
		Bands: []scoring.Band{
			{Min: 0, Label: "bajo"},
			{Min: 2, Label: "alto"},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validBattery().Validate(); err != nil {
		t.Fatalf("valid battery rejected: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Battery)
		wantSub string
	}{
		{"empty ID", func(b *Battery) { b.ID = "" }, "ID is empty"},
		{"no questions", func(b *Battery) { b.Questions = nil }, "no questions"},
		{"no criteria", func(b *Battery) { b.Criteria = nil }, "no criteria"},
		{"duplicate key", func(b *Battery) { b.Questions[1].Key = "q1" }, "duplicate question key"},
		{"choice without choices", func(b *Battery) { b.Questions[1].Choices = nil }, "has no choices"},
		{"criterion without question", func(b *Battery) { b.Criteria[0].Key = "zz" }, "no matching question"},
		{"zero weight", func(b *Battery) { b.Criteria[0].Points = 0 }, "non-positive weight"},
		{"nil evaluate", func(b *Battery) { b.Criteria[0].Evaluate = nil }, "no evaluate function"},
		{"no bands", func(b *Battery) { b.Bands = nil }, "no interpretation bands"},
		{"first band nonzero", func(b *Battery) { b.Bands[0].Min = 1 }, "want 0"},
		{"bands not ascending", func(b *Battery) { b.Bands[1].Min = 0 }, "not ascending"},
		{"band beyond max", func(b *Battery) { b.Bands[1].Min = 99 }, "beyond max score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBattery()
			tt.mutate(b)
			err := b.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, typ := range []Type{TypeCognitive, TypeAffective} {
		b, err := Get(typ)
		if err != nil {
			t.Fatalf("Get(%q): %v", typ, err)
		}
		if err := b.Validate(); err != nil {
			t.Errorf("built-in %q invalid: %v", typ, err)
		}
	}
}

func TestBuiltinMaxScores(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{TypeCognitive, 30},
		{TypeAffective, 15},
	}
	for _, tt := range tests {
		b, err := Get(tt.typ)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.typ, err)
		}
		if got := b.MaxScore(); got != tt.want {
			t.Errorf("%q MaxScore = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown battery")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	b := validBattery()
	b.ID = TypeCognitive // collides with the built-in
	if err := Register(b); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestAllIncludesBuiltinsInOrder(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatalf("All() returned %d batteries, want at least 2", len(all))
	}
	if all[0].ID != TypeCognitive || all[1].ID != TypeAffective {
		t.Errorf("unexpected order: %q, %q", all[0].ID, all[1].ID)
	}
}

func TestQuestionLookup(t *testing.T) {
	b := validBattery()
	if q := b.Question("q2"); q == nil || q.Prompt != "¿Dos?" {
		t.Errorf("Question(q2) = %+v", q)
	}
	if q := b.Question("zz"); q != nil {
		t.Errorf("Question(zz) = %+v, want nil", q)
	}
}
