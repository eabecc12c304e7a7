package scoring

import (
	"strings"
	"testing"
)

// yes builds a pass/fail criterion that passes on the answer "sí".
func yes(key string, points int) Criterion {
	return Criterion{
		Key:    key,
		Points: points,
		Evaluate: func(answer string) Credit {
			return Bool(strings.TrimSpace(answer) == "sí")
		},
	}
}

func testCriteria() []Criterion {
	return []Criterion{
		yes("a", 5),
		yes("b", 3),
		{Key: "c", Points: 4, Evaluate: func(answer string) Credit {
			// One point per letter x, up to the item weight.
			return Partial(strings.Count(answer, "x"))
		}},
	}
}

func TestCreditPoints(t *testing.T) {
	tests := []struct {
		name   string
		credit Credit
		full   int
		want   int
	}{
		{"pass earns full weight", Bool(true), 5, 5},
		{"fail earns zero", Bool(false), 5, 0},
		{"partial ignores weight", Partial(2), 5, 2},
		{"partial zero", Partial(0), 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.credit.Points(tt.full); got != tt.want {
				t.Errorf("Points(%d) = %d, want %d", tt.full, got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerMap
		want    int
	}{
		{"all correct", AnswerMap{"a": "sí", "b": "sí", "c": "xxxx"}, 12},
		{"all wrong", AnswerMap{"a": "no", "b": "no", "c": "zz"}, 0},
		{"empty map", AnswerMap{}, 0},
		{"nil map", nil, 0},
		{"partial credit", AnswerMap{"a": "sí", "c": "xx"}, 7},
		{"missing answers earn zero", AnswerMap{"b": "sí"}, 3},
		{"unknown keys ignored", AnswerMap{"a": "sí", "zz": "sí"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(tt.answers, testCriteria())
			if r.Total != tt.want {
				t.Errorf("Total = %d, want %d", r.Total, tt.want)
			}
			if r.Max != 12 {
				t.Errorf("Max = %d, want 12", r.Max)
			}
			if r.Total < 0 || r.Total > r.Max {
				t.Errorf("Total %d out of [0, %d]", r.Total, r.Max)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	answers := AnswerMap{"a": "sí", "c": "xxx"}
	first := Score(answers, testCriteria())
	second := Score(answers, testCriteria())
	if first != second {
		t.Errorf("repeated scoring differs: %+v vs %+v", first, second)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	answers := AnswerMap{"a": "sí", "b": "sí", "c": "x"}
	criteria := testCriteria()
	forward := Score(answers, criteria)

	reversed := make([]Criterion, len(criteria))
	for i, c := range criteria {
		reversed[len(criteria)-1-i] = c
	}
	backward := Score(answers, reversed)

	if forward.Total != backward.Total || forward.Max != backward.Max {
		t.Errorf("criteria order changed the result: %+v vs %+v", forward, backward)
	}
}

func TestScoreMonotonic(t *testing.T) {
	// Correcting one more answer never lowers the total.
	base := AnswerMap{"a": "sí"}
	more := AnswerMap{"a": "sí", "b": "sí"}
	if Score(more, testCriteria()).Total < Score(base, testCriteria()).Total {
		t.Error("adding a correct answer lowered the total")
	}
}

func TestInterpret(t *testing.T) {
	bands := []Band{
		{Min: 0, Label: "bajo"},
		{Min: 10, Label: "medio"},
		{Min: 20, Label: "alto"},
	}

	tests := []struct {
		total int
		want  string
	}{
		{0, "bajo"},
		{9, "bajo"},
		{10, "medio"},
		{19, "medio"},
		{20, "alto"},
		{30, "alto"},
	}

	for _, tt := range tests {
		if got := Interpret(tt.total, bands); got != tt.want {
			t.Errorf("Interpret(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestInterpretEmptyBands(t *testing.T) {
	if got := Interpret(5, nil); got != "" {
		t.Errorf("Interpret with no bands = %q, want empty", got)
	}
}
