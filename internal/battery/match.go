package battery

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nvaldes/cribado/internal/scoring"
)

// accentFold strips the acute accents and diaeresis common in Spanish
// answers ("lápiz" and "lapiz" must score the same). Ñ is a distinct
// letter and is kept.
var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "é", "e", "è", "e", "í", "i", "ì", "i",
	"ó", "o", "ò", "o", "ú", "u", "ù", "u", "ü", "u",
)

// normalize lower-cases, folds accents, drops punctuation and collapses
// runs of whitespace, so free-text answers compare loosely.
func normalize(s string) string {
	s = accentFold.Replace(strings.ToLower(s))
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, r)
		}
	}
	return string(out)
}

// Phrase matches the answer against a fixed reference phrase after
// normalization. Used for repetition items.
func Phrase(reference string) scoring.EvalFunc {
	want := normalize(reference)
	return func(answer string) scoring.Credit {
		return scoring.Bool(normalize(answer) == want)
	}
}

// WordSet passes when every target word appears among the answer's
// whitespace-delimited tokens. Order is irrelevant and extra words do
// not disqualify — a deliberate leniency for word-recall items, kept
// as deployed.
func WordSet(words ...string) scoring.EvalFunc {
	targets := make([]string, len(words))
	for i, w := range words {
		targets[i] = normalize(w)
	}
	return func(answer string) scoring.Credit {
		tokens := tokenSet(answer)
		for _, w := range targets {
			if !tokens[w] {
				return scoring.Bool(false)
			}
		}
		return scoring.Bool(true)
	}
}

// SerialSubtraction checks the end value of repeatedly subtracting step
// from start. A non-numeric answer is a fail, never an error.
func SerialSubtraction(start, step, times int) scoring.EvalFunc {
	want := start - step*times
	return func(answer string) scoring.Credit {
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return scoring.Bool(false)
		}
		return scoring.Bool(n == want)
	}
}

// AnyKeyword passes when the answer contains at least one of the
// keywords, case- and accent-insensitively.
func AnyKeyword(keywords ...string) scoring.EvalFunc {
	wants := normalizeAll(keywords)
	return func(answer string) scoring.Credit {
		got := normalize(answer)
		for _, k := range wants {
			if strings.Contains(got, k) {
				return scoring.Bool(true)
			}
		}
		return scoring.Bool(false)
	}
}

// KeywordTally awards pointsEach for every keyword found in the answer.
// Partial-credit items (e.g. naming two shown objects) use this; the
// caller must size Criterion.Points as pointsEach * len(keywords).
func KeywordTally(pointsEach int, keywords ...string) scoring.EvalFunc {
	wants := normalizeAll(keywords)
	return func(answer string) scoring.Credit {
		got := normalize(answer)
		hits := 0
		for _, k := range wants {
			if strings.Contains(got, k) {
				hits++
			}
		}
		return scoring.Partial(hits * pointsEach)
	}
}

// Option matches the answer against a single expected choice value.
// The affective battery uses this with each question's
// depression-indicating answer: equality means the item counts toward
// the score, which is inclusion, not correctness.
func Option(expected string) scoring.EvalFunc {
	return func(answer string) scoring.Credit {
		return scoring.Bool(strings.EqualFold(strings.TrimSpace(answer), expected))
	}
}

func normalizeAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = normalize(w)
	}
	return out
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(normalize(s)) {
		set[tok] = true
	}
	return set
}
