package scoring

// AnswerMap maps a question key to the raw answer the patient gave.
// A map may be partial while an assessment is still being filled in;
// scoring is total over partial maps (missing keys earn zero credit).
type AnswerMap map[string]string

// Credit is the tagged outcome of evaluating one criterion:
// either pass/fail (full points or none) or a partial point award.
type Credit struct {
	partial bool
	pass    bool
	value   int
}

// Bool returns a pass/fail credit.
func Bool(pass bool) Credit {
	return Credit{pass: pass}
}

// Partial returns a partial credit worth the given points.
// The criterion author must keep the value within [0, Criterion.Points];
// the engine does not re-clamp.
func Partial(points int) Credit {
	return Credit{partial: true, value: points}
}

// Points resolves the credit against the criterion's full weight.
func (c Credit) Points(full int) int {
	if c.partial {
		return c.value
	}
	if c.pass {
		return full
	}
	return 0
}

// EvalFunc evaluates a raw answer string. Implementations must be pure:
// no I/O, no hidden state, no dependency on other answers.
type EvalFunc func(answer string) Credit

// Criterion scores a single question.
type Criterion struct {
	// Key matches the question this criterion scores.
	Key string

	// Points is the weight awarded on a full pass. Must be positive.
	Points int

	// Evaluate maps the raw answer to a credit. A missing answer is
	// evaluated as the empty string by Score, which every matcher
	// treats as a fail.
	Evaluate EvalFunc
}

// Result is the outcome of one scoring run. Derived, never mutated.
type Result struct {
	Total          int
	Max            int
	Interpretation string
}

// Score folds the criteria over the answer map. Missing or malformed
// answers earn zero credit for their item; they are scoring outcomes,
// not errors. Iteration follows the criteria slice order, but the fold
// is commutative: Total and Max do not depend on that order.
func Score(answers AnswerMap, criteria []Criterion) Result {
	var r Result
	for _, c := range criteria {
		r.Max += c.Points
		credit := c.Evaluate(answers[c.Key]).Points(c.Points)
		r.Total += credit
	}
	return r
}
