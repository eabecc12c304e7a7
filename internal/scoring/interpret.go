package scoring

// Band maps the scores at or above Min (up to the next band) to a
// clinical label.
type Band struct {
	Min   int
	Label string
}

// Interpret returns the label of the last band whose Min is <= total.
// Bands must be sorted ascending by Min — an invariant established once
// at battery construction, so this stays O(bands) per call. A total
// below every band (impossible when bands start at 0) falls back to the
// lowest band's label.
func Interpret(total int, bands []Band) string {
	if len(bands) == 0 {
		return ""
	}
	label := bands[0].Label
	for _, b := range bands {
		if b.Min > total {
			break
		}
		label = b.Label
	}
	return label
}
