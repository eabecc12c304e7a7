package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/nvaldes/cribado/internal/ui/theme"
)

// Choice is a single-choice selector for fixed answer options. Unlike
// a quiz widget it shows no right/wrong feedback — it only records the
// selected option.
type Choice struct {
	Options  []string
	Selected int
}

// NewChoice creates a choice selector, pre-selecting value when it is
// one of the options.
func NewChoice(options []string, value string) Choice {
	c := Choice{Options: options}
	for i, opt := range options {
		if opt == value {
			c.Selected = i
			break
		}
	}
	return c
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// View renders the options.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		line := fmt.Sprintf("  %s", opt)
		if i == c.Selected {
			s += theme.Selected.Render("▸ "+line[2:]) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// Value returns the selected option ("" when there are none).
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}
