package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/router"
	"github.com/nvaldes/cribado/internal/screen"
	"github.com/nvaldes/cribado/internal/store"
	"github.com/nvaldes/cribado/internal/ui/layout"
	"github.com/nvaldes/cribado/internal/ui/theme"
)

type resultsLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen lists stored assessment results, newest first.
type HistoryScreen struct {
	results  store.ResultRepo
	records  []store.ResultRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.results.Recent(context.Background(), 50)
		return resultsLoadedMsg{Results: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalle"},
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Cargando historial...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Sin resultados todavía.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.CreatedAt.Format("02/01/2006 15:04")

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-32s  %2d/%2d  %s",
			prefix, dateStr, truncate(rec.BatteryName, 32),
			rec.TotalScore, rec.MaxScore, rec.Interpretation)
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] && i == s.selected {
			b.WriteString(s.renderDetail(rec, width))
		}
	}
	return b.String()
}

// renderDetail expands one record into its per-item answers, in the
// battery's question order when the battery is still registered.
func (s *HistoryScreen) renderDetail(rec store.ResultRecord, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	if bat, err := battery.Get(battery.Type(rec.BatteryID)); err == nil {
		for _, q := range bat.Questions {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dim.Render(truncate(q.Prompt, 30)+":"),
				val.Render(rec.Answers[q.Key])))
		}
	} else {
		for k, v := range rec.Answers {
			b.WriteString(fmt.Sprintf("      %s %s\n", dim.Render(k+":"), val.Render(v)))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
