package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/router"
	"github.com/nvaldes/cribado/internal/screen"
	"github.com/nvaldes/cribado/internal/screens/assessment"
	historyscreen "github.com/nvaldes/cribado/internal/screens/history"
	"github.com/nvaldes/cribado/internal/store"
	"github.com/nvaldes/cribado/internal/ui/components"
	"github.com/nvaldes/cribado/internal/ui/layout"
	"github.com/nvaldes/cribado/internal/ui/theme"
)

// HomeScreen lists the available batteries plus history and exit.
type HomeScreen struct {
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. The menu is rebuilt from the battery
// registry each time, so batteries loaded from --battery files show
// up alongside the built-in ones.
func New(results store.ResultRepo) *HomeScreen {
	h := &HomeScreen{}

	var items []components.MenuItem
	for _, b := range battery.All() {
		b := b
		items = append(items, components.MenuItem{
			Label:  b.Name,
			Detail: fmt.Sprintf("%d ítems, máx. %d", len(b.Questions), b.MaxScore()),
			Action: func() tea.Cmd {
				s, err := assessment.New(b.ID, results)
				if err != nil {
					h.errMsg = err.Error()
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "Historial",
		Detail:   "Resultados guardados",
		Disabled: results == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(results)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Salir",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Seleccionar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.PaddingLeft(2).Render("Seleccione una batería de cribado"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).PaddingLeft(2).Render(h.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render(
		"Los resultados orientan, no diagnostican. Confírmelos con evaluación clínica."))
	return b.String()
}
