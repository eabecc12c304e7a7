package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nvaldes/cribado/internal/battery"
	"github.com/nvaldes/cribado/internal/session"
	"github.com/nvaldes/cribado/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width)
	}
	switch s.sess.Stage() {
	case session.StageInstructions:
		return s.renderInstructions(width)
	case session.StageCollecting:
		return s.renderCollecting(width)
	case session.StageConfirming:
		return s.renderConfirming(width)
	default:
		return s.renderScored(width)
	}
}

func (s *Screen) renderQuitConfirm(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("¿Abandonar la evaluación?"),
		"",
		theme.Body.Render("Las respuestas de esta sesión se perderán."),
		"",
		theme.Hint.Render("S: abandonar   N: continuar"),
	)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render("\n\n" + body)
}

func (s *Screen) renderInstructions(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  Instrucciones para el examinador"))
	b.WriteString("\n\n")

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 6).
		PaddingLeft(2).
		Render(s.sess.Battery().Instructions)
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render("Enter para comenzar"))
	return b.String()
}

func (s *Screen) renderCollecting(width int) string {
	q := s.currentQuestion()
	if q == nil {
		return ""
	}
	qs := s.questions()

	var b strings.Builder

	// Progress line: which item, and how many already answered.
	answered := 0
	for _, qq := range qs {
		if strings.TrimSpace(s.sess.Answer(qq.Key)) != "" {
			answered++
		}
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Ítem %d de %d", s.index+1, len(qs)))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d respondidas", answered))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 6).
		PaddingLeft(2).
		Render(q.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	switch q.Input {
	case battery.InputSingleChoice:
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.choice.View()))
	default:
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.input.View()))
	}
	b.WriteString("\n")

	if s.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).PaddingLeft(2).Render(s.statusMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderConfirming(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  Revise las respuestas antes de puntuar"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(24)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for i, q := range s.questions() {
		answer := s.sess.Answer(q.Key)
		b.WriteString(fmt.Sprintf("  %2d. %s %s\n",
			i+1,
			keyStyle.Render(truncate(q.Prompt, 24)),
			valStyle.Render(truncate(answer, max(10, width-36))),
		))
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render("Enter: puntuar   E: editar respuestas"))
	if s.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).PaddingLeft(2).Render(s.statusMsg))
	}
	return b.String()
}

func (s *Screen) renderScored(width int) string {
	r := s.sess.Result()
	if r == nil {
		return ""
	}

	score := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", r.Total, r.Max))

	interp := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(r.Interpretation)

	parts := []string{
		theme.Title.Render("Resultado"),
		"",
		score,
		"",
		interp,
	}
	if s.saveNote != "" {
		style := theme.Hint
		if !s.saved {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		parts = append(parts, "", style.Render(s.saveNote))
	}
	parts = append(parts, "", theme.Hint.Render("R: repetir   Enter: volver al inicio"))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render("\n\n" + body)
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
