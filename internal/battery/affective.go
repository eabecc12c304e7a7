package battery

import (
	"fmt"

	"github.com/nvaldes/cribado/internal/scoring"
)

// affectiveItem is one yes/no item of the depression screening scale.
// Indicator is the answer that counts toward the score — an inclusion
// criterion, not a correctness check.
type affectiveItem struct {
	prompt    string
	indicator string
}

var affectiveItems = []affectiveItem{
	{"¿Está básicamente satisfecho/a con su vida?", "No"},
	{"¿Ha renunciado a muchas de sus actividades e intereses?", "Sí"},
	{"¿Siente que su vida está vacía?", "Sí"},
	{"¿Se encuentra a menudo aburrido/a?", "Sí"},
	{"¿Está de buen humor la mayor parte del tiempo?", "No"},
	{"¿Teme que algo malo pueda ocurrirle?", "Sí"},
	{"¿Se siente feliz la mayor parte del tiempo?", "No"},
	{"¿Se siente a menudo desamparado/a?", "Sí"},
	{"¿Prefiere quedarse en casa antes que salir y hacer cosas nuevas?", "Sí"},
	{"¿Cree que tiene más problemas de memoria que la mayoría de la gente?", "Sí"},
	{"¿Piensa que es maravilloso estar vivo/a?", "No"},
	{"¿Se siente bastante inútil tal como está ahora?", "Sí"},
	{"¿Se siente lleno/a de energía?", "No"},
	{"¿Siente que su situación es desesperada?", "Sí"},
	{"¿Cree que la mayoría de la gente está mejor que usted?", "Sí"},
}

// affective builds the 15-item yes/no affective battery (15 points).
// It has no instructions stage: sessions open directly in answer
// collection.
func affective() *Battery {
	b := &Battery{
		ID:   TypeAffective,
		Name: "Escala de depresión (15 puntos)",
	}
	for i, item := range affectiveItems {
		key := fmt.Sprintf("gds_%02d", i+1)
		b.Questions = append(b.Questions, Question{
			Key:    key,
			Prompt: item.prompt,
			Input:  InputSingleChoice,
			Choices: []string{"Sí", "No"},
		})
		b.Criteria = append(b.Criteria, scoring.Criterion{
			Key:      key,
			Points:   1,
			Evaluate: Option(item.indicator),
		})
	}
	b.Bands = []scoring.Band{
		{Min: 0, Label: "Normal"},
		{Min: 6, Label: "Depresión leve"},
		{Min: 10, Label: "Depresión severa"},
	}
	return b
}
