package battery

import "github.com/nvaldes/cribado/internal/scoring"

// cognitive builds the 10-item cognitive screening battery (30 points).
// The examiner reads each prompt aloud and records the patient's
// response; for the performance items the examiner judges the execution
// and records the verdict.
func cognitive() *Battery {
	return &Battery{
		ID:   TypeCognitive,
		Name: "Examen cognitivo (30 puntos)",
		Instructions: "Realice las preguntas en orden y registre la respuesta " +
			"literal del paciente. En los ítems de ejecución (lectura, escritura, " +
			"orientación) observe al paciente y marque si la realizó correctamente. " +
			"No corrija ni repita las consignas salvo que el ítem lo indique.",
		Questions: []Question{
			{
				Key:    "orientacion_tiempo",
				Prompt: "Orientación temporal: pida al paciente la fecha completa (día, mes, año y estación).",
				Input:  InputSingleChoice, Choices: []string{"Correcto", "Incorrecto"},
				Hint: "Marque Correcto solo si acertó todos los elementos.",
			},
			{
				Key:    "orientacion_lugar",
				Prompt: "Orientación espacial: pida al paciente que indique dónde se encuentra (lugar, planta, ciudad, provincia).",
				Input:  InputSingleChoice, Choices: []string{"Correcto", "Incorrecto"},
				Hint: "Marque Correcto solo si acertó todos los elementos.",
			},
			{
				Key:    "fijacion",
				Prompt: "Fijación: diga \"papel, bicicleta, cuchara\" y pida al paciente que las repita.",
				Input:  InputFreeText,
				Hint:   "Escriba las palabras que repitió, separadas por espacios.",
			},
			{
				Key:    "atencion",
				Prompt: "Atención y cálculo: pida al paciente que reste 7 a 100 cinco veces seguidas y registre el resultado final.",
				Input:  InputFreeText,
				Hint:   "Solo el número final.",
			},
			{
				Key:    "recuerdo",
				Prompt: "Recuerdo diferido: pida al paciente que repita las tres palabras de antes.",
				Input:  InputFreeText,
				Hint:   "Escriba las palabras que recordó, separadas por espacios.",
			},
			{
				Key:    "denominacion",
				Prompt: "Denominación: muestre un lápiz y un reloj y pida al paciente que los nombre.",
				Input:  InputFreeText,
			},
			{
				Key:    "repeticion",
				Prompt: "Repetición: pida al paciente que repita la frase \"En un trigal había cinco perros\".",
				Input:  InputFreeText,
			},
			{
				Key:    "comprension",
				Prompt: "Comprensión: pregunte al paciente qué debe hacer con el papel (tomarlo con la mano derecha, doblarlo por la mitad y dejarlo en el suelo).",
				Input:  InputFreeText,
			},
			{
				Key:    "lectura",
				Prompt: "Lectura: muestre el cartel \"CIERRE LOS OJOS\" y observe si el paciente lo ejecuta.",
				Input:  InputSingleChoice, Choices: []string{"Correcto", "Incorrecto"},
			},
			{
				Key:    "escritura",
				Prompt: "Escritura: pida al paciente que escriba una frase completa con sujeto y predicado.",
				Input:  InputSingleChoice, Choices: []string{"Correcto", "Incorrecto"},
			},
		},
		Criteria: []scoring.Criterion{
			{Key: "orientacion_tiempo", Points: 5, Evaluate: Option("Correcto")},
			{Key: "orientacion_lugar", Points: 5, Evaluate: Option("Correcto")},
			{Key: "fijacion", Points: 3, Evaluate: WordSet("papel", "bicicleta", "cuchara")},
			{Key: "atencion", Points: 5, Evaluate: SerialSubtraction(100, 7, 5)},
			{Key: "recuerdo", Points: 3, Evaluate: WordSet("papel", "bicicleta", "cuchara")},
			{Key: "denominacion", Points: 2, Evaluate: KeywordTally(1, "lápiz", "reloj")},
			{Key: "repeticion", Points: 1, Evaluate: Phrase("En un trigal había cinco perros")},
			{Key: "comprension", Points: 3, Evaluate: AnyKeyword("doblar", "mitad", "suelo", "mano derecha")},
			{Key: "lectura", Points: 1, Evaluate: Option("Correcto")},
			{Key: "escritura", Points: 2, Evaluate: Option("Correcto")},
		},
		Bands: []scoring.Band{
			{Min: 0, Label: "Deterioro cognitivo severo"},
			{Min: 11, Label: "Deterioro cognitivo moderado"},
			{Min: 21, Label: "Deterioro cognitivo leve"},
			{Min: 27, Label: "Normal: No hay evidencia de deterioro cognitivo"},
		},
	}
}
