package battery

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/nvaldes/cribado/internal/scoring"
)

// Custom indicator batteries: purely data-driven yes/no scales a unit
// can add without a new release. Each question names the answer that
// counts toward the score; every item is worth one point. Files are
// validated against defSchema before the usual construction-time
// checks run.

// defSchema constrains custom battery definition files.
const defSchema = `{
  "type": "object",
  "required": ["id", "name", "questions", "bands"],
  "additionalProperties": false,
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "instructions": {"type": "string"},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["key", "prompt", "indicator"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "prompt": {"type": "string", "minLength": 1},
          "indicator": {"enum": ["Sí", "No"]}
        }
      }
    },
    "bands": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["min", "label"],
        "additionalProperties": false,
        "properties": {
          "min": {"type": "integer", "minimum": 0},
          "label": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

type batteryDef struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Instructions string        `json:"instructions"`
	Questions    []questionDef `json:"questions"`
	Bands        []bandDef     `json:"bands"`
}

type questionDef struct {
	Key       string `json:"key"`
	Prompt    string `json:"prompt"`
	Indicator string `json:"indicator"`
}

type bandDef struct {
	Min   int    `json:"min"`
	Label string `json:"label"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledDefSchema compiles defSchema once and caches it.
func compiledDefSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(defSchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://battery-def.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Parse validates raw JSON against the definition schema and builds a
// battery from it. The result still goes through Battery.Validate on
// Register, which catches duplicate keys and band coverage problems
// the schema cannot express.
func Parse(raw []byte) (*Battery, error) {
	schema, err := compiledDefSchema()
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var def batteryDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	b := &Battery{
		ID:           Type(strings.TrimSpace(def.ID)),
		Name:         def.Name,
		Instructions: def.Instructions,
	}
	for _, q := range def.Questions {
		b.Questions = append(b.Questions, Question{
			Key:     q.Key,
			Prompt:  q.Prompt,
			Input:   InputSingleChoice,
			Choices: []string{"Sí", "No"},
		})
		b.Criteria = append(b.Criteria, scoring.Criterion{
			Key:      q.Key,
			Points:   1,
			Evaluate: Option(q.Indicator),
		})
	}
	for _, band := range def.Bands {
		b.Bands = append(b.Bands, scoring.Band{Min: band.Min, Label: band.Label})
	}
	return b, nil
}

// LoadFile parses the definition file at path and registers the
// battery.
func LoadFile(path string) (*Battery, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read battery file: %w", err)
	}
	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Register(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
