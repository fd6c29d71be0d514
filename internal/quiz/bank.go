package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed questions.json
var bankJSON []byte

// BankMeta is the question bank's metadata block.
type BankMeta struct {
	Title                 string `json:"title"`
	Version               string `json:"version"`
	MultiSelectMaxDefault int    `json:"multiSelectMaxDefault"`
}

// Bank is a versioned, read-only collection of questions. The engine
// treats it as configuration injected at call time.
type Bank struct {
	Meta      BankMeta   `json:"meta"`
	Questions []Question `json:"questions"`
}

var (
	loadOnce sync.Once
	loaded   *Bank
	loadErr  error
)

// LoadBank parses and validates the embedded question bank. The result is
// cached; repeated calls return the same Bank.
func LoadBank() (*Bank, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseBank(bankJSON)
	})
	return loaded, loadErr
}

// ParseBank decodes a question bank from raw JSON, validating it against
// the bank schema and cross-checking referential integrity (unique
// question/option ids, known track and meter keys in score maps).
func ParseBank(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank schema: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if err := checkBank(&bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// checkBank enforces the integrity rules the JSON Schema can't express.
func checkBank(bank *Bank) error {
	seen := make(map[string]bool, len(bank.Questions))
	for _, q := range bank.Questions {
		if seen[q.ID] {
			return fmt.Errorf("question bank: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o.ID] {
				return fmt.Errorf("question %s: duplicate option id %q", q.ID, o.ID)
			}
			opts[o.ID] = true

			for key := range o.Score {
				if !scoreKeyKnown(key) {
					return fmt.Errorf("question %s option %s: unknown score key %q", q.ID, o.ID, key)
				}
			}
		}

		for _, l := range q.ShowFor {
			if !l.IsValid() {
				return fmt.Errorf("question %s: unknown education level %q in showFor", q.ID, l)
			}
		}
	}
	return nil
}

func scoreKeyKnown(key string) bool {
	switch key {
	case MeterRoutineTolerance, MeterStressTolerance, MeterClarity:
		return true
	}
	return Track(key).IsValid()
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledBankSchema returns the compiled bank schema, compiling once.
func compiledBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(bankSchemaDefinition)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
