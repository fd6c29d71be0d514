package quiz

// bankSchemaDefinition is the JSON Schema the embedded question bank must
// satisfy before it is accepted. Score-map key validity is checked in Go
// (checkBank) since the key set is the closed track/meter enum.
var bankSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"meta": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":                 map[string]any{"type": "string", "minLength": 1},
				"version":               map[string]any{"type": "string", "minLength": 1},
				"multiSelectMaxDefault": map[string]any{"type": "integer", "minimum": 1},
			},
			"required":             []any{"title", "version", "multiSelectMaxDefault"},
			"additionalProperties": false,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"round":  map[string]any{"type": "string", "minLength": 1},
					"type":   map[string]any{"enum": []any{"single", "multi"}},
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"label":     map[string]any{"type": "string", "minLength": 1},
								"sentiment": map[string]any{"enum": []any{"positive", "ambivalent", "negative"}},
								"score": map[string]any{
									"type":                 "object",
									"additionalProperties": map[string]any{"type": "integer"},
								},
							},
							"required":             []any{"id", "label", "score"},
							"additionalProperties": false,
						},
					},
					"multiSelectMax": map[string]any{"type": "integer", "minimum": 1},
					"showFor": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"showForStreams": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"id", "round", "type", "prompt", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"meta", "questions"},
	"additionalProperties": false,
}
