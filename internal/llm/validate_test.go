package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var utteranceSchema = &Schema{
	Name:        "test-utterance",
	Description: "A single spoken line.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"utterance": map[string]any{"type": "string"},
		},
		"required":             []any{"utterance"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	err := validateResponse(utteranceSchema, json.RawMessage(`{"utterance": "Hello there 🌼"}`))
	assert.NoError(t, err)
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	err := validateResponse(utteranceSchema, json.RawMessage(`{"speech": "wrong key"}`))
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}

func TestValidateResponseRejectsBrokenJSON(t *testing.T) {
	err := validateResponse(utteranceSchema, json.RawMessage(`{"utterance": `))
	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`anything goes`)))
}
