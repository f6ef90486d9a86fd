package schema_test

import (
	"encoding/json"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-models/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_model_001(t *testing.T) {
	// Test the listing line for a complete record
	assert := assert.New(t)
	m := schema.Model{Name: "models/gemini-2.0-flash", DisplayName: "Gemini 2.0 Flash"}
	assert.Equal("Model ID: models/gemini-2.0-flash, Display Name: Gemini 2.0 Flash", m.Line())
}

func Test_model_002(t *testing.T) {
	// Test that absent fields render as empty placeholders
	assert := assert.New(t)
	assert.Equal("Model ID: models/x, Display Name: ", schema.Model{Name: "models/x"}.Line())
	assert.Equal("Model ID: , Display Name: Only Display", schema.Model{DisplayName: "Only Display"}.Line())
	assert.Equal("Model ID: , Display Name: ", schema.Model{}.Line())
}

func Test_model_003(t *testing.T) {
	// Test decoding a response with a missing or null models field
	assert := assert.New(t)
	for _, body := range []string{`{}`, `{"models":null}`, `{"models":[]}`} {
		var r schema.ListModelsResponse
		assert.NoError(json.Unmarshal([]byte(body), &r))
		assert.Empty(r.Lines(), body)
	}
}

func Test_model_004(t *testing.T) {
	// Test that lines are returned in response order and unknown fields are ignored
	assert := assert.New(t)
	var r schema.ListModelsResponse
	assert.NoError(json.Unmarshal([]byte(`{
		"models": [
			{"name": "models/b", "displayName": "B", "unknownField": 1},
			{"name": "models/a", "displayName": "A"}
		],
		"nextPageToken": "abc"
	}`), &r))
	assert.Equal([]string{
		"Model ID: models/b, Display Name: B",
		"Model ID: models/a, Display Name: A",
	}, r.Lines())
	assert.Equal("abc", r.NextPageToken)
}

func Test_model_005(t *testing.T) {
	// Test that String() produces indented JSON without empty fields
	assert := assert.New(t)
	m := schema.Model{Name: "models/x", InputTokenLimit: 1024}
	assert.JSONEq(`{"name":"models/x","inputTokenLimit":1024}`, m.String())
}
