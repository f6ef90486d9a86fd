package google

import (
	schema "github.com/mutablelogic/go-models/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// MODELS

// geminiModel is one entry returned by GET /v1beta/models
type geminiModel struct {
	Name                       string   `json:"name"` // "models/{model}"
	BaseModelID                string   `json:"baseModelId,omitempty"`
	Version                    string   `json:"version,omitempty"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
	Thinking                   bool     `json:"thinking,omitempty"`
	Temperature                float64  `json:"temperature,omitempty"`
	MaxTemperature             float64  `json:"maxTemperature,omitempty"`
	TopP                       float64  `json:"topP,omitempty"`
	TopK                       int      `json:"topK,omitempty"`
}

// geminiListModelsResponse is returned by GET /v1beta/models
type geminiListModelsResponse struct {
	Models        []*geminiModel `json:"models"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// ERROR RESPONSE

// geminiErrorResponse is the error body returned by the Gemini REST API
type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts a geminiModel wire type to schema.Model. The name keeps
// its "models/" prefix.
func (m *geminiModel) toSchema() schema.Model {
	if m == nil {
		return schema.Model{}
	}
	return schema.Model{
		Name:                       m.Name,
		DisplayName:                m.DisplayName,
		BaseModelID:                m.BaseModelID,
		Version:                    m.Version,
		Description:                m.Description,
		InputTokenLimit:            m.InputTokenLimit,
		OutputTokenLimit:           m.OutputTokenLimit,
		SupportedGenerationMethods: m.SupportedGenerationMethods,
		Thinking:                   m.Thinking,
		Temperature:                m.Temperature,
		MaxTemperature:             m.MaxTemperature,
		TopP:                       m.TopP,
		TopK:                       m.TopK,
	}
}

func (r *geminiListModelsResponse) toSchema() *schema.ListModelsResponse {
	result := &schema.ListModelsResponse{
		Models:        make([]schema.Model, 0, len(r.Models)),
		NextPageToken: r.NextPageToken,
	}
	for _, m := range r.Models {
		result.Models = append(result.Models, m.toSchema())
	}
	return result
}
