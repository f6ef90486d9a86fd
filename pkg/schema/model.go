package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Model is one entry in the models collection. Every field is optional;
// absent values are left as the zero value.
type Model struct {
	Name                       string   `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName                string   `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	BaseModelID                string   `json:"baseModelId,omitempty" yaml:"baseModelId,omitempty"`
	Version                    string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description                string   `json:"description,omitempty" yaml:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty" yaml:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty" yaml:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty" yaml:"supportedGenerationMethods,omitempty"`
	Thinking                   bool     `json:"thinking,omitempty" yaml:"thinking,omitempty"`
	Temperature                float64  `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTemperature             float64  `json:"maxTemperature,omitempty" yaml:"maxTemperature,omitempty"`
	TopP                       float64  `json:"topP,omitempty" yaml:"topP,omitempty"`
	TopK                       int      `json:"topK,omitempty" yaml:"topK,omitempty"`
}

// ListModelsResponse is one page of models. NextPageToken is reported
// but never followed.
type ListModelsResponse struct {
	Models        []Model `json:"models"`
	NextPageToken string  `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return Stringify(m)
}

func (r ListModelsResponse) String() string {
	return Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Line returns the single-line listing for the model
func (m Model) Line() string {
	return line(m.Name, m.DisplayName)
}

// Lines returns one listing line per model, in response order
func (r ListModelsResponse) Lines() []string {
	result := make([]string, 0, len(r.Models))
	for _, m := range r.Models {
		result = append(result, m.Line())
	}
	return result
}
