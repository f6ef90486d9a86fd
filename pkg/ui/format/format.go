// Package format writes model listings to the console in one of several
// output formats. The text format is one line per model.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	// Packages
	models "github.com/mutablelogic/go-models"
	schema "github.com/mutablelogic/go-models/pkg/schema"
	table "github.com/mutablelogic/go-models/pkg/ui/table"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Format string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Text     Format = "text"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models writes the models in the response to w
func Models(w io.Writer, f Format, response *schema.ListModelsResponse, highlight string) error {
	if response == nil {
		response = new(schema.ListModelsResponse)
	}
	switch f {
	case Text, "":
		for _, line := range response.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case Table:
		return table.Write(w, schema.ModelTable{Models: response.Models, Highlight: highlight})
	case Markdown:
		_, err := fmt.Fprintln(w, table.RenderMarkdown(schema.ModelTable{Models: response.Models, Highlight: highlight}))
		return err
	default:
		return Value(w, f, response)
	}
}

// Model writes a single model record to w
func Model(w io.Writer, f Format, model *schema.Model) error {
	switch f {
	case Text, "":
		_, err := fmt.Fprintln(w, model.Line())
		return err
	case Table, Markdown:
		return Models(w, f, &schema.ListModelsResponse{Models: []schema.Model{*model}}, "")
	default:
		return Value(w, f, model)
	}
}

// ResponseError writes the status code and the raw body of a failed
// response, one per line
func ResponseError(w io.Writer, err *models.ResponseError) error {
	if _, err := fmt.Fprintf(w, "Error fetching models: %d\n", err.StatusCode); err != nil {
		return err
	}
	_, werr := fmt.Fprintln(w, string(err.Body))
	return werr
}

// Value writes v as indented JSON or YAML
func Value(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return models.ErrBadParameter.Withf("unsupported format %q", f)
	}
}
