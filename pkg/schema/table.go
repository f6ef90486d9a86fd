package schema

import (
	"strings"

	// Packages
	uitable "github.com/mutablelogic/go-models/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelTable implements table.TableData for a list of models.
type ModelTable struct {
	Models    []Model
	Highlight string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	descriptionWidth = 40
)

///////////////////////////////////////////////////////////////////////////////
// MODEL TABLE (LIST)

func (t ModelTable) Header() []string {
	return []string{"MODEL ID", "DISPLAY NAME", "VERSION", "INPUT", "OUTPUT", "METHODS", "DESCRIPTION"}
}

func (t ModelTable) Len() int {
	return len(t.Models)
}

func (t ModelTable) Row(i int) []any {
	m := t.Models[i]
	row := []any{m.Name, m.DisplayName, m.Version, m.InputTokenLimit, m.OutputTokenLimit, strings.Join(m.SupportedGenerationMethods, ", "), uitable.Truncate(m.Description, descriptionWidth)}
	if t.Highlight != "" && (m.Name == t.Highlight || strings.TrimPrefix(m.Name, "models/") == t.Highlight) {
		for j, v := range row {
			row[j] = uitable.Bold{Value: v}
		}
	}
	return row
}
