package schema

import (
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Line format for a model record
	lineFormat = "Model ID: %s, Display Name: %s"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns v as indented JSON
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func line(name, displayName string) string {
	return fmt.Sprintf(lineFormat, name, displayName)
}
