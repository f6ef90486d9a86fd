package main

import (
	"fmt"
	"maps"
	"slices"

	// Packages
	format "github.com/mutablelogic/go-models/pkg/ui/format"
	version "github.com/mutablelogic/go-models/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommand struct {
	Format string `name:"format" help:"Output format" enum:"text,json,yaml" default:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	metadata := version.Metadata(ctx.execName)
	if format.Format(cmd.Format) != format.Text {
		return format.Value(ctx.stdout, format.Format(cmd.Format), metadata)
	}
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		if _, err := fmt.Fprintf(ctx.stdout, "%-10s %s\n", key+":", metadata[key]); err != nil {
			return err
		}
	}
	return nil
}
