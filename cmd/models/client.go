package main

import (
	// Packages
	models "github.com/mutablelogic/go-models"
	google "github.com/mutablelogic/go-models/pkg/provider/google"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a Gemini client configured from the global flags
func (g *Globals) Client() (models.Client, error) {
	opts := []google.Opt{
		google.WithEndpoint(g.Endpoint),
		google.WithLogger(g.log),
	}
	if (g.Debug || g.Verbose) && g.stderr != nil {
		opts = append(opts, google.WithTrace(g.stderr, g.Verbose))
	}
	if g.provider != nil {
		opts = append(opts, google.WithTracerProvider(g.provider))
	}
	if g.Timeout > 0 {
		opts = append(opts, google.WithTimeout(g.Timeout))
	}
	return google.New(g.APIKey, opts...)
}
