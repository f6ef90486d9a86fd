package models

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-models/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps basic model catalogue methods
type Client interface {
	// Return the provider name
	Name() string

	// ListModels returns the first page of available models. A response
	// with any status other than 200 is returned as a *ResponseError.
	ListModels(ctx context.Context) (*schema.ListModelsResponse, error)

	// GetModel returns the model with the given name
	GetModel(ctx context.Context, name string) (*schema.Model, error)
}
