package main

import (
	"errors"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	models "github.com/mutablelogic/go-models"
	format "github.com/mutablelogic/go-models/pkg/ui/format"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCommand struct {
	Format    string `name:"format" help:"Output format" enum:"text,json,yaml,table,markdown" default:"text"`
	Highlight string `name:"highlight" help:"Model to emphasise in table output" optional:""`
}

type GetModelCommand struct {
	Name   string `arg:"" name:"name" help:"Model name, with or without the models/ prefix"`
	Format string `name:"format" help:"Output format" enum:"json,yaml,text,table,markdown" default:"json"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListModelsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListModelsCommand",
		attribute.String("format", cmd.Format),
	)
	defer func() { endSpan(err) }()

	// List models. A failed response is reported on stdout and is not an error.
	response, err := client.ListModels(parent)
	var responseErr *models.ResponseError
	if errors.As(err, &responseErr) {
		return format.ResponseError(ctx.stdout, responseErr)
	} else if err != nil {
		return err
	}

	// Print
	return format.Models(ctx.stdout, format.Format(cmd.Format), response, cmd.Highlight)
}

func (cmd *GetModelCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetModelCommand",
		attribute.String("name", cmd.Name),
	)
	defer func() { endSpan(err) }()

	// Get model
	model, err := client.GetModel(parent, cmd.Name)
	if err != nil {
		return err
	}

	// Print
	return format.Model(ctx.stdout, format.Format(cmd.Format), model)
}
