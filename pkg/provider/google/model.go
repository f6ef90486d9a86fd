package google

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	models "github.com/mutablelogic/go-models"
	schema "github.com/mutablelogic/go-models/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	attribute "go.opentelemetry.io/otel/attribute"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels issues a single GET /v1beta/models request and returns the
// first page of models. Any status other than 200 is returned as a
// *models.ResponseError holding the unparsed body. There is no retry and
// the page token is not followed.
//
// The request bypasses go-client so the status code and raw body of a
// failed response reach the caller.
func (c *Client) ListModels(ctx context.Context) (result *schema.ListModelsResponse, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "ListModels",
		attribute.String("endpoint", c.endpoint.String()),
	)
	defer func() { endSpan(err) }()

	// Create the request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.JoinPath("models").String(), nil)
	if err != nil {
		return nil, err
	}

	// Send the request
	c.log.Info("list models", zap.String("endpoint", c.endpoint.String()))
	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	// Read the whole body
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	c.log.Info("response", zap.Int("status", response.StatusCode), zap.Int("bytes", len(body)))

	// Anything except 200 is returned with the raw body
	if response.StatusCode != http.StatusOK {
		var apierr geminiErrorResponse
		if json.Unmarshal(body, &apierr) == nil && apierr.Error.Status != "" {
			c.log.Warn("api error", zap.String("status", apierr.Error.Status), zap.String("message", apierr.Error.Message))
		}
		return nil, &models.ResponseError{StatusCode: response.StatusCode, Body: body}
	}

	// Decode the models
	var list geminiListModelsResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, models.ErrUnexpectedResponse.Withf("decode models: %v", err)
	}
	result = list.toSchema()
	c.log.Debug("models", zap.Int("count", len(result.Models)), zap.Bool("more", result.NextPageToken != ""))

	// Return success
	return result, nil
}

// GetModel returns a specific model by name. The "models/" prefix is
// optional.
func (c *Client) GetModel(ctx context.Context, name string) (result *schema.Model, err error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "models/")
	if name == "" {
		return nil, models.ErrBadParameter.With("model name is required")
	}

	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "GetModel",
		attribute.String("name", name),
	)
	defer func() { endSpan(err) }()

	var response geminiModel
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models", name)); err != nil {
		var httpErr httpresponse.Err
		if errors.As(err, &httpErr) && int(httpErr) == http.StatusNotFound {
			return nil, models.ErrNotFound.Withf("model %q", name)
		}
		return nil, err
	}
	model := response.toSchema()
	return &model, nil
}
