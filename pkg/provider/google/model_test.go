package google_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	// Packages
	models "github.com/mutablelogic/go-models"
	google "github.com/mutablelogic/go-models/pkg/provider/google"
	assert "github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracetest "go.opentelemetry.io/otel/sdk/trace/tracetest"
	zap "go.uber.org/zap"
	observer "go.uber.org/zap/zaptest/observer"
)

func Test_models_001(t *testing.T) {
	// Test a single GET with the key as a query parameter and no body
	assert := assert.New(t)
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/v1beta/models", r.URL.Path)
		assert.Equal(testKey, r.URL.Query().Get("key"))
		assert.Equal(int64(0), r.ContentLength)
		reply(http.StatusOK, testdata(t, "models.json"))(w, r)
	})
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	if !assert.NoError(err) {
		t.FailNow()
	}

	response, err := c.ListModels(context.TODO())
	assert.NoError(err)
	assert.EqualValues(1, srv.requests.Load())
	if assert.NotNil(response) && assert.Len(response.Models, 3) {
		assert.Equal("models/gemini-2.0-flash", response.Models[0].Name)
		assert.Equal("Gemini 2.0 Flash", response.Models[0].DisplayName)
		assert.Equal(1048576, response.Models[0].InputTokenLimit)
		assert.Equal([]string{"generateContent", "countTokens", "createCachedContent"}, response.Models[0].SupportedGenerationMethods)
		assert.True(response.Models[1].Thinking)
		assert.Equal("models/text-embedding-004", response.Models[2].Name)
		assert.NotEmpty(response.NextPageToken)
	}
}

func Test_models_002(t *testing.T) {
	// Test that an empty or missing models field gives no models and no error
	assert := assert.New(t)
	for _, body := range []string{`{}`, `{"models":[]}`, `{"models":null}`} {
		srv := newServer(t, reply(http.StatusOK, body))
		c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
		assert.NoError(err)

		response, err := c.ListModels(context.TODO())
		assert.NoError(err, body)
		if assert.NotNil(response, body) {
			assert.Empty(response.Models, body)
		}
	}
}

func Test_models_003(t *testing.T) {
	// Test that a missing displayName leaves the identifier intact
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusOK, `{"models":[{"name":"models/no-display"},{"displayName":"No Name"},null]}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	response, err := c.ListModels(context.TODO())
	assert.NoError(err)
	if assert.NotNil(response) {
		assert.Equal([]string{
			"Model ID: models/no-display, Display Name: ",
			"Model ID: , Display Name: No Name",
			"Model ID: , Display Name: ",
		}, response.Lines())
	}
}

func Test_models_004(t *testing.T) {
	// Test that a non-200 status returns the raw body unparsed
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusForbidden, `{"error":"invalid key"}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	response, err := c.ListModels(context.TODO())
	assert.Nil(response)
	assert.True(errors.Is(err, models.ErrUnexpectedResponse))

	var rerr *models.ResponseError
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(http.StatusForbidden, rerr.StatusCode)
		assert.Equal(`{"error":"invalid key"}`, string(rerr.Body))
	}
}

func Test_models_005(t *testing.T) {
	// Test that non-JSON error bodies and non-200 success codes are preserved, without retry
	assert := assert.New(t)
	for _, status := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusServiceUnavailable} {
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(status)
			w.Write([]byte("<html>\n  unavailable\n</html>"))
		})
		c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
		assert.NoError(err)

		_, err = c.ListModels(context.TODO())
		var rerr *models.ResponseError
		if assert.True(errors.As(err, &rerr)) {
			assert.Equal(status, rerr.StatusCode)
			assert.Equal("<html>\n  unavailable\n</html>", string(rerr.Body))
		}
		assert.EqualValues(1, srv.requests.Load())
	}
}

func Test_models_006(t *testing.T) {
	// Test that a malformed success body is an error, not a response error
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusOK, `{"models":[`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	response, err := c.ListModels(context.TODO())
	assert.Nil(response)
	assert.Error(err)
	var rerr *models.ResponseError
	assert.False(errors.As(err, &rerr))
	assert.True(errors.Is(err, models.ErrUnexpectedResponse))
}

func Test_models_007(t *testing.T) {
	// Test that a connection failure is an error which does not reveal the key
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusOK, `{}`))
	endpoint := srv.Endpoint()
	srv.Close()

	c, err := google.New("secret-key-value", google.WithEndpoint(endpoint))
	assert.NoError(err)

	response, err := c.ListModels(context.TODO())
	assert.Nil(response)
	if assert.Error(err) {
		assert.NotContains(err.Error(), "secret-key-value")
		var rerr *models.ResponseError
		assert.False(errors.As(err, &rerr))
	}
}

func Test_models_008(t *testing.T) {
	// Test that keys with reserved characters arrive intact
	assert := assert.New(t)
	const key = "a b&c=d/e?f"
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(key, r.URL.Query().Get("key"))
		reply(http.StatusOK, `{}`)(w, r)
	})
	c, err := google.New(key, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	_, err = c.ListModels(context.TODO())
	assert.NoError(err)
	assert.EqualValues(1, srv.requests.Load())
}

func Test_models_009(t *testing.T) {
	// Test that a cancelled context stops the request
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusOK, `{}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.ListModels(ctx)
	assert.True(errors.Is(err, context.Canceled))
}

func Test_models_010(t *testing.T) {
	// Test logging of the request and status, without the key
	assert := assert.New(t)
	core, logs := observer.New(zap.DebugLevel)
	srv := newServer(t, reply(http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()), google.WithLogger(zap.New(core)))
	assert.NoError(err)

	_, err = c.ListModels(context.TODO())
	assert.Error(err)

	responses := logs.FilterMessage("response").All()
	if assert.Len(responses, 1) {
		assert.EqualValues(http.StatusForbidden, responses[0].ContextMap()["status"])
	}
	apierrs := logs.FilterMessage("api error").All()
	if assert.Len(apierrs, 1) {
		assert.Equal("PERMISSION_DENIED", apierrs[0].ContextMap()["status"])
	}
	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(s, testKey)
			}
		}
	}
}

func Test_models_011(t *testing.T) {
	// Test GetModel with and without the models/ prefix
	assert := assert.New(t)
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodGet, r.Method)
		assert.Equal("/v1beta/models/gemini-2.0-flash", r.URL.Path)
		assert.Equal(testKey, r.Header.Get("x-goog-api-key"))
		reply(http.StatusOK, `{"name":"models/gemini-2.0-flash","displayName":"Gemini 2.0 Flash","version":"2.0"}`)(w, r)
	})
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	for _, name := range []string{"gemini-2.0-flash", "models/gemini-2.0-flash"} {
		model, err := c.GetModel(context.TODO(), name)
		assert.NoError(err)
		if assert.NotNil(model) {
			assert.Equal("models/gemini-2.0-flash", model.Name)
			assert.Equal("Gemini 2.0 Flash", model.DisplayName)
			assert.Equal("2.0", model.Version)
		}
	}
}

func Test_models_012(t *testing.T) {
	// Test GetModel rejects an empty name without a request
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusOK, `{}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	for _, name := range []string{"", "  ", "models/"} {
		_, err := c.GetModel(context.TODO(), name)
		assert.True(errors.Is(err, models.ErrBadParameter), name)
	}
	assert.EqualValues(0, srv.requests.Load())
}

func Test_models_013(t *testing.T) {
	// Test GetModel returns an error for an unknown model
	assert := assert.New(t)
	srv := newServer(t, reply(http.StatusNotFound, `{"error":{"code":404,"message":"not found","status":"NOT_FOUND"}}`))
	c, err := google.New(testKey, google.WithEndpoint(srv.Endpoint()))
	assert.NoError(err)

	model, err := c.GetModel(context.TODO(), "nonexistent-model-xyz")
	assert.ErrorIs(err, models.ErrNotFound)
	assert.Nil(model)
}

func Test_models_014(t *testing.T) {
	// Test spans from the client and its transport never record the key
	const secret = "SECRET-KEY-123"
	assert := assert.New(t)
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { provider.Shutdown(context.Background()) })

	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(secret, r.URL.Query().Get("key"))
		reply(http.StatusOK, testdata(t, "models.json"))(w, r)
	})
	c, err := google.New(secret, google.WithEndpoint(srv.Endpoint()), google.WithTracerProvider(provider))
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = c.ListModels(context.TODO())
	assert.NoError(err)

	// The ListModels span and the HTTP client span both use the provider
	spans := recorder.Ended()
	assert.GreaterOrEqual(len(spans), 2)
	for _, span := range spans {
		assert.NotContains(span.Name(), secret)
		for _, attr := range span.Attributes() {
			assert.NotContains(attr.Value.Emit(), secret, string(attr.Key))
		}
	}
}

func Test_models_015(t *testing.T) {
	// Test a nil tracer provider is rejected
	assert := assert.New(t)
	_, err := google.New(testKey, google.WithTracerProvider(nil))
	assert.ErrorIs(err, models.ErrBadParameter)
}
