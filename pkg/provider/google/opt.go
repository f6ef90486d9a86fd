package google

import (
	"io"
	"net/http"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	models "github.com/mutablelogic/go-models"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the client
type Opt func(*opts) error

type opts struct {
	endpoint   string
	timeout    time.Duration
	transport  http.RoundTripper
	provider   trace.TracerProvider
	tracer     trace.Tracer
	log        *zap.Logger
	clientopts []client.ClientOpt
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	result := &opts{
		endpoint:  DefaultEndpoint,
		transport: http.DefaultTransport,
	}
	for _, opt := range o {
		if err := opt(result); err != nil {
			return nil, err
		}
	}
	if result.provider == nil {
		result.provider = otel.GetTracerProvider()
	}
	result.tracer = result.provider.Tracer(defaultName)
	if result.log == nil {
		result.log = zap.NewNop()
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithEndpoint sets the API base URL, which defaults to the public v1beta
// endpoint
func WithEndpoint(endpoint string) Opt {
	return func(o *opts) error {
		if endpoint = strings.TrimSpace(endpoint); endpoint == "" {
			return models.ErrBadParameter.With("endpoint is required")
		}
		o.endpoint = strings.TrimSuffix(endpoint, "/")
		return nil
	}
}

// WithTimeout sets a timeout for each request. Zero, the default, means
// requests never time out.
func WithTimeout(timeout time.Duration) Opt {
	return func(o *opts) error {
		if timeout < 0 {
			return models.ErrBadParameter.Withf("timeout must not be negative: %v", timeout)
		}
		o.timeout = timeout
		return nil
	}
}

// WithTransport sets the round tripper used to list models
func WithTransport(transport http.RoundTripper) Opt {
	return func(o *opts) error {
		if transport == nil {
			return models.ErrBadParameter.With("transport is required")
		}
		o.transport = transport
		return nil
	}
}

// WithTracerProvider sets the provider for client and HTTP transport
// spans, which defaults to the global provider
func WithTracerProvider(provider trace.TracerProvider) Opt {
	return func(o *opts) error {
		if provider == nil {
			return models.ErrBadParameter.With("tracer provider is required")
		}
		o.provider = provider
		return nil
	}
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger(log *zap.Logger) Opt {
	return func(o *opts) error {
		o.log = log
		return nil
	}
}

// WithTrace writes request and response traces for model lookups to w
func WithTrace(w io.Writer, verbose bool) Opt {
	return func(o *opts) error {
		o.clientopts = append(o.clientopts, client.OptTrace(w, verbose))
		return nil
	}
}
