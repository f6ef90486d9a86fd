/*
google implements a client for the model catalogue of the Google Gemini
REST API.
https://ai.google.dev/api/models
*/
package google

import (
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	models "github.com/mutablelogic/go-models"
	otelhttp "go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	endpoint   *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
	log        *zap.Logger
}

// keyTransport sets the API key as the "key" query parameter
type keyTransport struct {
	http.RoundTripper
	key string
}

var _ models.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultName     = "gemini"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Google Gemini API client with the given API key. The
// key is not validated.
func New(apiKey string, opts ...Opt) (*Client, error) {
	o, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Parse the endpoint
	endpoint, err := url.Parse(o.endpoint)
	if err != nil {
		return nil, models.ErrBadParameter.Withf("endpoint: %v", err)
	} else if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, models.ErrBadParameter.Withf("endpoint: unsupported scheme %q", endpoint.Scheme)
	} else if endpoint.Host == "" {
		return nil, models.ErrBadParameter.With("endpoint: missing host")
	}

	// Model lookups go through go-client
	clientopts := append(o.clientopts,
		client.OptEndpoint(endpoint.String()),
		client.OptHeader("x-goog-api-key", apiKey),
		client.OptTracer(o.tracer),
	)
	if o.timeout > 0 {
		clientopts = append(clientopts, client.OptTimeout(o.timeout))
	}
	c, err := client.New(clientopts...)
	if err != nil {
		return nil, err
	}

	// Listing uses a plain instrumented client with no timeout unless set.
	// The key is added below the instrumentation so spans never record it.
	return &Client{
		Client:   c,
		endpoint: endpoint,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(
				&keyTransport{RoundTripper: o.transport, key: apiKey},
				otelhttp.WithTracerProvider(o.provider),
			),
			Timeout: o.timeout,
		},
		tracer: o.tracer,
		log:    o.log,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}

// Endpoint returns the API base URL
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t *keyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	query := req.URL.Query()
	query.Set("key", t.key)
	req.URL.RawQuery = query.Encode()
	return t.RoundTripper.RoundTrip(req)
}
