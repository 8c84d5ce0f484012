package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client whose transport is
// instrumented with OpenTelemetry, so every outbound call gets a client span
// and propagates the trace context.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetHeader("Accept", "application/json").Get(url)
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone())).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: c}
}
