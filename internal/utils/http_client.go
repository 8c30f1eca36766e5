package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client the sync adapter reaches the server with.
// It embeds *resty.Client, so the full resty API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that asks for JSON
// responses. A zero timeout leaves requests bounded by their context only.
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.NewRequest(ctx).Get("/api/sync/updates")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", ContentTypeJSON)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

// NewRequest starts a request bound to ctx. The trace ID found in ctx, if
// any, is forwarded in the [TraceIDHeader] header.
func (c *HTTPClient) NewRequest(ctx context.Context) *resty.Request {
	req := c.R().SetContext(ctx)
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}
