// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP transport used to reach the feed API.
// Callers depend on the Client interface so tests can substitute a fake.
package httputil

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is the subset of an HTTP response the harvester reads.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client performs GET requests.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// RestyClient adapts resty.Client to Client. Resty's own retry support is
// left disabled; a failed request is returned to the caller as-is.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient returns a RestyClient with the given request timeout.
// A zero timeout means no timeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	c.SetRetryCount(0)
	return &RestyClient{client: c}
}

// Get issues a GET request to url with the given headers.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponse{resp: resp}, nil
}

type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) Body() []byte    { return r.resp.Body() }
func (r *restyResponse) StatusCode() int { return r.resp.StatusCode() }
