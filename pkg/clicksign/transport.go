//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mock/transport.go
package clicksign

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Response is what a Transport hands back for a completed exchange.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Transport sends a POST request and returns the response. Implementations
// must return an error only when no response was received.
type Transport interface {
	Post(ctx context.Context, url, contentType string, body []byte) (*Response, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, url, contentType string, body []byte) (*Response, error)

func (f TransportFunc) Post(ctx context.Context, url, contentType string, body []byte) (*Response, error) {
	return f(ctx, url, contentType, body)
}

type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a Transport backed by client. A nil client means
// http.DefaultClient.
func NewHTTPTransport(client *http.Client) Transport {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransport{client: client}
}

func (t *httpTransport) Post(ctx context.Context, rawURL, contentType string, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", stripQuery(err))
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", stripQuery(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// stripQuery drops the query string, which carries the access token, from
// the URL net/http embeds in its errors. The wrapped cause is kept.
func stripQuery(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u := urlErr.URL
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i] + "?access_token=" + redacted
	}
	return &url.Error{Op: urlErr.Op, URL: u, Err: urlErr.Err}
}
