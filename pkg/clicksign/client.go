// Package clicksign is a typed client for the Clicksign document signature API.
package clicksign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// DefaultHost is the production API base URL.
const DefaultHost = "https://app.clicksign.com/"

const contentTypeJSON = "application/json"

const (
	endpointSigners       = "signers"
	endpointLists         = "lists"
	endpointNotifications = "notifications"
)

// Client talks to the Clicksign API. Its configuration is fixed at
// construction, so a Client may be shared between goroutines.
type Client struct {
	host        string
	accessToken string
	transport   Transport
	captureBody bool
	logger      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHost sets the API base URL. An empty host keeps DefaultHost.
func WithHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.host = host
		}
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithHTTPClient sends requests through client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.transport = NewHTTPTransport(client)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorBodyCapture keeps the response body on every RemoteError instead of
// only on 400 responses.
func WithErrorBodyCapture(enabled bool) Option {
	return func(c *Client) {
		c.captureBody = enabled
	}
}

// New creates a Client authenticated with accessToken.
func New(accessToken string, opts ...Option) *Client {
	c := &Client{
		host:        DefaultHost,
		accessToken: accessToken,
		transport:   NewHTTPTransport(nil),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildURL joins the host, endpoint and access token. Nothing is escaped.
func (c *Client) BuildURL(endpoint string) string {
	return fmt.Sprintf("%s%s?access_token=%s", c.host, endpoint, c.accessToken)
}

// DocumentEndpoint returns the path used to create a document from the
// template named in req.
func DocumentEndpoint(req DocumentEnvelope) (string, error) {
	key := req.Document.Template.Key
	if key == "" {
		return "", ErrMissingTemplateKey
	}
	return fmt.Sprintf("templates/%s/documents", key), nil
}

// CreateDocumentByModel creates a document from a registered template.
// A request without a template key is rejected with ErrMissingTemplateKey
// before anything is sent, since Clicksign has no templates//documents route.
// https://developers.clicksign.com/docs/criar-documento-via-modelos
func (c *Client) CreateDocumentByModel(ctx context.Context, req DocumentEnvelope) (*DocumentEnvelope, error) {
	endpoint, err := DocumentEndpoint(req)
	if err != nil {
		return nil, err
	}

	var result DocumentEnvelope
	if err := c.post(ctx, endpoint, req, "document", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateSigner registers a new signer.
// https://developers.clicksign.com/docs/criar-signatario
func (c *Client) CreateSigner(ctx context.Context, req SignerEnvelope) (*SignerEnvelope, error) {
	var result SignerEnvelope
	if err := c.post(ctx, endpointSigners, req, "signer", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddSignerToDocument links an existing signer to an existing document.
// https://developers.clicksign.com/docs/adicionar-signatario-a-documento
func (c *Client) AddSignerToDocument(ctx context.Context, req ListEnvelope) (*ListEnvelope, error) {
	var result ListEnvelope
	if err := c.post(ctx, endpointLists, req, "list", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RequestSigningByEmail asks Clicksign to email a signer. The body is sent as
// given and the response body is discarded.
func (c *Client) RequestSigningByEmail(ctx context.Context, body map[string]string) error {
	return c.post(ctx, endpointNotifications, body, "", nil)
}

// post sends body to endpoint and, when result is non-nil, decodes the
// success response into it. The response must carry envelopeKey.
func (c *Client) post(ctx context.Context, endpoint string, body interface{}, envelopeKey string, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("clicksign: failed to marshal %s request: %w", endpoint, err)
	}

	c.logger.Debug("Sending Clicksign request",
		zap.String("endpoint", endpoint),
		zap.Int("body_size", len(payload)),
	)

	resp, err := c.transport.Post(ctx, c.BuildURL(endpoint), contentTypeJSON, payload)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err, secret: c.accessToken}
	}

	text, err := classify(resp, c.captureBody)
	if err != nil {
		c.logger.Debug("Clicksign rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return err
	}

	if result == nil {
		return nil
	}
	return decodeEnvelope(endpoint, text, envelopeKey, result)
}

// requiredFields lists, per envelope key, the fields a success response must
// carry for the decoded value to be usable.
var requiredFields = map[string][]string{
	"document": {"path", "template"},
}

func decodeEnvelope(endpoint, text, key string, result interface{}) error {
	fail := func(err error) error {
		return &DecodeError{Endpoint: endpoint, Body: text, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return fail(err)
	}
	value, ok := raw[key]
	if !ok {
		return fail(fmt.Errorf("missing %q key", key))
	}
	if isNull(value) {
		return fail(fmt.Errorf("%q is null", key))
	}

	if required := requiredFields[key]; len(required) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(value, &fields); err != nil {
			return fail(err)
		}
		for _, name := range required {
			if v, ok := fields[name]; !ok || isNull(v) {
				return fail(fmt.Errorf("%s.%s is missing", key, name))
			}
		}
	}

	if err := json.Unmarshal([]byte(text), result); err != nil {
		return fail(err)
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
