package clicksign

import (
	"errors"
	"fmt"
	"strings"
)

const redacted = "[REDACTED]"

// ErrorKind classifies a non-success response from Clicksign.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindInternalServerError
	KindServiceUnavailable
	// KindUnexpectedStatus covers every status without a dedicated kind.
	KindUnexpectedStatus
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindInternalServerError:
		return "internal_server_error"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindUnexpectedStatus:
		return "unexpected_status"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels matched by errors.Is against a *RemoteError of the same kind.
var (
	ErrBadRequest          = errors.New("clicksign: bad request")
	ErrUnauthorized        = errors.New("clicksign: unauthorized")
	ErrForbidden           = errors.New("clicksign: forbidden")
	ErrInternalServerError = errors.New("clicksign: internal server error")
	ErrServiceUnavailable  = errors.New("clicksign: service unavailable")
	ErrUnexpectedStatus    = errors.New("clicksign: unexpected status")

	// ErrMissingTemplateKey is returned before any request is made when a
	// document creation request does not name a template.
	ErrMissingTemplateKey = errors.New("clicksign: document template key is required")
)

var kindSentinels = map[ErrorKind]error{
	KindBadRequest:          ErrBadRequest,
	KindUnauthorized:        ErrUnauthorized,
	KindForbidden:           ErrForbidden,
	KindInternalServerError: ErrInternalServerError,
	KindServiceUnavailable:  ErrServiceUnavailable,
	KindUnexpectedStatus:    ErrUnexpectedStatus,
}

// RemoteError is returned when Clicksign answers with a non-success status.
type RemoteError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// Body holds the response body for 400 responses, and for every failure
	// when the client was built with WithErrorBodyCapture(true).
	Body string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// TransportError is returned when no response was received. Its message
// never contains the access token, whatever the transport reported.
type TransportError struct {
	Endpoint string
	Err      error

	secret string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("clicksign: request to %s failed: %v", e.Endpoint, e.Err)
	if e.secret != "" {
		msg = strings.ReplaceAll(msg, e.secret, redacted)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a success response does not match the
// expected envelope.
type DecodeError struct {
	Endpoint string
	Body     string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("clicksign: failed to decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
