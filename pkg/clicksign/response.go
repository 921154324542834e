package clicksign

import (
	"fmt"
	"net/http"
)

// statusKind maps a status code to its failure kind. Success codes map to 0.
func statusKind(code int) ErrorKind {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return 0
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusInternalServerError:
		return KindInternalServerError
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	default:
		return KindUnexpectedStatus
	}
}

// classify returns the body text of a success response, or a *RemoteError.
func classify(resp *Response, captureBody bool) (string, error) {
	kind := statusKind(resp.StatusCode)
	if kind == 0 {
		return string(resp.Body), nil
	}

	rerr := &RemoteError{Kind: kind, StatusCode: resp.StatusCode}
	switch kind {
	case KindBadRequest:
		rerr.Message = "400 Bad Request: " + string(resp.Body)
		rerr.Body = string(resp.Body)
	case KindUnauthorized:
		rerr.Message = "401 Unauthorized"
	case KindForbidden:
		rerr.Message = "403 Forbidden"
	case KindInternalServerError:
		rerr.Message = "500 Internal Server Error"
	case KindServiceUnavailable:
		rerr.Message = "503 Service Unavailable"
	case KindUnexpectedStatus:
		rerr.Message = "Received response: " + resp.debugString()
	}
	if captureBody {
		rerr.Body = string(resp.Body)
	}
	return "", rerr
}

func (r *Response) debugString() string {
	status := r.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
	}
	return fmt.Sprintf("Response { status: %q, headers: %v }", status, r.Header)
}
