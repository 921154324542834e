package entity

import "time"

// APILog represents a log entry for API requests to Clicksign
type APILog struct {
	ID           int64     `json:"id"`
	Endpoint     string    `json:"endpoint"` // access token redacted
	Method       string    `json:"method"`
	RequestBody  string    `json:"request_body"`
	ResponseBody string    `json:"response_body"`
	StatusCode   int       `json:"status_code"` // 0 when no response was received
	Duration     int64     `json:"duration_ms"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsSuccess reports whether Clicksign accepted the request.
func (l *APILog) IsSuccess() bool {
	return l.StatusCode >= 200 && l.StatusCode < 300
}
