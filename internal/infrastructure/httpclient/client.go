package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/pkg/clicksign"
)

const (
	maxBodyLogLength = 500   // Maximum characters to log for body
	maxBodySaveLen   = 10000 // Maximum characters persisted per body
	redactedToken    = "[REDACTED]"
)

var base64Pattern = regexp.MustCompile(`"([A-Za-z0-9+/=]{100,})"`)

// APILogSaver interface for saving API logs
type APILogSaver interface {
	Save(ctx context.Context, log *entity.APILog) error
}

// loggingTransport logs every exchange with Clicksign and records it through
// an APILogSaver. It never changes the outcome of a call.
type loggingTransport struct {
	next        clicksign.Transport
	apiLogSaver APILogSaver
	logger      *zap.Logger
}

func NewLoggingTransport(next clicksign.Transport, apiLogSaver APILogSaver, logger *zap.Logger) clicksign.Transport {
	return &loggingTransport{
		next:        next,
		apiLogSaver: apiLogSaver,
		logger:      logger,
	}
}

func (t *loggingTransport) Post(ctx context.Context, url, contentType string, body []byte) (*clicksign.Response, error) {
	safeURL := RedactAccessToken(url)
	t.logRequest(http.MethodPost, safeURL, contentType, body)

	startTime := time.Now()
	resp, err := t.next.Post(ctx, url, contentType, body)
	duration := time.Since(startTime)

	if err != nil {
		errMsg := redactSecret(err.Error(), accessToken(url))
		t.logger.Warn("Clicksign request failed",
			zap.String("url", safeURL),
			zap.Duration("duration", duration),
			zap.String("error", errMsg),
		)
		t.saveAPILog(http.MethodPost, safeURL, body, nil, 0, duration, errMsg)
		return nil, err
	}

	t.logResponse(resp.StatusCode, resp.Status, duration, resp.Header, resp.Body)
	t.saveAPILog(http.MethodPost, safeURL, body, resp.Body, resp.StatusCode, duration, "")

	return resp, nil
}

const tokenParam = "access_token="

// RedactAccessToken hides the access_token query value of url. The token is
// never escaped, so everything up to the next '&' belongs to it.
func RedactAccessToken(url string) string {
	token := accessToken(url)
	if token == "" {
		return url
	}
	start := strings.Index(url, tokenParam) + len(tokenParam)
	return url[:start] + redactedToken + url[start+len(token):]
}

// accessToken returns the access_token value carried by url, if any.
func accessToken(url string) string {
	idx := strings.Index(url, tokenParam)
	if idx < 0 {
		return ""
	}
	token := url[idx+len(tokenParam):]
	if end := strings.IndexByte(token, '&'); end >= 0 {
		token = token[:end]
	}
	return token
}

// redactSecret removes every occurrence of secret from msg. Transport errors
// may quote the request URL verbatim.
func redactSecret(msg, secret string) string {
	if secret == "" {
		return msg
	}
	return strings.ReplaceAll(msg, secret, redactedToken)
}

// truncateString truncates a string if it exceeds maxLength
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + fmt.Sprintf("... [truncated, total %d chars]", len(s))
}

// truncateBase64InJSON shortens base64-like values, e.g. embedded files
func truncateBase64InJSON(jsonStr string, maxLength int) string {
	return base64Pattern.ReplaceAllStringFunc(jsonStr, func(match string) string {
		content := match[1 : len(match)-1]
		if len(content) > maxLength {
			return fmt.Sprintf(`"%s... [base64 truncated, total %d chars]"`, content[:maxLength], len(content))
		}
		return match
	})
}

// formatHeadersForLog formats HTTP headers for logging in "Header Key=Value" format
func formatHeadersForLog(headers http.Header) string {
	var sb strings.Builder
	for key, values := range headers {
		for _, value := range values {
			if len(value) > 100 {
				value = value[:100] + "..."
			}
			sb.WriteString(fmt.Sprintf("Header %s=%s\n", key, value))
		}
	}
	return sb.String()
}

func (t *loggingTransport) logRequest(method, url, contentType string, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [CLICKSIGN-REQ]\n")
	logBuilder.WriteString(fmt.Sprintf("Method: %s\n", method))
	logBuilder.WriteString(fmt.Sprintf("URL: %s\n", url))
	logBuilder.WriteString(fmt.Sprintf("Header Content-Type=%s\n", contentType))

	if len(body) > 0 {
		bodyStr := truncateBase64InJSON(string(body), 100)
		bodyStr = truncateString(bodyStr, maxBodyLogLength)
		logBuilder.WriteString(fmt.Sprintf("REQUEST BODY: %s\n", bodyStr))
	}

	t.logger.Info(logBuilder.String())
}

func (t *loggingTransport) logResponse(statusCode int, statusText string, duration time.Duration, headers http.Header, body []byte) {
	var logBuilder strings.Builder

	logBuilder.WriteString("\n>>> [CLICKSIGN-RESPONSE]\n")
	logBuilder.WriteString(fmt.Sprintf("Status: %d %s\n", statusCode, statusText))
	logBuilder.WriteString(fmt.Sprintf("Duration: %s\n", duration))
	logBuilder.WriteString(formatHeadersForLog(headers))
	logBuilder.WriteString(fmt.Sprintf("Body: %s\n", truncateString(string(body), maxBodyLogLength)))

	t.logger.Info(logBuilder.String())
}

// saveAPILog persists the exchange in the background so the caller is not
// held up by the database.
func (t *loggingTransport) saveAPILog(method, endpoint string, requestBody, responseBody []byte, statusCode int, duration time.Duration, errMsg string) {
	if t.apiLogSaver == nil {
		return
	}

	reqBodyStr := ""
	if len(requestBody) > 0 {
		reqBodyStr = truncateString(truncateBase64InJSON(string(requestBody), 100), maxBodySaveLen)
	}

	apiLog := &entity.APILog{
		Endpoint:     endpoint,
		Method:       method,
		RequestBody:  reqBodyStr,
		ResponseBody: truncateString(string(responseBody), maxBodySaveLen),
		StatusCode:   statusCode,
		Duration:     duration.Milliseconds(),
		Error:        errMsg,
		CreatedAt:    time.Now(),
	}

	go func() {
		if err := t.apiLogSaver.Save(context.Background(), apiLog); err != nil {
			t.logger.Warn("Failed to save API log to database",
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
		}
	}()
}
