package httpclient

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"clicksign-esign/internal/config"
	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/pkg/clicksign"
)

var _ repository.EsignRepository = (*clicksign.Client)(nil)

// NewClicksignClient builds the API client with request logging and API log
// persistence.
func NewClicksignClient(cfg *config.Config, apiLogSaver APILogSaver, logger *zap.Logger) *clicksign.Client {
	httpClient := &http.Client{
		Timeout: cfg.Clicksign.Timeout,
	}
	transport := NewLoggingTransport(clicksign.NewHTTPTransport(httpClient), apiLogSaver, logger)

	logger.Info("Clicksign client initialized",
		zap.String("host", cfg.Clicksign.Host),
		zap.Duration("timeout", cfg.Clicksign.Timeout),
		zap.Bool("capture_error_body", cfg.Clicksign.CaptureErrorBody),
	)

	return clicksign.New(cfg.Clicksign.AccessToken,
		clicksign.WithHost(cfg.Clicksign.Host),
		clicksign.WithTransport(transport),
		clicksign.WithLogger(logger.Named("clicksign")),
		clicksign.WithErrorBodyCapture(cfg.Clicksign.CaptureErrorBody),
	)
}

var Module = fx.Module("httpclient",
	fx.Provide(
		fx.Annotate(
			NewClicksignClient,
			fx.As(new(repository.EsignRepository)),
		),
	),
)
