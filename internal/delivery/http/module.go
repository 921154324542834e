package http

import (
	"go.uber.org/fx"

	"clicksign-esign/internal/delivery/http/handler"
	"clicksign-esign/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewEsignHandler,
		handler.NewHealthHandler,
		handler.NewWebhookHandler,
		handler.NewLogHandler,
		router.NewRouter,
	),
)
