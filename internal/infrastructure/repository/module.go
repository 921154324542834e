package repository

import (
	"go.uber.org/fx"

	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/internal/infrastructure/httpclient"
)

var Module = fx.Module("repository",
	fx.Provide(NewDocumentRepository),
	fx.Provide(NewAPILogRepository),
	fx.Provide(func(r repository.APILogRepository) httpclient.APILogSaver { return r }),
)
