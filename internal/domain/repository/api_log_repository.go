//go:generate go run go.uber.org/mock/mockgen -source=api_log_repository.go -destination=mock/api_log_repository.go
package repository

import (
	"context"

	"clicksign-esign/internal/domain/entity"
)

// APILogRepository stores Clicksign API logs. Query methods treat a
// non-positive limit as 50 and cap it at 200.
type APILogRepository interface {
	Save(ctx context.Context, log *entity.APILog) error

	// FindRecent returns the newest logs first
	FindRecent(ctx context.Context, limit int) ([]entity.APILog, error)

	// SearchByEndpoint returns logs whose endpoint contains the given fragment, newest first
	SearchByEndpoint(ctx context.Context, fragment string, limit int) ([]entity.APILog, error)
}
