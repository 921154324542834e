package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/internal/infrastructure/database"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 200
)

const selectAPILogColumns = `
	SELECT id, endpoint, method, request_body, response_body, status_code, duration_ms, error, created_at
	FROM api_logs
`

type apiLogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAPILogRepository creates a new API log repository
func NewAPILogRepository(db *database.Database, logger *zap.Logger) repository.APILogRepository {
	return newAPILogRepository(db.DB, logger)
}

func newAPILogRepository(db *sql.DB, logger *zap.Logger) *apiLogRepository {
	return &apiLogRepository{
		db:     db,
		logger: logger,
	}
}

// Save saves an API log entry to the database
func (r *apiLogRepository) Save(ctx context.Context, log *entity.APILog) error {
	query := `
		INSERT INTO api_logs (endpoint, method, request_body, response_body, status_code, duration_ms, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		log.Endpoint,
		log.Method,
		log.RequestBody,
		log.ResponseBody,
		log.StatusCode,
		log.Duration,
		log.Error,
		log.CreatedAt,
	).Scan(&log.ID)

	if err != nil {
		r.logger.Error("Failed to save API log",
			zap.String("endpoint", log.Endpoint),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save API log: %w", err)
	}

	return nil
}

func (r *apiLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.APILog, error) {
	query := selectAPILogColumns + `
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.query(ctx, query, normalizeLimit(limit))
}

func (r *apiLogRepository) SearchByEndpoint(ctx context.Context, fragment string, limit int) ([]entity.APILog, error) {
	query := selectAPILogColumns + `
		WHERE endpoint ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.query(ctx, query, fragment, normalizeLimit(limit))
}

func (r *apiLogRepository) query(ctx context.Context, query string, args ...interface{}) ([]entity.APILog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query API logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entity.APILog, 0)
	for rows.Next() {
		var l entity.APILog
		if err := rows.Scan(
			&l.ID,
			&l.Endpoint,
			&l.Method,
			&l.RequestBody,
			&l.ResponseBody,
			&l.StatusCode,
			&l.Duration,
			&l.Error,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan API log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate API logs: %w", err)
	}

	return logs, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLogLimit
	}
	if limit > maxLogLimit {
		return maxLogLimit
	}
	return limit
}
