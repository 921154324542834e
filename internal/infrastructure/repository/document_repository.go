package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/internal/infrastructure/redis"
	"clicksign-esign/pkg/clicksign"
)

// Redis key prefix for document snapshots
const documentKeyPrefix = "clicksign:document:"

// kvStore is the part of the Redis client used for snapshots
type kvStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type documentRepository struct {
	store  kvStore
	logger *zap.Logger
}

func NewDocumentRepository(redisClient *redis.RedisClient, logger *zap.Logger) repository.DocumentRepository {
	return &documentRepository{
		store:  redisClient,
		logger: logger,
	}
}

func DocumentKey(key string) string {
	return documentKeyPrefix + key
}

func (r *documentRepository) Save(ctx context.Context, doc *clicksign.Document) error {
	if doc == nil || doc.Key == nil || *doc.Key == "" {
		return errors.New("document key is required")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := r.store.Set(ctx, DocumentKey(*doc.Key), string(data), 0); err != nil {
		r.logger.Error("Failed to save document to Redis",
			zap.String("document_key", *doc.Key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

func (r *documentRepository) FindByKey(ctx context.Context, key string) (*clicksign.Document, error) {
	data, err := r.store.Get(ctx, DocumentKey(key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, repository.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc clicksign.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return &doc, nil
}
