package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/internal/infrastructure/redis"
	"clicksign-esign/pkg/clicksign"
)

type memoryStore struct {
	data   map[string]string
	ttl    map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memoryStore) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	m.data[key] = value.(string)
	m.ttl[key] = expiration
	return nil
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", redis.ErrNil
	}
	return v, nil
}

func TestDocumentRepository_SaveAndFind(t *testing.T) {
	store := newMemoryStore()
	repo := &documentRepository{store: store, logger: zap.NewNop()}

	doc := &clicksign.Document{
		Key:      clicksign.String("doc-1"),
		Status:   clicksign.String("running"),
		Path:     "/Modelos/Teste-123.docx",
		Template: clicksign.NewDocumentTemplate("tmpl-123", map[string]string{"Name": "Fulano"}),
		Metadata: map[string]string{},
	}

	require.NoError(t, repo.Save(context.Background(), doc))
	assert.Contains(t, store.data, "clicksign:document:doc-1")
	assert.Equal(t, time.Duration(0), store.ttl["clicksign:document:doc-1"])

	got, err := repo.FindByKey(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentRepository_SaveRequiresKey(t *testing.T) {
	repo := &documentRepository{store: newMemoryStore(), logger: zap.NewNop()}

	err := repo.Save(context.Background(), &clicksign.Document{Path: "/x"})
	assert.Error(t, err)
}

func TestDocumentRepository_FindMissing(t *testing.T) {
	repo := &documentRepository{store: newMemoryStore(), logger: zap.NewNop()}

	_, err := repo.FindByKey(context.Background(), "unknown")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestDocumentRepository_FindStoreFailure(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	repo := &documentRepository{store: store, logger: zap.NewNop()}

	_, err := repo.FindByKey(context.Background(), "doc-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDocumentNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}
