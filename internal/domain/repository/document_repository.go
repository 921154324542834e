//go:generate go run go.uber.org/mock/mockgen -source=document_repository.go -destination=mock/document_repository.go
package repository

import (
	"context"
	"errors"

	"clicksign-esign/pkg/clicksign"
)

// ErrDocumentNotFound is returned when no snapshot is stored for a key
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository keeps the last known state of each document
type DocumentRepository interface {
	// Save stores doc under its key, replacing any previous snapshot
	Save(ctx context.Context, doc *clicksign.Document) error

	// FindByKey returns ErrDocumentNotFound when nothing is stored
	FindByKey(ctx context.Context, key string) (*clicksign.Document, error)
}
