//go:generate go run go.uber.org/mock/mockgen -source=esign_repository.go -destination=mock/esign_repository.go
package repository

import (
	"context"

	"clicksign-esign/pkg/clicksign"
)

// EsignRepository is the Clicksign API as seen by the use cases.
// *clicksign.Client satisfies it.
type EsignRepository interface {
	CreateDocumentByModel(ctx context.Context, req clicksign.DocumentEnvelope) (*clicksign.DocumentEnvelope, error)
	CreateSigner(ctx context.Context, req clicksign.SignerEnvelope) (*clicksign.SignerEnvelope, error)
	AddSignerToDocument(ctx context.Context, req clicksign.ListEnvelope) (*clicksign.ListEnvelope, error)
	// RequestSigningByEmail returns only an error; the response body is not decoded
	RequestSigningByEmail(ctx context.Context, body map[string]string) error
}
