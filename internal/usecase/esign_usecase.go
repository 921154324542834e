//go:generate go run go.uber.org/mock/mockgen -source=esign_usecase.go -destination=mock/esign_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/pkg/clicksign"
)

type EsignUsecase interface {
	CreateDocument(ctx context.Context, req clicksign.DocumentEnvelope) (*clicksign.DocumentEnvelope, error)
	CreateSigner(ctx context.Context, req clicksign.SignerEnvelope) (*clicksign.SignerEnvelope, error)
	AddSignerToDocument(ctx context.Context, req clicksign.ListEnvelope) (*clicksign.ListEnvelope, error)
	RequestSigningByEmail(ctx context.Context, body map[string]string) error
	// GetDocument returns the last stored snapshot of a document
	GetDocument(ctx context.Context, key string) (*clicksign.Document, error)
}

type esignUsecase struct {
	repo    repository.EsignRepository
	docRepo repository.DocumentRepository
	logger  *zap.Logger
}

func NewEsignUsecase(repo repository.EsignRepository, docRepo repository.DocumentRepository, logger *zap.Logger) EsignUsecase {
	return &esignUsecase{
		repo:    repo,
		docRepo: docRepo,
		logger:  logger,
	}
}

func (u *esignUsecase) CreateDocument(ctx context.Context, req clicksign.DocumentEnvelope) (*clicksign.DocumentEnvelope, error) {
	u.logger.Info("Creating document from template",
		zap.String("template_key", req.Document.Template.Key),
		zap.String("path", req.Document.Path),
		zap.Int("fields_count", len(req.Document.Template.Data)),
	)

	// Validate request
	if req.Document.Path == "" {
		return nil, fmt.Errorf("%w: document path is required", ErrInvalidInput)
	}
	if req.Document.Template.Key == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, clicksign.ErrMissingTemplateKey)
	}

	result, err := u.repo.CreateDocumentByModel(ctx, req)
	if err != nil {
		u.logger.Error("Failed to create document", zap.Error(err))
		return nil, err
	}

	doc := &result.Document
	u.logger.Info("Document created",
		zap.String("document_key", deref(doc.Key)),
		zap.String("status", deref(doc.Status)),
	)

	// Keep a snapshot for webhook processing; a failure here does not undo the remote call
	if doc.Key != nil {
		if err := u.docRepo.Save(ctx, doc); err != nil {
			u.logger.Warn("Failed to store document snapshot",
				zap.String("document_key", *doc.Key),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

func (u *esignUsecase) CreateSigner(ctx context.Context, req clicksign.SignerEnvelope) (*clicksign.SignerEnvelope, error) {
	u.logger.Info("Creating signer",
		zap.String("email", deref(req.Signer.Email)),
		zap.Strings("auths", req.Signer.Auths),
	)

	result, err := u.repo.CreateSigner(ctx, req)
	if err != nil {
		u.logger.Error("Failed to create signer", zap.Error(err))
		return nil, err
	}

	u.logger.Info("Signer created", zap.String("signer_key", deref(result.Signer.Key)))
	return result, nil
}

func (u *esignUsecase) AddSignerToDocument(ctx context.Context, req clicksign.ListEnvelope) (*clicksign.ListEnvelope, error) {
	documentKey := deref(req.List.DocumentKey)
	signerKey := deref(req.List.SignerKey)

	u.logger.Info("Adding signer to document",
		zap.String("document_key", documentKey),
		zap.String("signer_key", signerKey),
		zap.String("sign_as", deref(req.List.SignAs)),
	)

	if documentKey == "" {
		return nil, fmt.Errorf("%w: document_key is required", ErrInvalidInput)
	}
	if signerKey == "" {
		return nil, fmt.Errorf("%w: signer_key is required", ErrInvalidInput)
	}

	result, err := u.repo.AddSignerToDocument(ctx, req)
	if err != nil {
		u.logger.Error("Failed to add signer to document", zap.Error(err))
		return nil, err
	}

	u.logger.Info("Signer added to document",
		zap.String("list_key", deref(result.List.Key)),
		zap.String("request_signature_key", deref(result.List.RequestSignatureKey)),
	)
	return result, nil
}

func (u *esignUsecase) RequestSigningByEmail(ctx context.Context, body map[string]string) error {
	u.logger.Info("Requesting signature by email",
		zap.String("request_signature_key", body["request_signature_key"]),
	)

	if len(body) == 0 {
		return fmt.Errorf("%w: notification body is empty", ErrInvalidInput)
	}

	if err := u.repo.RequestSigningByEmail(ctx, body); err != nil {
		u.logger.Error("Failed to request signature by email", zap.Error(err))
		return err
	}

	return nil
}

func (u *esignUsecase) GetDocument(ctx context.Context, key string) (*clicksign.Document, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: document key is required", ErrInvalidInput)
	}

	doc, err := u.docRepo.FindByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrDocumentNotFound) {
			u.logger.Error("Failed to load document snapshot",
				zap.String("document_key", key),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return doc, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
