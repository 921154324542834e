//go:generate go run go.uber.org/mock/mockgen -source=webhook_usecase.go -destination=mock/webhook_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/domain/repository"
	"clicksign-esign/pkg/clicksign"
)

type WebhookUsecase interface {
	// ProcessWebhook records a Clicksign event against the stored document
	ProcessWebhook(ctx context.Context, payload *entity.WebhookPayload) error
}

type webhookUsecase struct {
	docRepo repository.DocumentRepository
	logger  *zap.Logger
}

func NewWebhookUsecase(docRepo repository.DocumentRepository, logger *zap.Logger) WebhookUsecase {
	return &webhookUsecase{
		docRepo: docRepo,
		logger:  logger,
	}
}

func (u *webhookUsecase) ProcessWebhook(ctx context.Context, payload *entity.WebhookPayload) error {
	documentKey := payload.DocumentKey()

	u.logger.Info("Processing webhook callback",
		zap.String("event", payload.Event.Name),
		zap.String("document_key", documentKey),
		zap.String("status", deref(payload.Document.Status)),
		zap.String("occurred_at", payload.Event.OccurredAt),
	)

	if payload.Event.Name == "" {
		return fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if documentKey == "" {
		return fmt.Errorf("%w: document key is required", ErrInvalidInput)
	}

	snapshot, err := u.docRepo.FindByKey(ctx, documentKey)
	switch {
	case errors.Is(err, repository.ErrDocumentNotFound):
		u.logger.Info("No stored document, creating snapshot from webhook",
			zap.String("document_key", documentKey),
		)
		doc := payload.Document
		doc.Events = nil
		snapshot = &doc
	case err != nil:
		u.logger.Error("Failed to load document snapshot",
			zap.String("document_key", documentKey),
			zap.Error(err),
		)
		return fmt.Errorf("failed to load document: %w", err)
	default:
		mergeDocument(snapshot, &payload.Document)
	}

	// The payload document usually lists the triggering event as well
	snapshot.Events = appendEvents(snapshot.Events, payload.Document.Events...)
	snapshot.Events = appendEvents(snapshot.Events, payload.Event)

	if err := u.docRepo.Save(ctx, snapshot); err != nil {
		u.logger.Error("Failed to save document snapshot", zap.Error(err))
		return fmt.Errorf("failed to save document: %w", err)
	}

	u.logger.Info("Webhook processed successfully",
		zap.String("document_key", documentKey),
		zap.Int("events_count", len(snapshot.Events)),
	)

	return nil
}

// mergeDocument copies every field present in src onto dst. Events are
// merged separately by appendEvents.
func mergeDocument(dst, src *clicksign.Document) {
	mergeString(&dst.Filename, src.Filename)
	mergeString(&dst.UpdatedAt, src.UpdatedAt)
	mergeString(&dst.FinishedAt, src.FinishedAt)
	mergeString(&dst.DeadlineAt, src.DeadlineAt)
	mergeString(&dst.Status, src.Status)
	mergeString(&dst.Locale, src.Locale)
	mergeString(&dst.SignableGroup, src.SignableGroup)
	mergeString(&dst.RemindInterval, src.RemindInterval)

	if src.AutoClose != nil {
		dst.AutoClose = src.AutoClose
	}
	if src.SequenceEnabled != nil {
		dst.SequenceEnabled = src.SequenceEnabled
	}
	if src.Metadata != nil {
		dst.Metadata = src.Metadata
	}
	if src.Downloads != nil {
		dst.Downloads = src.Downloads
	}
	if src.Signers != nil {
		dst.Signers = src.Signers
	}
	if src.Path != "" {
		dst.Path = src.Path
	}
	if src.Template.Key != "" {
		dst.Template = src.Template
	}
}

func mergeString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

// appendEvents appends the events not already recorded, keeping order. Two
// events are the same when name and occurred_at match.
func appendEvents(events []clicksign.DocumentEvent, incoming ...clicksign.DocumentEvent) []clicksign.DocumentEvent {
	type eventID struct{ name, occurredAt string }

	seen := make(map[eventID]struct{}, len(events)+len(incoming))
	for _, e := range events {
		seen[eventID{e.Name, e.OccurredAt}] = struct{}{}
	}
	for _, e := range incoming {
		id := eventID{e.Name, e.OccurredAt}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		events = append(events, e)
	}
	return events
}
