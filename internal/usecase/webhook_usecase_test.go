package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/entity"
	"clicksign-esign/internal/domain/repository"
	mock_repository "clicksign-esign/internal/domain/repository/mock"
	"clicksign-esign/pkg/clicksign"
)

func newTestWebhookUsecase(t *testing.T) (WebhookUsecase, *mock_repository.MockDocumentRepository) {
	ctrl := gomock.NewController(t)
	docRepo := mock_repository.NewMockDocumentRepository(ctrl)
	return NewWebhookUsecase(docRepo, zap.NewNop()), docRepo
}

func TestWebhookUsecase_MergesIntoStoredSnapshot(t *testing.T) {
	ctx := context.Background()
	uc, docRepo := newTestWebhookUsecase(t)

	stored := &clicksign.Document{
		Key:      clicksign.String("doc-1"),
		Path:     "/Modelos/Teste-123.docx",
		Filename: clicksign.String("Teste-123.docx"),
		Status:   clicksign.String("running"),
		Template: clicksign.NewDocumentTemplate("tmpl-123", nil),
		Events:   []clicksign.DocumentEvent{{Name: "upload", OccurredAt: "2020-03-10T14:12:10.452-03:00"}},
	}

	payload := &entity.WebhookPayload{
		Event: clicksign.DocumentEvent{Name: "close", OccurredAt: "2020-03-11T10:00:00.000-03:00"},
		Document: clicksign.Document{
			Key:        clicksign.String("doc-1"),
			Status:     clicksign.String("closed"),
			FinishedAt: clicksign.String("2020-03-11T10:00:00.000-03:00"),
		},
	}

	docRepo.EXPECT().FindByKey(ctx, "doc-1").Return(stored, nil)
	docRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *clicksign.Document) error {
		assert.Equal(t, "closed", *doc.Status)
		assert.Equal(t, "2020-03-11T10:00:00.000-03:00", *doc.FinishedAt)
		assert.Equal(t, "Teste-123.docx", *doc.Filename)
		assert.Equal(t, "/Modelos/Teste-123.docx", doc.Path)
		assert.Equal(t, "tmpl-123", doc.Template.Key)

		require.Len(t, doc.Events, 2)
		assert.Equal(t, "upload", doc.Events[0].Name)
		assert.Equal(t, "close", doc.Events[1].Name)
		return nil
	})

	require.NoError(t, uc.ProcessWebhook(ctx, payload))
}

func TestWebhookUsecase_CreatesSnapshotWhenMissing(t *testing.T) {
	ctx := context.Background()
	uc, docRepo := newTestWebhookUsecase(t)

	payload := &entity.WebhookPayload{
		Event:    clicksign.DocumentEvent{Name: "sign"},
		Document: clicksign.Document{Key: clicksign.String("doc-2"), Status: clicksign.String("running")},
	}

	docRepo.EXPECT().FindByKey(ctx, "doc-2").Return(nil, repository.ErrDocumentNotFound)
	docRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *clicksign.Document) error {
		assert.Equal(t, "doc-2", *doc.Key)
		require.Len(t, doc.Events, 1)
		assert.Equal(t, "sign", doc.Events[0].Name)
		return nil
	})

	require.NoError(t, uc.ProcessWebhook(ctx, payload))
	assert.Nil(t, payload.Document.Events)
}

func TestWebhookUsecase_TriggeringEventStoredOnce(t *testing.T) {
	ctx := context.Background()
	upload := clicksign.DocumentEvent{Name: "upload", OccurredAt: "2020-03-10T14:12:10.452-03:00"}
	sign := clicksign.DocumentEvent{Name: "sign", OccurredAt: "2020-03-10T14:20:00.000-03:00"}

	t.Run("new snapshot", func(t *testing.T) {
		uc, docRepo := newTestWebhookUsecase(t)
		payload := &entity.WebhookPayload{
			Event:    sign,
			Document: clicksign.Document{Key: clicksign.String("doc-3"), Events: []clicksign.DocumentEvent{upload, sign}},
		}

		docRepo.EXPECT().FindByKey(ctx, "doc-3").Return(nil, repository.ErrDocumentNotFound)
		docRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *clicksign.Document) error {
			assert.Equal(t, []clicksign.DocumentEvent{upload, sign}, doc.Events)
			return nil
		})

		require.NoError(t, uc.ProcessWebhook(ctx, payload))
		assert.Len(t, payload.Document.Events, 2)
	})

	t.Run("existing snapshot", func(t *testing.T) {
		uc, docRepo := newTestWebhookUsecase(t)
		addSigner := clicksign.DocumentEvent{Name: "add_signer", OccurredAt: "2020-03-10T14:15:00.000-03:00"}
		payload := &entity.WebhookPayload{
			Event:    sign,
			Document: clicksign.Document{Key: clicksign.String("doc-3"), Events: []clicksign.DocumentEvent{upload, addSigner, sign}},
		}

		stored := &clicksign.Document{Key: clicksign.String("doc-3"), Events: []clicksign.DocumentEvent{upload}}
		docRepo.EXPECT().FindByKey(ctx, "doc-3").Return(stored, nil)
		docRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *clicksign.Document) error {
			assert.Equal(t, []clicksign.DocumentEvent{upload, addSigner, sign}, doc.Events)
			return nil
		})

		require.NoError(t, uc.ProcessWebhook(ctx, payload))
	})

	t.Run("redelivery", func(t *testing.T) {
		uc, docRepo := newTestWebhookUsecase(t)
		payload := &entity.WebhookPayload{Event: sign, Document: clicksign.Document{Key: clicksign.String("doc-3")}}

		stored := &clicksign.Document{Key: clicksign.String("doc-3"), Events: []clicksign.DocumentEvent{upload, sign}}
		docRepo.EXPECT().FindByKey(ctx, "doc-3").Return(stored, nil)
		docRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, doc *clicksign.Document) error {
			assert.Len(t, doc.Events, 2)
			return nil
		})

		require.NoError(t, uc.ProcessWebhook(ctx, payload))
	})
}

func TestWebhookUsecase_RejectsInvalidPayload(t *testing.T) {
	uc, _ := newTestWebhookUsecase(t)

	err := uc.ProcessWebhook(context.Background(), &entity.WebhookPayload{
		Document: clicksign.Document{Key: clicksign.String("doc-1")},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.ProcessWebhook(context.Background(), &entity.WebhookPayload{
		Event: clicksign.DocumentEvent{Name: "sign"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWebhookUsecase_StoreFailures(t *testing.T) {
	ctx := context.Background()
	payload := &entity.WebhookPayload{
		Event:    clicksign.DocumentEvent{Name: "sign"},
		Document: clicksign.Document{Key: clicksign.String("doc-1")},
	}

	t.Run("load", func(t *testing.T) {
		uc, docRepo := newTestWebhookUsecase(t)
		docRepo.EXPECT().FindByKey(ctx, "doc-1").Return(nil, errors.New("timeout"))

		err := uc.ProcessWebhook(ctx, payload)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load document")
	})

	t.Run("save", func(t *testing.T) {
		uc, docRepo := newTestWebhookUsecase(t)
		docRepo.EXPECT().FindByKey(ctx, "doc-1").Return(&clicksign.Document{Key: clicksign.String("doc-1")}, nil)
		docRepo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("oom"))

		err := uc.ProcessWebhook(ctx, payload)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save document")
	})
}
