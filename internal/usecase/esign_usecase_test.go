package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"clicksign-esign/internal/domain/repository"
	mock_repository "clicksign-esign/internal/domain/repository/mock"
	"clicksign-esign/pkg/clicksign"
)

func newTestEsignUsecase(t *testing.T) (EsignUsecase, *mock_repository.MockEsignRepository, *mock_repository.MockDocumentRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockEsignRepository(ctrl)
	docRepo := mock_repository.NewMockDocumentRepository(ctrl)
	return NewEsignUsecase(repo, docRepo, zap.NewNop()), repo, docRepo
}

func documentRequest() clicksign.DocumentEnvelope {
	return clicksign.DocumentEnvelope{Document: clicksign.Document{
		Path:     "/Modelos/Teste-123.docx",
		Template: clicksign.NewDocumentTemplate("tmpl-123", map[string]string{"Company Name": "Clicksign"}),
	}}
}

func TestEsignUsecase_CreateDocumentStoresSnapshot(t *testing.T) {
	ctx := context.Background()
	uc, repo, docRepo := newTestEsignUsecase(t)

	created := &clicksign.DocumentEnvelope{Document: clicksign.Document{
		Key:    clicksign.String("doc-1"),
		Status: clicksign.String("running"),
		Path:   "/Modelos/Teste-123.docx",
	}}

	repo.EXPECT().CreateDocumentByModel(ctx, documentRequest()).Return(created, nil)
	docRepo.EXPECT().Save(ctx, &created.Document).Return(nil)

	result, err := uc.CreateDocument(ctx, documentRequest())
	require.NoError(t, err)
	assert.Equal(t, created, result)
}

func TestEsignUsecase_CreateDocumentSnapshotFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	uc, repo, docRepo := newTestEsignUsecase(t)

	created := &clicksign.DocumentEnvelope{Document: clicksign.Document{Key: clicksign.String("doc-1"), Path: "/x"}}
	repo.EXPECT().CreateDocumentByModel(ctx, gomock.Any()).Return(created, nil)
	docRepo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("redis down"))

	result, err := uc.CreateDocument(ctx, documentRequest())
	require.NoError(t, err)
	assert.Equal(t, "doc-1", *result.Document.Key)
}

func TestEsignUsecase_CreateDocumentWithoutKeySkipsSnapshot(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestEsignUsecase(t)

	repo.EXPECT().CreateDocumentByModel(ctx, gomock.Any()).Return(&clicksign.DocumentEnvelope{Document: clicksign.Document{Path: "/x"}}, nil)

	_, err := uc.CreateDocument(ctx, documentRequest())
	require.NoError(t, err)
}

func TestEsignUsecase_CreateDocumentValidation(t *testing.T) {
	uc, _, _ := newTestEsignUsecase(t)

	noPath := documentRequest()
	noPath.Document.Path = ""
	_, err := uc.CreateDocument(context.Background(), noPath)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noTemplate := documentRequest()
	noTemplate.Document.Template.Key = ""
	_, err = uc.CreateDocument(context.Background(), noTemplate)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, clicksign.ErrMissingTemplateKey)
}

func TestEsignUsecase_CreateDocumentPropagatesRemoteError(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestEsignUsecase(t)

	remote := &clicksign.RemoteError{Kind: clicksign.KindUnauthorized, StatusCode: 401, Message: "401 Unauthorized"}
	repo.EXPECT().CreateDocumentByModel(ctx, gomock.Any()).Return(nil, remote)

	_, err := uc.CreateDocument(ctx, documentRequest())
	assert.ErrorIs(t, err, clicksign.ErrUnauthorized)
}

func TestEsignUsecase_CreateSigner(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestEsignUsecase(t)

	req := clicksign.SignerEnvelope{Signer: clicksign.Signer{Email: clicksign.String("fulano@example.com"), Auths: []string{"email"}}}
	resp := &clicksign.SignerEnvelope{Signer: clicksign.Signer{Key: clicksign.String("sig-1")}}
	repo.EXPECT().CreateSigner(ctx, req).Return(resp, nil)

	result, err := uc.CreateSigner(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "sig-1", *result.Signer.Key)
}

func TestEsignUsecase_AddSignerToDocument(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestEsignUsecase(t)

	req := clicksign.ListEnvelope{List: clicksign.SignerToDocument{
		DocumentKey: clicksign.String("doc-1"),
		SignerKey:   clicksign.String("sig-1"),
		SignAs:      clicksign.String("sign"),
	}}
	resp := &clicksign.ListEnvelope{List: clicksign.SignerToDocument{
		Key:                 clicksign.String("list-1"),
		RequestSignatureKey: clicksign.String("rsk-1"),
	}}
	repo.EXPECT().AddSignerToDocument(ctx, req).Return(resp, nil)

	result, err := uc.AddSignerToDocument(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "rsk-1", *result.List.RequestSignatureKey)
}

func TestEsignUsecase_AddSignerToDocumentValidation(t *testing.T) {
	uc, _, _ := newTestEsignUsecase(t)

	_, err := uc.AddSignerToDocument(context.Background(), clicksign.ListEnvelope{List: clicksign.SignerToDocument{SignerKey: clicksign.String("sig-1")}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.AddSignerToDocument(context.Background(), clicksign.ListEnvelope{List: clicksign.SignerToDocument{DocumentKey: clicksign.String("doc-1")}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEsignUsecase_RequestSigningByEmail(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newTestEsignUsecase(t)

	body := map[string]string{"request_signature_key": "rsk-1", "message": "Please sign"}
	repo.EXPECT().RequestSigningByEmail(ctx, body).Return(nil)
	require.NoError(t, uc.RequestSigningByEmail(ctx, body))

	forbidden := &clicksign.RemoteError{Kind: clicksign.KindForbidden, StatusCode: 403, Message: "403 Forbidden"}
	repo.EXPECT().RequestSigningByEmail(ctx, body).Return(forbidden)
	err := uc.RequestSigningByEmail(ctx, body)
	assert.EqualError(t, err, "403 Forbidden")

	assert.ErrorIs(t, uc.RequestSigningByEmail(ctx, map[string]string{}), ErrInvalidInput)
}

func TestEsignUsecase_GetDocument(t *testing.T) {
	ctx := context.Background()
	uc, _, docRepo := newTestEsignUsecase(t)

	doc := &clicksign.Document{Key: clicksign.String("doc-1"), Path: "/x"}
	docRepo.EXPECT().FindByKey(ctx, "doc-1").Return(doc, nil)
	got, err := uc.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	docRepo.EXPECT().FindByKey(ctx, "missing").Return(nil, repository.ErrDocumentNotFound)
	_, err = uc.GetDocument(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	_, err = uc.GetDocument(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
