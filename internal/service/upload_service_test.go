package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

type fakeBlobStore struct {
	puts map[string][]byte
}

func (s *fakeBlobStore) Bucket() string { return "shop-media" }

func (s *fakeBlobStore) Put(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if s.puts == nil {
		s.puts = map[string][]byte{}
	}
	s.puts[objectKey] = data
	return nil
}

func (s *fakeBlobStore) PublicURL(objectKey string) string {
	return "https://cdn.shop.vn/shop-media/" + objectKey
}

func newUploadService(t *testing.T) (*UploadService, *fakeBlobStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := &config.AppConfig{}
	cfg.Upload.MaxSizeBytes = 1 << 20

	store := &fakeBlobStore{}
	svc := NewUploadService(repository.NewUploadRepository(mock), store, cfg, zerolog.Nop())
	return svc, store, mock
}

func uploadInput(kind models.UploadKind, name string, data []byte) UploadInput {
	return UploadInput{
		Kind:       kind,
		File:       memFile{bytes.NewReader(data)},
		Header:     &multipart.FileHeader{Filename: name, Size: int64(len(data))},
		UploadedBy: "u1",
	}
}

func TestUploadService_Upload_PNG(t *testing.T) {
	svc, store, mock := newUploadService(t)

	mock.ExpectExec(`INSERT INTO uploads`).
		WithArgs(pgxmock.AnyArg(), models.UploadKindProduct, "shop-media", pgxmock.AnyArg(),
			"image/png", int64(len(pngHeader)), "u1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	result, err := svc.Upload(context.Background(), uploadInput(models.UploadKindProduct, "a.png", pngHeader))
	require.NoError(t, err)
	require.Equal(t, "image/png", result.Upload.ContentType)
	require.Contains(t, result.URL, result.Upload.ObjectKey)
	require.Len(t, store.puts, 1)
	require.Contains(t, result.Upload.ObjectKey, "uploads/product/")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadService_Upload_RejectsNonImage(t *testing.T) {
	svc, store, mock := newUploadService(t)

	_, err := svc.Upload(context.Background(),
		uploadInput(models.UploadKindDescription, "note.txt", []byte("plain text, not an image")))
	require.ErrorIs(t, err, ErrNotAnImage)
	require.Empty(t, store.puts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadService_Upload_RejectsOversize(t *testing.T) {
	svc, store, mock := newUploadService(t)

	input := uploadInput(models.UploadKindProduct, "big.png", pngHeader)
	input.Header.Size = 2 << 20
	_, err := svc.Upload(context.Background(), input)
	require.ErrorIs(t, err, ErrFileTooLarge)
	require.Empty(t, store.puts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestObjectKeyFor(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	key := objectKeyFor(models.UploadKindDescription, "abc123", "image/jpeg", now)
	require.Equal(t, "uploads/description/2025/03/14/abc123.jpeg", key)
}

func TestDetectImageType(t *testing.T) {
	contentType, err := detectImageType(pngHeader)
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)

	_, err = detectImageType([]byte("<html><body>nope</body></html>"))
	require.ErrorIs(t, err, ErrNotAnImage)
}
