package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/ids"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

var (
	ErrNotAnImage   = errors.New("file is not an image")
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

// BlobStore is the slice of the object store the upload path needs.
type BlobStore interface {
	Bucket() string
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	PublicURL(objectKey string) string
}

type UploadInput struct {
	Kind       models.UploadKind
	File       multipart.File
	Header     *multipart.FileHeader
	UploadedBy string
}

type UploadResult struct {
	Upload models.Upload
	URL    string
}

type UploadService struct {
	uploads *repository.UploadRepository
	store   BlobStore
	cfg     *config.AppConfig
	log     zerolog.Logger
}

func NewUploadService(uploads *repository.UploadRepository, store BlobStore, cfg *config.AppConfig, log zerolog.Logger) *UploadService {
	return &UploadService{uploads: uploads, store: store, cfg: cfg, log: log}
}

// Upload sniffs the file as an image, stores it and records the upload.
// The returned URL is what the product form or rich-text editor embeds.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	if input.File == nil || input.Header == nil {
		return UploadResult{}, errors.New("invalid file payload")
	}
	if max := s.cfg.Upload.MaxSizeBytes; max > 0 && input.Header.Size > max {
		return UploadResult{}, ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return UploadResult{}, ErrNotAnImage
	}

	contentType, err := detectImageType(data)
	if err != nil {
		return UploadResult{}, err
	}

	uploadID := ids.New()
	objectKey := objectKeyFor(input.Kind, uploadID, contentType, time.Now().UTC())

	if err := s.store.Put(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return UploadResult{}, err
	}

	upload := models.Upload{
		ID:          uploadID,
		Kind:        input.Kind,
		Bucket:      s.store.Bucket(),
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		UploadedBy:  input.UploadedBy,
	}
	if err := s.uploads.Create(ctx, upload); err != nil {
		return UploadResult{}, fmt.Errorf("save upload record: %w", err)
	}

	return UploadResult{Upload: upload, URL: s.store.PublicURL(objectKey)}, nil
}

// detectImageType sniffs the leading bytes and accepts image/* only.
func detectImageType(data []byte) (string, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, contentType)
	}
	return contentType, nil
}

func objectKeyFor(kind models.UploadKind, id string, contentType string, now time.Time) string {
	ext := "bin"
	if i := strings.LastIndex(contentType, "/"); i >= 0 && i < len(contentType)-1 {
		ext = contentType[i+1:]
	}
	return path.Join("uploads", string(kind), now.Format("2006/01/02"), fmt.Sprintf("%s.%s", id, ext))
}
