package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"portfolio-site/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrTooLarge is returned for files over the upload limit.
	ErrTooLarge = fmt.Errorf("%w: file too large", domain.ErrInvalidInput)
	// ErrNotImage is returned when the sniffed type is not image/*.
	ErrNotImage = fmt.Errorf("%w: file is not an image", domain.ErrInvalidInput)
	// ErrEmpty is returned for zero-byte uploads.
	ErrEmpty = fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
)

const DefaultFolder = "uploads"

var folderPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*(/[a-z0-9][a-z0-9_-]*)*$`)

// Object describes a stored upload.
type Object struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Uploader validates images and writes them under unique names.
type Uploader struct {
	store    Store
	maxBytes int64
	now      func() time.Time
	newID    func() string
	logger   *zap.Logger
}

func NewUploader(store Store, maxBytes int64, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &Uploader{
		store:    store,
		maxBytes: maxBytes,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger.Named("upload"),
	}
}

// MaxBytes is the largest accepted file size.
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Upload stores r under folder and returns its public URL. The content type
// is sniffed from the bytes; any client-declared type is ignored.
func (u *Uploader) Upload(ctx context.Context, folder string, r io.Reader) (*Object, error) {
	folder, err := cleanFolder(folder)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	switch {
	case len(data) == 0:
		return nil, ErrEmpty
	case int64(len(data)) > u.maxBytes:
		return nil, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, ErrNotImage
	}
	contentType := strings.SplitN(mt.String(), ";", 2)[0]

	path := fmt.Sprintf("%s/%s_%d%s", folder, u.newID(), u.now().UnixMilli(), mt.Extension())
	if err := u.store.Upload(ctx, path, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, err
	}
	u.logger.Info("stored upload",
		zap.String("path", path),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)))

	return &Object{
		Path:        path,
		URL:         u.store.PublicURL(path),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(strings.ToLower(strings.TrimSpace(folder)), "/")
	if folder == "" {
		return DefaultFolder, nil
	}
	if !folderPattern.MatchString(folder) {
		return "", fmt.Errorf("%w: invalid folder %q", domain.ErrInvalidInput, folder)
	}
	return folder, nil
}
