package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/domain/entity"
	"github.com/webatelier/landing-api/pkg/helpers"
)

var (
	// ErrInvalidFile marks an upload rejected by the type/size filter.
	ErrInvalidFile = errors.New("invalid file")
	// ErrNotConfigured marks an upload attempted without a configured image
	// host. There is no local-disk fallback.
	ErrNotConfigured = errors.New("image host not configured")
)

// Bounding box applied before the image reaches storage.
const (
	fitWidth  = 1200
	fitHeight = 800
)

// UploadService relays accepted images to the external image host.
type UploadService struct {
	GCS          *storage.Client
	Bucket       string
	Folder       string
	MaxBytes     int64
	AllowedTypes []string
	Logger       *logrus.Logger
}

func NewUploadService(gcs *storage.Client, bucket, folder string, maxBytes int64, allowedTypes []string, logger *logrus.Logger) *UploadService {
	return &UploadService{
		GCS:          gcs,
		Bucket:       bucket,
		Folder:       folder,
		MaxBytes:     maxBytes,
		AllowedTypes: allowedTypes,
		Logger:       logger,
	}
}

type UploadResult struct {
	ImageURL     string `json:"imageUrl"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// UploadImage filters the file, downscales it to fit within 1200x800, stores
// it on the image host and returns the public URL.
func (s *UploadService) UploadImage(ctx context.Context, id *entity.Identity, r io.Reader, filename, contentType string, size int64) (*UploadResult, error) {
	if id == nil || id.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !s.typeAllowed(contentType) {
		return nil, fmt.Errorf("%w: type %s not allowed", ErrInvalidFile, contentType)
	}
	if size > s.MaxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInvalidFile, s.MaxBytes)
	}
	if s.GCS == nil || s.Bucket == "" {
		return nil, ErrNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(r, s.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.MaxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInvalidFile, s.MaxBytes)
	}

	data = fitWithin(data, contentType)

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = extForType(contentType)
	}
	objectPath := path.Join(s.Folder, uuid.NewString()+ext)

	url, err := helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, bytes.NewReader(data))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("object", objectPath).Error("image upload failed")
		}
		return nil, err
	}
	return &UploadResult{ImageURL: url, OriginalName: filename, Size: int64(len(data))}, nil
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, t := range s.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// fitWithin downscales oversized jpeg/png images to the bounding box. Formats
// the decoder does not handle (webp) pass through unchanged.
func fitWithin(data []byte, contentType string) []byte {
	format, ok := formatForType(contentType)
	if !ok {
		return data
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	b := img.Bounds()
	if b.Dx() <= fitWidth && b.Dy() <= fitHeight {
		return data
	}
	fitted := imaging.Fit(img, fitWidth, fitHeight, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, format, imaging.JPEGQuality(85)); err != nil {
		return data
	}
	return buf.Bytes()
}

func formatForType(contentType string) (imaging.Format, bool) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return imaging.JPEG, true
	case "image/png":
		return imaging.PNG, true
	default:
		return 0, false
	}
}

func extForType(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
