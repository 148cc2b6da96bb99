package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"imobsite/internal/domain"
)

const (
	MaxFileSize    = 10 * 1024 * 1024 // 10 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// AllowedMimeTypes lists the image types accepted for listing photos.
var AllowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageStore is the slice of the listing repository the upload service
// writes through.
type ImageStore interface {
	AddImages(ctx context.Context, listingID int64, urls []string) ([]domain.ListingImage, error)
	SetCover(ctx context.Context, listingID, imageID int64) error
	DeleteImage(ctx context.Context, listingID, imageID int64) error
}

// Service stores listing photos on local disk and records them through
// the listing repository.
type Service struct {
	images     ImageStore
	baseDir    string
	staticBase string
}

func NewService(images ImageStore, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{images: images, baseDir: baseDir, staticBase: staticBase}
}

// SaveListingImages validates and writes the uploaded files under
// uploads/listings/<id>/ and appends them to the listing's gallery.
// Files already written are removed again when a later one fails.
func (s *Service) SaveListingImages(ctx context.Context, listingID int64, files []*multipart.FileHeader) ([]domain.ListingImage, error) {
	var urls []string
	var written []string

	cleanup := func() {
		for _, p := range written {
			_ = os.Remove(p)
		}
	}

	for _, fh := range files {
		url, absPath, err := s.saveFile(listingID, fh)
		if err != nil {
			cleanup()
			return nil, err
		}
		urls = append(urls, url)
		written = append(written, absPath)
	}

	images, err := s.images.AddImages(ctx, listingID, urls)
	if err != nil {
		cleanup()
		return nil, err
	}
	return images, nil
}

func (s *Service) saveFile(listingID int64, fh *multipart.FileHeader) (url, absPath string, err error) {
	if fh.Size == 0 {
		return "", "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return "", "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	ext, ok := AllowedMimeTypes[mimeType]
	if !ok {
		return "", "", ErrInvalidMimeType
	}
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	relDir := filepath.Join("listings", strconv.FormatInt(listingID, 10))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := uuid.New().String() + ext
	absPath = filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", "", fmt.Errorf("write file: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join(relDir, filename))
	return s.staticBase + "/" + relPath, absPath, nil
}

// SetCover promotes one gallery image to cover.
func (s *Service) SetCover(ctx context.Context, listingID, imageID int64) error {
	return s.images.SetCover(ctx, listingID, imageID)
}

// DeleteImage removes a gallery image record. The file on disk is left
// behind; stale files are cleaned up out of band.
func (s *Service) DeleteImage(ctx context.Context, listingID, imageID int64) error {
	return s.images.DeleteImage(ctx, listingID, imageID)
}
