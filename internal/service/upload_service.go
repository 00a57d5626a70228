package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scentlab/scentlab/internal/config"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

var allowedUploadScenes = map[string]struct{}{
	"product":  {},
	"category": {},
	"post":     {},
	"design":   {},
	"common":   {},
}

// UploadService file upload service
type UploadService struct {
	cfg *config.Config
}

// NewUploadService creates the upload service
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveFile validates and stores an uploaded file, returning its public path
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if file == nil {
		return "", ErrInvalidInput
	}
	if s.cfg.Upload.MaxSize > 0 && file.Size > s.cfg.Upload.MaxSize {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", ErrUploadTypeInvalid
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// sniff the MIME type from the first bytes
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}

	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.cfg.Upload.AllowedTypes {
			if strings.EqualFold(contentType, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", ErrUploadTypeInvalid
		}
	}

	if strings.HasPrefix(contentType, "image/") {
		imgCfg, _, err := image.DecodeConfig(src)
		if err != nil {
			return "", ErrUploadTypeInvalid
		}
		if s.cfg.Upload.MaxWidth > 0 && imgCfg.Width > s.cfg.Upload.MaxWidth {
			return "", ErrUploadTypeInvalid
		}
		if s.cfg.Upload.MaxHeight > 0 && imgCfg.Height > s.cfg.Upload.MaxHeight {
			return "", ErrUploadTypeInvalid
		}
		if _, err := src.Seek(0, 0); err != nil {
			return "", err
		}
	}

	normalizedScene := normalizeUploadScene(scene)

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	now := time.Now()
	year := now.Format("2006")
	month := now.Format("01")

	baseDir := s.cfg.Upload.Dir
	if baseDir == "" {
		baseDir = "uploads"
	}
	savePath := filepath.Join(baseDir, normalizedScene, year, month, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	// relative path; the frontend prepends the public base URL
	return fmt.Sprintf("/uploads/%s/%s/%s/%s", normalizedScene, year, month, filename), nil
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "common"
	}
	if _, ok := allowedUploadScenes[value]; ok {
		return value
	}
	return "common"
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}
