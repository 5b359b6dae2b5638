package usecase

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"photostudio/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	defaultMaxUploadMB     = 10
	customOrderMaxUploadMB = 25
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadUseCase validates photo upload batches. Each file is judged on its
// own: a rejected file never blocks acceptance of the rest of the batch.
type UploadUseCase struct {
	maxFileBytes int64
}

// NewUploadUseCase applies the default per-file ceiling, overridable through
// the UPLOAD_MAX_FILE_MB env var.
func NewUploadUseCase() *UploadUseCase {
	return &UploadUseCase{maxFileBytes: uploadLimitFromEnv("UPLOAD_MAX_FILE_MB", defaultMaxUploadMB)}
}

// NewCustomOrderUploadUseCase applies the larger custom-order ceiling,
// overridable through CUSTOM_ORDER_MAX_FILE_MB.
func NewCustomOrderUploadUseCase() *UploadUseCase {
	return &UploadUseCase{maxFileBytes: uploadLimitFromEnv("CUSTOM_ORDER_MAX_FILE_MB", customOrderMaxUploadMB)}
}

// ValidateBatch checks every candidate against the MIME allow-list and the
// per-file size ceiling, returning one result per candidate in order.
func (u *UploadUseCase) ValidateBatch(files []entities.UploadCandidate) []entities.UploadResult {
	now := time.Now().UTC()
	results := make([]entities.UploadResult, 0, len(files))
	for _, f := range files {
		if reason := u.validate(f); reason != "" {
			log.Printf("[upload][usecase] rejected name=%s type=%s size=%d reason=%q", f.Name, f.ContentType, f.Size, reason)
			results = append(results, entities.UploadResult{Name: f.Name, Accepted: false, Reason: reason})
			continue
		}
		results = append(results, entities.UploadResult{
			ID:         uuid.NewString(),
			Name:       f.Name,
			Accepted:   true,
			UploadedAt: now,
		})
	}
	return results
}

// MaxFileBytes exposes the effective ceiling for request-size limits at the
// HTTP layer.
func (u *UploadUseCase) MaxFileBytes() int64 {
	return u.maxFileBytes
}

func (u *UploadUseCase) validate(f entities.UploadCandidate) string {
	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if !allowedUploadTypes[contentType] {
		return fmt.Sprintf("File type %s is not supported. Please upload JPEG, PNG, or WebP images.", f.ContentType)
	}
	if f.Size > u.maxFileBytes {
		return fmt.Sprintf("File size must be less than %dMB.", u.maxFileBytes/(1024*1024))
	}
	return ""
}

func uploadLimitFromEnv(key string, defMB int64) int64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			return mb * 1024 * 1024
		}
		log.Printf("[upload][usecase] ignoring invalid %s=%q", key, v)
	}
	return defMB * 1024 * 1024
}
