package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_accounting_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_accounting_app/internal/utils"
)

const maxNameAttempts = 5

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type fileService struct {
	BaseService
	dir     string
	baseURL string
	maxSize int64
	now     func() time.Time
}

type FileServiceOption func(*fileService)

// WithMaxFileSize rejects uploads larger than n bytes. Zero disables the check.
func WithMaxFileSize(n int64) FileServiceOption {
	return func(s *fileService) { s.maxSize = n }
}

func WithFileClock(now func() time.Time) FileServiceOption {
	return func(s *fileService) { s.now = now }
}

// NewFileService stores uploads under dir and links them below baseURL/uploads.
func NewFileService(dir, baseURL string, opts ...FileServiceOption) portssvc.FileSvcFacade {
	s := &fileService{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.FileSvcFacade = (*fileService)(nil)

func (s *fileService) Save(ctx context.Context, upload domain.FileUpload) (*domain.UploadedFile, error) {
	if upload.Content == nil {
		return nil, apperrors.Validationf("no file uploaded")
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return nil, apperrors.Validationf("file %s exceeds the %d byte limit", upload.OriginalName, s.maxSize)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.LogError(ctx, err, "Failed to create uploads directory", slog.String("dir", s.dir))
		return nil, fmt.Errorf("%w: create uploads directory: %v", apperrors.ErrInternal, err)
	}

	dst, name, err := s.createUnique(upload.OriginalName)
	if err != nil {
		s.LogError(ctx, err, "Failed to create upload file", slog.String("original_name", upload.OriginalName))
		return nil, fmt.Errorf("%w: create upload file: %v", apperrors.ErrInternal, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, upload.Content)
	if err != nil {
		_ = os.Remove(dst.Name())
		s.LogError(ctx, err, "Failed to write upload file", slog.String("filename", name))
		return nil, fmt.Errorf("%w: write upload file: %v", apperrors.ErrInternal, err)
	}

	s.LogInfo(ctx, "File uploaded", slog.String("filename", name), slog.Int64("size", written))
	return &domain.UploadedFile{
		Filename:     name,
		OriginalName: upload.OriginalName,
		URL:          s.baseURL + "/uploads/" + name,
		Size:         written,
		MimeType:     upload.MimeType,
	}, nil
}

func (s *fileService) SaveMany(ctx context.Context, uploads []domain.FileUpload) ([]domain.UploadedFile, error) {
	if len(uploads) == 0 {
		return nil, apperrors.Validationf("no files uploaded")
	}
	out := make([]domain.UploadedFile, 0, len(uploads))
	for _, u := range uploads {
		f, err := s.Save(ctx, u)
		if err != nil {
			s.removeSaved(ctx, out)
			return nil, err
		}
		out = append(out, *f)
	}
	return out, nil
}

// removeSaved deletes the files of a batch that failed part way through.
func (s *fileService) removeSaved(ctx context.Context, saved []domain.UploadedFile) {
	for _, f := range saved {
		if err := os.Remove(filepath.Join(s.dir, f.Filename)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.LogWarn(ctx, "Failed to remove upload of aborted batch", slog.String("filename", f.Filename), slog.String("error", err.Error()))
		}
	}
}

// createUnique opens a new file named <unix ms>_<random hex>_<sanitized name>. The file is created
// exclusively, so an existing upload is never truncated.
func (s *fileService) createUnique(originalName string) (*os.File, string, error) {
	base := sanitizeFileName(originalName)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		suffix, err := utils.GenerateSecureRandomString(4)
		if err != nil {
			return nil, "", err
		}
		name := fmt.Sprintf("%d_%s_%s", s.now().UnixMilli(), suffix, base)
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return f, name, nil
	}
	return nil, "", fmt.Errorf("no free file name for %s after %d attempts", base, maxNameAttempts)
}

// sanitizeFileName keeps the base name and replaces anything outside [A-Za-z0-9._-] with "_".
func sanitizeFileName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeFileChars.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, ".")
	if base == "" {
		return "file"
	}
	return base
}
