package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/SscSPs/procurement_accounting_app/internal/core/domain"
	"github.com/SscSPs/procurement_accounting_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileService_Save(t *testing.T) {
	dir := t.TempDir()
	at := time.UnixMilli(1717171717171)
	svc := services.NewFileService(dir, "http://localhost:8080/", services.WithFileClock(func() time.Time { return at }))

	f, err := svc.Save(context.Background(), domain.FileUpload{
		OriginalName: "../My Invoice (1).pdf",
		MimeType:     "application/pdf",
		Content:      strings.NewReader("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Regexp(t, `^1717171717171_[0-9a-f]{8}_My_Invoice_1_\.pdf$`, f.Filename)
	assert.Equal(t, "http://localhost:8080/uploads/"+f.Filename, f.URL)
	assert.Equal(t, int64(8), f.Size)
	assert.Equal(t, "application/pdf", f.MimeType)

	content, err := os.ReadFile(filepath.Join(dir, f.Filename))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestFileService_Limits(t *testing.T) {
	svc := services.NewFileService(t.TempDir(), "http://x", services.WithMaxFileSize(4))

	_, err := svc.Save(context.Background(), domain.FileUpload{OriginalName: "big.txt", Size: 10, Content: strings.NewReader("0123456789")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.SaveMany(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFileService_SaveMany(t *testing.T) {
	svc := services.NewFileService(t.TempDir(), "http://x")

	files, err := svc.SaveMany(context.Background(), []domain.FileUpload{
		{OriginalName: "a.txt", Content: strings.NewReader("a")},
		{OriginalName: "b.txt", Content: strings.NewReader("bb")},
	})

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, int64(2), files[1].Size)
}

func TestFileService_SaveManySameNameSameInstant(t *testing.T) {
	dir := t.TempDir()
	at := time.UnixMilli(1717171717171)
	svc := services.NewFileService(dir, "http://x", services.WithFileClock(func() time.Time { return at }))

	files, err := svc.SaveMany(context.Background(), []domain.FileUpload{
		{OriginalName: "scan.pdf", Content: strings.NewReader("FIRST")},
		{OriginalName: "scan.pdf", Content: strings.NewReader("SECOND")},
	})

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.NotEqual(t, files[0].Filename, files[1].Filename)
	assert.NotEqual(t, files[0].URL, files[1].URL)

	first, err := os.ReadFile(filepath.Join(dir, files[0].Filename))
	require.NoError(t, err)
	assert.Equal(t, "FIRST", string(first))
	second, err := os.ReadFile(filepath.Join(dir, files[1].Filename))
	require.NoError(t, err)
	assert.Equal(t, "SECOND", string(second))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestFileService_SaveManyRemovesEarlierFilesOnFailure(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewFileService(dir, "http://x")

	files, err := svc.SaveMany(context.Background(), []domain.FileUpload{
		{OriginalName: "a.txt", Content: strings.NewReader("a")},
		{OriginalName: "b.txt", Content: failingReader{}},
	})

	assert.Nil(t, files)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
