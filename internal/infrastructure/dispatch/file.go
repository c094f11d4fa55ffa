package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DanielPopoola/empire-storefront/internal/application"
)

// FileExportSink writes invoice payloads under a local export directory.
type FileExportSink struct {
	dir string
}

func NewFileExportSink(dir string) *FileExportSink {
	return &FileExportSink{dir: dir}
}

var _ application.FileSink = (*FileExportSink)(nil)

func (s *FileExportSink) Export(_ context.Context, filename, payload string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("write invoice file: %w", err)
	}
	return nil
}
