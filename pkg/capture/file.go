package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes each record to its own file under Dir.
type FileSink struct {
	Dir string
}

// NewFileSink creates the directory if needed and returns a sink writing
// into it.
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: create %s: %w", dir, err)
	}
	return &FileSink{Dir: dir}, nil
}

// Write stores rec as Dir/rec.Name().
func (s *FileSink) Write(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, rec.Name())
	if err := os.WriteFile(path, rec.Data, 0o644); err != nil {
		return fmt.Errorf("capture: write %s: %w", path, err)
	}
	return nil
}
