package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Writer persists a MeetingOutcome to its identity slot. The slot is
// <dir>/<meetingType>_<YYYY_MM_DD>.json; writing the same identity twice
// replaces the artifact in full. Last writer wins, no merge.
type Writer struct {
	dir    string
	logger *zap.Logger
}

// New creates a Writer rooted at dir.
func New(dir string, logger *zap.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Write serializes the outcome to its identity slot and returns the
// artifact path. The file is written to a temp name first and renamed
// into place, so a failed write never leaves a truncated artifact.
func (w *Writer) Write(outcome *entities.MeetingOutcome) (string, error) {
	if outcome == nil {
		return "", fmt.Errorf("%w: nil outcome", entities.ErrWriteFailure)
	}
	outcome.Normalize()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output dir: %v", entities.ErrWriteFailure, err)
	}

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal outcome: %v", entities.ErrWriteFailure, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, outcome.Identity()+".json")

	tmp, err := os.CreateTemp(w.dir, "."+outcome.Identity()+".tmp-")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", entities.ErrWriteFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: write temp file: %v", entities.ErrWriteFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: close temp file: %v", entities.ErrWriteFailure, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: replace artifact: %v", entities.ErrWriteFailure, err)
	}

	w.logger.Info("artifact written",
		zap.String("identity", outcome.Identity()),
		zap.String("path", path),
	)
	return path, nil
}
