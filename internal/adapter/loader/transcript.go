package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// LoadTranscript reads a transcript file and derives the meeting type
// from the filename stem (sprint_planning.txt -> sprint_planning). The
// reference date becomes the transcript date and part of the artifact
// identity.
func LoadTranscript(path string, refDate time.Time) (*entities.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript file: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: transcript file %s", entities.ErrEmptyInput, path)
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return entities.NewTranscript(stem, text, refDate)
}
