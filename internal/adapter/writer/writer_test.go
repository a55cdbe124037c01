package writer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestWriteArtifactPath(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, zap.NewNop())

	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	outcome := entities.NewMeetingOutcome("sprint_planning", date)

	path, err := w.Write(outcome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "sprint_planning_2026_08_31.json")
	if path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
}

func TestWriteOverwritesSameIdentity(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, zap.NewNop())
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	first := entities.NewMeetingOutcome("standup", date)
	first.Decisions = append(first.Decisions, entities.Decision{Description: "old decision"})
	if _, err := w.Write(first); err != nil {
		t.Fatalf("first write: %v", err)
	}

	second := entities.NewMeetingOutcome("standup", date)
	second.Decisions = append(second.Decisions, entities.Decision{Description: "new decision"})
	path, err := w.Write(second)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if strings.Contains(string(data), "old decision") {
		t.Fatalf("prior artifact content survived the overwrite")
	}
	if !strings.Contains(string(data), "new decision") {
		t.Fatalf("new content missing from artifact")
	}

	// Only the artifact should remain; no temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file in output dir, got %d", len(entries))
	}
}

func TestWriteSerializesEmptyCategories(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, zap.NewNop())

	outcome := &entities.MeetingOutcome{
		MeetingType: "retro",
		Date:        time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	path, err := w.Write(outcome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	for _, field := range []string{"action_items", "decisions", "risks", "open_questions"} {
		raw, ok := decoded[field]
		if !ok {
			t.Fatalf("artifact missing field %s", field)
		}
		if string(raw) == "null" {
			t.Fatalf("field %s serialized as null", field)
		}
	}
}

func TestWriteNilOutcome(t *testing.T) {
	w := New(t.TempDir(), zap.NewNop())
	if _, err := w.Write(nil); err == nil {
		t.Fatalf("expected error for nil outcome")
	}
}
