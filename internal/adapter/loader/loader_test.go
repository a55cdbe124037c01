package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/validator"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTranscript(t *testing.T) {
	dir := t.TempDir()
	refDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	path := writeFile(t, dir, "sprint_planning.txt", "[00:01] Alice: let's plan the sprint\n")
	tr, err := LoadTranscript(path, refDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.MeetingType != "sprint_planning" {
		t.Fatalf("meeting type = %q, want sprint_planning", tr.MeetingType)
	}
	if !tr.Date.Equal(refDate) {
		t.Fatalf("date not pinned to reference date")
	}
}

func TestLoadTranscriptEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "standup.txt", "   \n\t")
	_, err := LoadTranscript(path, time.Now())
	if !errors.Is(err, entities.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadTranscriptMissingFile(t *testing.T) {
	_, err := LoadTranscript(filepath.Join(t.TempDir(), "nope.txt"), time.Now())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRosterJSONList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `[
		{"name": "Alice Tran", "role": "Engineer", "email": "alice@co.com"},
		{"name": "Bob Le", "role": "Product Manager", "email": "bob@co.com"}
	]`)

	roster, err := LoadRoster(path, validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.Len() != 2 {
		t.Fatalf("roster len = %d, want 2", roster.Len())
	}
	if p, ok := roster.FindByName("Alice Tran"); !ok || p.Role != "Engineer" {
		t.Fatalf("lookup failed: %v %v", p, ok)
	}
}

func TestLoadRosterJSONMap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `{
		"Bob Le": {"role": "Product Manager", "email": "bob@co.com"},
		"Alice Tran": {"role": "Engineer", "email": "alice@co.com"}
	}`)

	roster, err := LoadRoster(path, validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Map form is flattened in sorted key order for determinism.
	people := roster.People()
	if len(people) != 2 || people[0].Name != "Alice Tran" || people[1].Name != "Bob Le" {
		t.Fatalf("unexpected order: %v", people)
	}
}

func TestLoadRosterYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.yaml", `
- name: Alice Tran
  role: Engineer
  email: alice@co.com
`)
	roster, err := LoadRoster(path, validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.Len() != 1 {
		t.Fatalf("roster len = %d, want 1", roster.Len())
	}
}

func TestLoadRosterBadEmail(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `[{"name": "Alice", "role": "Engineer", "email": "not-an-email"}]`)
	_, err := LoadRoster(path, validator.New())
	if !errors.Is(err, entities.ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}

func TestLoadRosterEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `[]`)
	_, err := LoadRoster(path, validator.New())
	if !errors.Is(err, entities.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadRosterDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `[
		{"name": "Alice Tran", "role": "Engineer", "email": "a1@co.com"},
		{"name": "Alice Tran", "role": "Designer", "email": "a2@co.com"}
	]`)
	_, err := LoadRoster(path, validator.New())
	if !errors.Is(err, entities.ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
}
