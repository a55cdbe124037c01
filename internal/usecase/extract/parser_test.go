package extract

import (
	"errors"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestParseFencedResponse(t *testing.T) {
	raw := "```json\n" + `{
		"action_items": [{"assignee": "Alice", "description": "update the API docs", "owner_name": "Alice", "priority": "High", "evidence": "[00:01] Alice: I will update the API docs", "deadline_text": "Friday"}],
		"decisions": [],
		"risks": [],
		"open_questions": []
	}` + "\n```"

	resp, err := NewParser().Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(resp.ActionItems))
	}
	if resp.ActionItems[0].DeadlineText != "Friday" {
		t.Fatalf("deadline_text = %q", resp.ActionItems[0].DeadlineText)
	}
}

func TestParseOmittedCategories(t *testing.T) {
	resp, err := NewParser().Parse(`{"decisions": [{"decision": "ship it", "owner_name": "Bob", "evidence": "[00:05] Bob: let's ship"}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Omitted categories are nil here; the service normalizes them.
	if len(resp.ActionItems) != 0 || len(resp.Risks) != 0 || len(resp.OpenQuestions) != 0 {
		t.Fatalf("omitted categories should decode empty: %+v", resp)
	}
	if len(resp.Decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(resp.Decisions))
	}
}

func TestParseMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"sorry, I cannot produce JSON for that",
		`{"action_items": [`,
	} {
		_, err := NewParser().Parse(raw)
		if !errors.Is(err, entities.ErrMalformedExtraction) {
			t.Fatalf("Parse(%q): expected ErrMalformedExtraction, got %v", raw, err)
		}
	}
}

func TestParseJSONWithSurroundingProse(t *testing.T) {
	raw := "Here is the extraction you asked for:\n{\"action_items\": []}\nLet me know if you need more."
	resp, err := NewParser().Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ActionItems == nil || len(resp.ActionItems) != 0 {
		t.Fatalf("unexpected action items: %+v", resp.ActionItems)
	}
}
