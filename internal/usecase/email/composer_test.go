package email

import (
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestDraftSkipsUnresolvedAssignee(t *testing.T) {
	c := NewComposer("")
	item := entities.ActionItem{
		Description:  "review the deploy plan",
		AssigneeName: "Bob",
	}
	if d := c.Draft(item, "standup"); d != nil {
		t.Fatalf("unresolved assignee must produce no draft, got %+v", d)
	}
}

func TestDraftContents(t *testing.T) {
	alice := &entities.Person{Name: "Alice Tran", Role: "Engineer", Email: "alice@co.com"}
	due := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	item := entities.ActionItem{
		Description:  "update the API docs",
		Owner:        alice,
		OwnerName:    "Alice Tran",
		Assignee:     alice,
		AssigneeName: "Alice Tran",
		Priority:     entities.PriorityHigh,
		DueContext:   "Friday",
		DueDate:      &due,
	}

	d := NewComposer("").Draft(item, "sprint_planning")
	if d == nil {
		t.Fatalf("expected a draft")
	}
	if d.To != "alice@co.com" {
		t.Fatalf("to = %q", d.To)
	}
	if !strings.Contains(d.Subject, "update the API docs") {
		t.Fatalf("subject missing task: %q", d.Subject)
	}
	for _, want := range []string{"Hi Alice,", "sprint planning", "update the API docs", "High", "4 September 2026", "Alice Tran"} {
		if !strings.Contains(d.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, d.Body)
		}
	}
}

func TestDraftUnresolvedOwnerStillSigned(t *testing.T) {
	bob := &entities.Person{Name: "Bob Le", Role: "PM", Email: "bob@co.com"}
	item := entities.ActionItem{
		Description:  "prepare the demo",
		OwnerName:    "Carol",
		Assignee:     bob,
		AssigneeName: "Bob Le",
	}

	d := NewComposer("").Draft(item, "standup")
	if d == nil {
		t.Fatalf("expected a draft")
	}
	if !strings.Contains(d.Body, "Carol") {
		t.Fatalf("unresolved owner name should still sign the mail:\n%s", d.Body)
	}
}

func TestDraftAllPreservesOrderAndSkips(t *testing.T) {
	alice := &entities.Person{Name: "Alice", Role: "Engineer", Email: "alice@co.com"}
	carol := &entities.Person{Name: "Carol", Role: "TL", Email: "carol@co.com"}

	outcome := entities.NewMeetingOutcome("standup", time.Now())
	outcome.ActionItems = []entities.ActionItem{
		{Description: "first", Assignee: alice, AssigneeName: "Alice"},
		{Description: "second", AssigneeName: "Bob"}, // unresolved, skipped
		{Description: "third", Assignee: carol, AssigneeName: "Carol"},
	}

	drafts := NewComposer("").DraftAll(outcome)
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].To != "alice@co.com" || drafts[1].To != "carol@co.com" {
		t.Fatalf("drafts out of order: %+v", drafts)
	}
}
