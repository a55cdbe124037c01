package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActionItem is a task extracted from the transcript. Owner and Assignee
// are resolved against the roster by name; when no roster entry matches,
// the name string is kept and the Person link stays nil so downstream
// consumers can flag the gap instead of losing the item.
type ActionItem struct {
	Description  string     `json:"description"`
	OwnerName    string     `json:"owner_name"`
	Owner        *Person    `json:"owner,omitempty"`
	AssigneeName string     `json:"assignee_name"`
	Assignee     *Person    `json:"assignee,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	Evidence     string     `json:"evidence,omitempty"`
	DueContext   string     `json:"due_context,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// OwnerResolved reports whether the owner matched a roster entry.
func (a ActionItem) OwnerResolved() bool { return a.Owner != nil }

// AssigneeResolved reports whether the assignee matched a roster entry.
func (a ActionItem) AssigneeResolved() bool { return a.Assignee != nil }

// Decision is a decision stated or agreed during the meeting.
type Decision struct {
	Description string `json:"description"`
	OwnerName   string `json:"owner_name,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
}

// Risk is a delay, blocker, dependency or concern raised in the meeting.
type Risk struct {
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
	Context     string `json:"context,omitempty"`
}

// OpenQuestion is a question raised but not resolved during the meeting.
type OpenQuestion struct {
	Description string `json:"description"`
	Evidence    string `json:"evidence,omitempty"`
	Context     string `json:"context,omitempty"`
}

// MeetingOutcome is the single artifact a run produces. Its identity is
// (MeetingType, Date); a later outcome with the same identity fully
// replaces an earlier one in storage.
type MeetingOutcome struct {
	RunID         uuid.UUID      `json:"run_id"`
	MeetingType   string         `json:"meeting_type"`
	Date          time.Time      `json:"date"`
	GeneratedAt   time.Time      `json:"generated_at"`
	ActionItems   []ActionItem   `json:"action_items"`
	Decisions     []Decision     `json:"decisions"`
	Risks         []Risk         `json:"risks"`
	OpenQuestions []OpenQuestion `json:"open_questions"`
}

// NewMeetingOutcome creates an outcome with all category slices
// initialized. Empty categories serialize as [], never null.
func NewMeetingOutcome(meetingType string, date time.Time) *MeetingOutcome {
	return &MeetingOutcome{
		RunID:         uuid.New(),
		MeetingType:   meetingType,
		Date:          date,
		GeneratedAt:   time.Now().UTC(),
		ActionItems:   make([]ActionItem, 0),
		Decisions:     make([]Decision, 0),
		Risks:         make([]Risk, 0),
		OpenQuestions: make([]OpenQuestion, 0),
	}
}

// Normalize replaces nil category slices with empty ones so the artifact
// never serializes a category as null.
func (o *MeetingOutcome) Normalize() {
	if o.ActionItems == nil {
		o.ActionItems = make([]ActionItem, 0)
	}
	if o.Decisions == nil {
		o.Decisions = make([]Decision, 0)
	}
	if o.Risks == nil {
		o.Risks = make([]Risk, 0)
	}
	if o.OpenQuestions == nil {
		o.OpenQuestions = make([]OpenQuestion, 0)
	}
}

// Identity returns the deterministic artifact key. Two outcomes with the
// same meeting type and date share a storage slot; last writer wins.
func (o *MeetingOutcome) Identity() string {
	return fmt.Sprintf("%s_%s", o.MeetingType, o.Date.Format("2006_01_02"))
}

// Priority values the extraction prompt asks for.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)
