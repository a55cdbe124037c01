package email

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Draft is an outbound follow-up email derived from one action item. It
// exists only during the send phase and is never persisted.
type Draft struct {
	To      string
	ToName  string
	Subject string
	Body    string
	Source  entities.ActionItem
}

// Composer renders follow-up drafts from action items. Pure templating,
// no model call.
type Composer struct {
	senderName string
}

// NewComposer creates a Composer. senderName appears in the signature
// when an action item has no resolved owner.
func NewComposer(senderName string) *Composer {
	if senderName == "" {
		senderName = "Meeting Insights"
	}
	return &Composer{senderName: senderName}
}

// Draft renders a follow-up email for one action item. Items whose
// assignee did not resolve against the roster are skipped (nil draft),
// not errored: there is nobody to address.
func (c *Composer) Draft(item entities.ActionItem, meetingType string) *Draft {
	if !item.AssigneeResolved() {
		return nil
	}

	assignee := item.Assignee

	subject := fmt.Sprintf("Follow-up: %s", item.Description)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", firstName(assignee.Name))
	fmt.Fprintf(&b, "Following up from the %s meeting: you are on point for the item below.\n\n", meetingTitle(meetingType))
	fmt.Fprintf(&b, "Task: %s\n", item.Description)
	if item.Priority != "" {
		fmt.Fprintf(&b, "Priority: %s\n", item.Priority)
	}
	if item.DueDate != nil {
		fmt.Fprintf(&b, "Due: %s", item.DueDate.Format("Monday, 2 January 2006"))
		if item.DueContext != "" {
			fmt.Fprintf(&b, " (%q in the meeting)", item.DueContext)
		}
		b.WriteString("\n")
	} else if item.DueContext != "" {
		fmt.Fprintf(&b, "Timing mentioned: %s\n", item.DueContext)
	}
	b.WriteString("\nPlease reach out if anything is unclear or blocked.\n\n")
	fmt.Fprintf(&b, "Thanks,\n%s\n", c.signature(item))

	return &Draft{
		To:      assignee.Email,
		ToName:  assignee.Name,
		Subject: subject,
		Body:    b.String(),
		Source:  item,
	}
}

// DraftAll renders drafts for every action item with a resolved
// assignee, preserving outcome order.
func (c *Composer) DraftAll(outcome *entities.MeetingOutcome) []Draft {
	drafts := make([]Draft, 0, len(outcome.ActionItems))
	for _, item := range outcome.ActionItems {
		if d := c.Draft(item, outcome.MeetingType); d != nil {
			drafts = append(drafts, *d)
		}
	}
	return drafts
}

func (c *Composer) signature(item entities.ActionItem) string {
	if item.OwnerResolved() {
		return item.Owner.Name
	}
	if item.OwnerName != "" {
		return item.OwnerName
	}
	return c.senderName
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return full
	}
	return fields[0]
}

// meetingTitle turns a meeting-type slug into readable prose
// (sprint_planning -> sprint planning).
func meetingTitle(meetingType string) string {
	return strings.ReplaceAll(strings.ReplaceAll(meetingType, "_", " "), "-", " ")
}
