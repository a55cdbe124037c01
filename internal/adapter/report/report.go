package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/email"
)

// Render prints the run summary: where the artifact landed, the action
// items with their resolution status, and per-email send results when
// sending was enabled.
func Render(w io.Writer, outcome *entities.MeetingOutcome, artifactPath string, sends []email.SendResult) {
	fmt.Fprintf(w, "\nArtifact: %s\n\n", artifactPath)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Category", "Count"})
	tw.AppendRow(table.Row{"Action items", len(outcome.ActionItems)})
	tw.AppendRow(table.Row{"Decisions", len(outcome.Decisions)})
	tw.AppendRow(table.Row{"Risks", len(outcome.Risks)})
	tw.AppendRow(table.Row{"Open questions", len(outcome.OpenQuestions)})
	tw.Render()

	if len(outcome.ActionItems) > 0 {
		fmt.Fprintln(w)
		tw = table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"Action item", "Owner", "Assignee", "Priority", "Due"})
		for _, item := range outcome.ActionItems {
			tw.AppendRow(table.Row{
				item.Description,
				personCell(item.Owner, item.OwnerName),
				personCell(item.Assignee, item.AssigneeName),
				item.Priority,
				dueCell(item),
			})
		}
		tw.Render()
	}

	if len(sends) > 0 {
		fmt.Fprintln(w)
		tw = table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"Email to", "Subject", "Status"})
		for _, r := range sends {
			status := "sent"
			if !r.OK() {
				status = fmt.Sprintf("failed: %v", r.Err)
			}
			tw.AppendRow(table.Row{r.Draft.To, r.Draft.Subject, status})
		}
		tw.Render()
	}
}

func personCell(p *entities.Person, name string) string {
	if p != nil {
		return p.Name
	}
	if name == "" {
		return "-"
	}
	return name + " (unresolved)"
}

func dueCell(item entities.ActionItem) string {
	if item.DueDate != nil {
		return item.DueDate.Format("2006-01-02")
	}
	if item.DueContext != "" {
		return item.DueContext
	}
	return "-"
}
