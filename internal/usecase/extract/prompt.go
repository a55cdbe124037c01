package extract

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const promptTemplate = `You are an autonomous meeting intelligence agent.

Base date (today): %s

Your task:
Extract ACTION ITEMS, DECISIONS, RISKS, and OPEN QUESTIONS from the meeting transcript.

Return ONLY valid JSON. No markdown. No explanation.

================ ROLE DEFINITIONS ================

OWNER:
- Person who commits, promises, or takes responsibility in conversation.

ASSIGNEE:
- Person who must actually perform the task or provide the deliverable.

================ ACTION ITEM RULES ================

1) If a speaker commits to act ("I will", "I can", "I'll reach out"):
   - owner_name = that speaker
   - assignee = person who must perform the task (may be the owner or another person mentioned)

2) If no speaker commits:
   - owner_name = highest authority from the people directory
   - assignee = same as owner_name
   Authority order: Product Manager > Engineering Manager > Team Lead > others

3) Each action item MUST include:
   - assignee: full name from the people directory
   - owner_name: full name from the people directory
   - description: short task
   - priority: High / Medium / Low
   - evidence: exact sentence with timestamp, "[HH:MM] Speaker: sentence"
   - deadline_text: exact phrase used ("Friday", "next Tuesday", "today", "end of week"), empty if none

4. Do NOT calculate dates.

================ DECISION RULES ================

1. Extract decisions ONLY when a clear decision is stated or agreed.
2. owner_name MUST be the speaker who stated or confirmed the decision.
3. Each decision MUST include: decision, owner_name, evidence (exact quote with timestamp).

================ RISK RULES ================

1. Extract risks when someone mentions possible delays, blockers, dependencies,
   failures, or performance or compliance concerns.
2. Each risk MUST include:
   - risk: short summary
   - evidence: exact quote with timestamp
   - severity: High / Medium / Low if implied, else empty string
   - context: why this is a risk, referencing surrounding statements and people involved.

================ OPEN QUESTION RULES ================

1. Extract open questions when someone explicitly asks a question or an issue remains unresolved.
2. Each open question MUST include: question, evidence (exact quote with timestamp), context.
3. Do NOT include questions that are fully resolved.

================ GENERAL RULES ================

1. Use ONLY people from the people directory.
2. Do NOT invent people, tasks, decisions, risks, or questions.

================ PEOPLE DIRECTORY ================

%s

================ TRANSCRIPT ================

%s

================ OUTPUT FORMAT (MUST MATCH EXACTLY) ================

{
  "action_items": [
    {
      "assignee": "",
      "description": "",
      "owner_name": "",
      "priority": "",
      "evidence": "",
      "deadline_text": ""
    }
  ],
  "decisions": [
    {
      "decision": "",
      "owner_name": "",
      "evidence": ""
    }
  ],
  "risks": [
    {
      "risk": "",
      "evidence": "",
      "severity": "",
      "context": ""
    }
  ],
  "open_questions": [
    {
      "question": "",
      "evidence": "",
      "context": ""
    }
  ]
}

Return ONLY JSON. No extra keys. No extra text.
`

func buildPrompt(transcript *entities.Transcript, roster *entities.Roster) string {
	peopleJSON, err := json.MarshalIndent(roster.People(), "", "  ")
	if err != nil {
		peopleJSON = []byte("[]")
	}
	return fmt.Sprintf(promptTemplate,
		transcript.Date.Format("2006-01-02"),
		peopleJSON,
		transcript.RawText,
	)
}
