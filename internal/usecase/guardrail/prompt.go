package guardrail

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// docSampleLimit bounds how much of each document goes into the
// guardrail prompt. The judgment only needs a representative slice.
const docSampleLimit = 1500

const promptTemplate = `You are validating two unknown documents before processing.

TASK:
1. Identify document types.
2. Check whether they are related to the same meeting/team.

Document A:
<<<
%s
>>>

Document B:
<<<
%s
>>>

Answer ONLY in valid JSON:

{
  "doc_a_type": "people_directory | meeting_transcript | other",
  "doc_b_type": "people_directory | meeting_transcript | other",
  "are_related": true or false
}
`

func buildPrompt(transcript *entities.Transcript, roster *entities.Roster) string {
	peopleJSON, err := json.MarshalIndent(roster.People(), "", "  ")
	if err != nil {
		peopleJSON = []byte("[]")
	}
	return fmt.Sprintf(promptTemplate,
		truncate(string(peopleJSON), docSampleLimit),
		truncate(transcript.RawText, docSampleLimit),
	)
}
