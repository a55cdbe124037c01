package extract

import (
	"encoding/json"
	"fmt"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
)

// extractionResponse is the wire shape the extraction prompt demands.
type extractionResponse struct {
	ActionItems   []actionItemExtracted   `json:"action_items"`
	Decisions     []decisionExtracted     `json:"decisions"`
	Risks         []riskExtracted         `json:"risks"`
	OpenQuestions []openQuestionExtracted `json:"open_questions"`
}

type actionItemExtracted struct {
	Assignee     string `json:"assignee"`
	Description  string `json:"description"`
	OwnerName    string `json:"owner_name"`
	Priority     string `json:"priority"`
	Evidence     string `json:"evidence"`
	DeadlineText string `json:"deadline_text"`
}

type decisionExtracted struct {
	Decision  string `json:"decision"`
	OwnerName string `json:"owner_name"`
	Evidence  string `json:"evidence"`
}

type riskExtracted struct {
	Risk     string `json:"risk"`
	Evidence string `json:"evidence"`
	Severity string `json:"severity"`
	Context  string `json:"context"`
}

type openQuestionExtracted struct {
	Question string `json:"question"`
	Evidence string `json:"evidence"`
	Context  string `json:"context"`
}

// Parser handles parsing and validation of model extraction responses.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns raw model output into an extractionResponse. The model may
// wrap the JSON in markdown fences or prose; anything that still fails
// to decode after unwrapping is a malformed extraction and aborts the
// run. Omitted categories come back as nil slices and are valid.
func (p *Parser) Parse(raw string) (*extractionResponse, error) {
	jsonText := ai.ExtractJSON(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("%w: empty model response", entities.ErrMalformedExtraction)
	}

	var resp extractionResponse
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrMalformedExtraction, err)
	}
	return &resp, nil
}
