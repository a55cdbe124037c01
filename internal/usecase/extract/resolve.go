package extract

import (
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// normalizeName strips the "(Role)" suffix the prompt's
// "Full Name (Role)" format produces, leaving just the name to match.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.Index(name, "("); idx > 0 {
		name = strings.TrimSpace(name[:idx])
	}
	return name
}

// resolvePerson matches a model-returned name against the roster by
// exact case-insensitive comparison. No fuzzy matching: a name that does
// not match exactly stays unresolved rather than being guessed at.
func resolvePerson(roster *entities.Roster, name string) *entities.Person {
	normalized := normalizeName(name)
	if normalized == "" {
		return nil
	}
	if p, ok := roster.FindByName(normalized); ok {
		return p
	}
	return nil
}
