package entities

import (
	"fmt"
	"strings"
)

// Person is a single entry in the people directory.
type Person struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Role  string `json:"role" yaml:"role" validate:"required"`
	Email string `json:"email" yaml:"email" validate:"required,email"`
}

// Roster is the people directory loaded for a run. It is read-only after
// construction and preserves the order entries were loaded in, which is
// what makes owner resolution deterministic.
type Roster struct {
	people []Person
}

// NewRoster builds a roster from the loaded entries. Names must be unique
// (case-insensitive); a duplicate would make owner resolution ambiguous.
func NewRoster(people []Person) (*Roster, error) {
	seen := make(map[string]struct{}, len(people))
	for _, p := range people {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			return nil, fmt.Errorf("%w: person with empty name", ErrInvalidRoster)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidRoster, p.Name)
		}
		seen[key] = struct{}{}
	}
	return &Roster{people: people}, nil
}

// People returns the roster entries in load order.
func (r *Roster) People() []Person {
	return r.people
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.people)
}

// IsEmpty reports whether the roster has no entries.
func (r *Roster) IsEmpty() bool {
	return r.Len() == 0
}

// FindByName looks up a person by exact case-insensitive name match.
// The first match in roster order wins.
func (r *Roster) FindByName(name string) (*Person, bool) {
	if r == nil {
		return nil, false
	}
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil, false
	}
	for i := range r.people {
		if strings.ToLower(strings.TrimSpace(r.people[i].Name)) == want {
			return &r.people[i], true
		}
	}
	return nil, false
}

// FirstNames returns the lowercased first name of every roster entry,
// used by the local speaker-overlap heuristic.
func (r *Roster) FirstNames() map[string]struct{} {
	names := make(map[string]struct{}, r.Len())
	for _, p := range r.people {
		fields := strings.Fields(p.Name)
		if len(fields) == 0 {
			continue
		}
		names[strings.ToLower(fields[0])] = struct{}{}
	}
	return names
}
