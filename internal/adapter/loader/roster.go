package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/validator"
)

// rosterEntry is the value shape of the map-form people directory,
// keyed by full name: {"Alice Tran": {"role": "...", "email": "..."}}.
type rosterEntry struct {
	Role  string `json:"role" yaml:"role"`
	Email string `json:"email" yaml:"email"`
}

// LoadRoster reads a people directory file into a Roster. JSON and YAML
// are selected by extension; both a list of {name, role, email} records
// and the legacy map keyed by full name are accepted. Every entry is
// validated (name, role, email format) before the roster is built.
func LoadRoster(path string, v *validator.Validator) (*entities.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read people file: %w", err)
	}

	people, err := decodePeople(path, data)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, fmt.Errorf("%w: people file %s", entities.ErrEmptyInput, path)
	}

	for _, p := range people {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", entities.ErrInvalidRoster, p.Name, err)
		}
	}

	return entities.NewRoster(people)
}

func decodePeople(path string, data []byte) ([]entities.Person, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		var people []entities.Person
		if err := yaml.Unmarshal(data, &people); err == nil {
			return people, nil
		}
		var byName map[string]rosterEntry
		if err := yaml.Unmarshal(data, &byName); err != nil {
			return nil, fmt.Errorf("%w: not valid YAML: %v", entities.ErrInvalidRoster, err)
		}
		return fromNameMap(byName), nil
	default:
		var people []entities.Person
		if err := json.Unmarshal(data, &people); err == nil {
			return people, nil
		}
		var byName map[string]rosterEntry
		if err := json.Unmarshal(data, &byName); err != nil {
			return nil, fmt.Errorf("%w: not valid JSON: %v", entities.ErrInvalidRoster, err)
		}
		return fromNameMap(byName), nil
	}
}

// fromNameMap flattens the map form into a list. Keys are sorted so
// roster order, and with it first-match owner resolution, stays
// deterministic across runs.
func fromNameMap(byName map[string]rosterEntry) []entities.Person {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	people := make([]entities.Person, 0, len(byName))
	for _, name := range names {
		entry := byName[name]
		people = append(people, entities.Person{
			Name:  name,
			Role:  entry.Role,
			Email: entry.Email,
		})
	}
	return people
}
