// Package roster loads the list of commission members BusyBee recognizes.
package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// Default is the built-in roster used when no roster file is configured
func Default() entities.Roster {
	return entities.Roster{People: []entities.Person{
		{Name: "Raymond Muna", Role: "Chairman", Variants: []string{"Muña", "Moona", "Munna", "Ray Muna"}},
		{Name: "Patrick Fitial", Role: "Vice Chairman", Variants: []string{"Fitiel", "Fitual", "Pat Fitial"}},
		{Name: "Victoria Bellas", Role: "Commissioner", Variants: []string{"Belas", "Bella", "Vicky Bellas"}},
		{Name: "Joseph Tenorio", Role: "Commissioner", Variants: []string{"Tenorrio", "Tenoreo", "Joe Tenorio"}},
		{Name: "Marian Aldan", Role: "Commissioner", Variants: []string{"Aldon", "Alden"}},
		{Name: "Teresita Santos", Role: "Executive Director", Variants: []string{"Teresa Santos", "Tess Santos"}},
	}}
}

// Load reads a YAML roster file:
//
//	people:
//	  - name: Raymond Muna
//	    role: Chairman
//	    variants: [Muña, Moona]
//
// An empty path returns the default roster.
func Load(path string) (entities.Roster, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Roster{}, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates roster YAML
func Parse(data []byte) (entities.Roster, error) {
	var r entities.Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return entities.Roster{}, fmt.Errorf("failed to parse roster: %w", err)
	}

	seen := make(map[string]bool, len(r.People))
	for i, p := range r.People {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return entities.Roster{}, fmt.Errorf("roster entry %d has no name", i+1)
		}
		if seen[strings.ToLower(name)] {
			return entities.Roster{}, fmt.Errorf("duplicate roster name %q", name)
		}
		seen[strings.ToLower(name)] = true
		r.People[i].Name = name
	}
	return r, nil
}
