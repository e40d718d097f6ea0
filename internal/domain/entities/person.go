package entities

// Person is a known commission member or staff member
type Person struct {
	Name     string   `json:"name" yaml:"name"`
	Role     string   `json:"role" yaml:"role"`
	Variants []string `json:"variants,omitempty" yaml:"variants"`
}

// Roster is the fixed, hand-maintained list of people BusyBee recognizes.
// It is loaded once at startup and never mutated afterwards.
type Roster struct {
	People []Person `json:"people" yaml:"people"`
}

// Names returns canonical names in roster order
func (r Roster) Names() []string {
	names := make([]string, 0, len(r.People))
	for _, p := range r.People {
		names = append(names, p.Name)
	}
	return names
}
