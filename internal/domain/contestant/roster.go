package contestant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster is a YAML document listing contestants, used by fixtures and debug tooling
type Roster struct {
	Contestants []*Contestant `yaml:"contestants"`
}

// ParseRoster decodes a roster and compiles every skill effect
func ParseRoster(data []byte) (*Roster, error) {
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}

	for i, c := range roster.Contestants {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		c.Normalize()
	}

	return &roster, nil
}

// LoadRoster reads and parses a roster file
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return ParseRoster(data)
}

// Find returns the contestant with the given ID or name
func (r *Roster) Find(key string) (*Contestant, bool) {
	for _, c := range r.Contestants {
		if c.ID == key || c.Name == key {
			return c, true
		}
	}
	return nil, false
}
