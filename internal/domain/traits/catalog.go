package traits

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed default_traits.yaml
var defaultCatalogYAML []byte

// Effects are the stat contributions of a trait, all expressed as fractions
type Effects struct {
	DamageBonus  float64 `yaml:"damage_bonus"`
	DefenseBonus float64 `yaml:"defense_bonus"`
	CritChance   float64 `yaml:"crit_chance"`
	HealingBonus float64 `yaml:"healing_bonus"`
}

// Trait is a permanent unlockable modifier
type Trait struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"-"`
	Effects     Effects `yaml:"effects"`
}

type catalogFile struct {
	Categories map[string][]*Trait `yaml:"trait_categories"`
}

// Catalog indexes traits by name
type Catalog struct {
	byName map[string]*Trait
}

// Parse decodes a catalog document
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing trait catalog: %w", err)
	}

	catalog := &Catalog{byName: make(map[string]*Trait)}
	for category, list := range file.Categories {
		for _, trait := range list {
			if trait == nil || trait.Name == "" {
				continue
			}
			if _, exists := catalog.byName[trait.Name]; exists {
				return nil, fmt.Errorf("trait %q defined more than once", trait.Name)
			}
			trait.Category = category
			catalog.byName[trait.Name] = trait
		}
	}

	return catalog, nil
}

// Load reads a catalog from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trait catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the catalog shipped with the binary
func Default() *Catalog {
	catalog, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded trait catalog is invalid: %v", err))
	}
	return catalog
}

// NewCatalog builds a catalog from traits in memory
func NewCatalog(list ...*Trait) *Catalog {
	catalog := &Catalog{byName: make(map[string]*Trait, len(list))}
	for _, trait := range list {
		catalog.byName[trait.Name] = trait
	}
	return catalog
}

// Lookup finds a trait by name. A nil catalog knows no traits.
func (c *Catalog) Lookup(name string) (*Trait, bool) {
	if c == nil {
		return nil, false
	}
	trait, ok := c.byName[name]
	return trait, ok
}

// Names lists every trait, sorted
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
