package fba

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target maps a production target to its pool metabolite in the model,
// plus presentation/conversion data. Recognized targets are purely
// configuration; no behavior hangs off them.
type Target struct {
	ID          string  `yaml:"id"`
	Pool        string  `yaml:"pool"`
	DisplayName string  `yaml:"display_name,omitempty"`
	MolarMass   float64 `yaml:"molar_mass,omitempty"` // g/mol
}

// Catalog is an ordered set of production targets. Order is preserved for
// deterministic registration and export.
type Catalog struct {
	Targets []Target `yaml:"targets"`
}

// DefaultCatalog returns the built-in fatty-acyl-CoA target set covering
// even chain lengths C4 through C14. Pool identifiers follow the iML1515
// namespace.
func DefaultCatalog() Catalog {
	return Catalog{Targets: []Target{
		{ID: "butanoic_acid", Pool: "btcoa_c", DisplayName: "Butanoyl-CoA", MolarMass: 88.11},
		{ID: "hexanoic_acid", Pool: "hxcoa_c", DisplayName: "Hexanoyl-CoA", MolarMass: 116.16},
		{ID: "octanoic_acid", Pool: "occoa_c", DisplayName: "Octanoyl-CoA", MolarMass: 144.21},
		{ID: "decanoic_acid", Pool: "dcacoa_c", DisplayName: "Decanoyl-CoA", MolarMass: 172.26},
		{ID: "dodecanoic_acid", Pool: "ddcacoa_c", DisplayName: "Dodecanoyl-CoA", MolarMass: 200.32},
		{ID: "tetradecanoic_acid", Pool: "tdcoa_c", DisplayName: "Tetradecanoyl-CoA", MolarMass: 228.37},
	}}
}

// LoadCatalog reads a YAML target catalog from disk.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(c.Targets) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s defines no targets", path)
	}
	seen := make(map[string]bool, len(c.Targets))
	for _, t := range c.Targets {
		if t.ID == "" || t.Pool == "" {
			return Catalog{}, fmt.Errorf("catalog %s: every target needs id and pool", path)
		}
		if seen[t.ID] {
			return Catalog{}, fmt.Errorf("catalog %s: duplicate target %q", path, t.ID)
		}
		seen[t.ID] = true
	}
	return c, nil
}

// Target returns the catalog entry for a target identifier.
func (c Catalog) Target(id string) (Target, bool) {
	for _, t := range c.Targets {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

// IDs returns target identifiers in catalog order.
func (c Catalog) IDs() []string {
	out := make([]string, len(c.Targets))
	for i, t := range c.Targets {
		out[i] = t.ID
	}
	return out
}
