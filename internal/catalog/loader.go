// Package catalog loads registry catalogs from YAML files.
//
// A catalog file looks like:
//
//	groups:
//	  - name: stat-card
//	    description: Statistic cards in the stats grid
//	    entries:
//	      - stat-card-0
//	      - id: stat-card-1
//	        name: Active Users
//	elements:
//	  - id: main-header
//	    name: Main Header
//
// Entries are either bare IDs or objects. Entries without a name get one
// derived from the ID ("stat-card-0" → "Stat Card 0").
package catalog

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fileSpec is the on-disk shape of a catalog file.
type fileSpec struct {
	Groups   []groupSpec `koanf:"groups"`
	Elements []any       `koanf:"elements"`
}

type groupSpec struct {
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	Entries     []any  `koanf:"entries"`
}

// Load reads and validates the catalog file at path.
// An empty path returns the built-in landing registry.
func Load(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Landing(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}

	var spec fileSpec
	if err := k.Unmarshal("", &spec); err != nil {
		return nil, fmt.Errorf("unable to decode catalog file %s: %w", path, err)
	}

	reg, err := build(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return reg, nil
}

func build(spec fileSpec) (*registry.Registry, error) {
	catalogs := make([]*registry.Catalog, 0, len(spec.Groups))
	for _, g := range spec.Groups {
		entries := make([]registry.Entry, 0, len(g.Entries))
		for i, raw := range g.Entries {
			e, err := decodeEntry(raw)
			if err != nil {
				return nil, fmt.Errorf("group %s position %d: %w", g.Name, i, err)
			}
			entries = append(entries, e)
		}
		catalogs = append(catalogs, registry.NewCatalog(g.Name, g.Description, entries...))
	}

	elements := make([]registry.Entry, 0, len(spec.Elements))
	for i, raw := range spec.Elements {
		e, err := decodeEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, e)
	}

	return registry.New(catalogs, elements)
}

// decodeEntry accepts a bare ID or an {id, name, description} object.
func decodeEntry(raw any) (registry.Entry, error) {
	var e registry.Entry
	switch v := raw.(type) {
	case string:
		e.ID = registry.ID(v)
	case map[string]any:
		id, _ := v["id"].(string)
		name, _ := v["name"].(string)
		desc, _ := v["description"].(string)
		e = registry.Entry{ID: registry.ID(id), Name: name, Description: desc}
	default:
		return e, fmt.Errorf("unsupported entry of type %T", raw)
	}
	if e.Name == "" && e.ID.Assigned() {
		e.Name = DisplayName(e.ID)
	}
	return e, nil
}

// DisplayName derives a human-readable name from a registry ID.
func DisplayName(id registry.ID) string {
	words := strings.FieldsFunc(id.String(), func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
