package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/devreg/pkg/registry"
	"gopkg.in/yaml.v3"
)

type encodedFile struct {
	Groups   []encodedGroup   `yaml:"groups"`
	Elements []registry.Entry `yaml:"elements,omitempty"`
}

type encodedGroup struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Entries     []registry.Entry `yaml:"entries"`
}

// Encode writes reg to w in catalog file format.
func Encode(w io.Writer, reg *registry.Registry) error {
	out := encodedFile{Elements: reg.Elements()}
	for _, c := range reg.Catalogs() {
		out.Groups = append(out.Groups, encodedGroup{
			Name:        c.Group(),
			Description: c.Description(),
			Entries:     c.Entries(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// WriteFile writes reg to path, creating parent directories.
func WriteFile(path string, reg *registry.Registry) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	if err := Encode(f, reg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
