// Package materialfile loads ad-hoc shielding materials from YAML files and
// resolves them together with the built-in catalog.
package materialfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alexshd/gammashield"
)

// Document is the on-disk layout of a materials file.
//
//	materials:
//	  - key: Concrete662
//	    name: Concrete (662 keV)
//	    mass_attenuation_coefficient: 0.0774
//	    density: 2.35
type Document struct {
	Materials []Entry `yaml:"materials"`
}

// Entry is one material definition. BuildUpFactor defaults to 1 when omitted.
type Entry struct {
	Key                        string   `yaml:"key"`
	Name                       string   `yaml:"name"`
	MassAttenuationCoefficient float64  `yaml:"mass_attenuation_coefficient"`
	BuildUpFactor              *float64 `yaml:"build_up_factor,omitempty"`
	Density                    float64  `yaml:"density"`
}

// Material converts the entry to a gammashield.Material.
func (e Entry) Material() gammashield.Material {
	buildUp := 1.0
	if e.BuildUpFactor != nil {
		buildUp = *e.BuildUpFactor
	}
	name := e.Name
	if name == "" {
		name = e.Key
	}
	return gammashield.NewMaterial(name, e.MassAttenuationCoefficient, buildUp, e.Density)
}

// ErrDuplicateKey is returned when two materials share a key.
var ErrDuplicateKey = errors.New("duplicate material key")

// Set resolves material keys, case-insensitively, against the built-in
// catalog plus any materials added to it.
type Set struct {
	materials map[string]gammashield.Material // lowercase key → material
	keys      map[string]string               // lowercase key → display key
}

// NewSet returns a set seeded with the built-in catalog.
func NewSet() *Set {
	s := &Set{
		materials: make(map[string]gammashield.Material),
		keys:      make(map[string]string),
	}
	for key, m := range gammashield.Catalog() {
		s.materials[strings.ToLower(key)] = m
		s.keys[strings.ToLower(key)] = key
	}
	return s
}

// Add registers a material under key. Keys, including catalog keys, cannot
// be redefined.
func (s *Set) Add(key string, m gammashield.Material) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("material %s: empty key", m)
	}

	lower := strings.ToLower(key)
	if _, exists := s.materials[lower]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	s.materials[lower] = m
	s.keys[lower] = key
	return nil
}

// Lookup returns the material registered under key.
func (s *Set) Lookup(key string) (gammashield.Material, bool) {
	m, ok := s.materials[strings.ToLower(strings.TrimSpace(key))]
	return m, ok
}

// Keys returns the display keys in sorted order.
func (s *Set) Keys() []string {
	return slices.Sorted(maps.Values(s.keys))
}

// Decode reads and validates a materials document.
func Decode(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read materials: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode materials YAML: %w", err)
	}

	seen := make(map[string]bool, len(doc.Materials))
	for i, e := range doc.Materials {
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("materials[%d]: key is required", i)
		}

		lower := strings.ToLower(strings.TrimSpace(e.Key))
		if seen[lower] {
			return nil, fmt.Errorf("materials[%d]: %w: %s", i, ErrDuplicateKey, e.Key)
		}
		seen[lower] = true

		if err := e.Material().Validate(); err != nil {
			return nil, fmt.Errorf("materials[%d]: %w", i, err)
		}
	}

	return doc.Materials, nil
}

// Load reads a materials file from disk.
func Load(path string) ([]Entry, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open materials directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open materials file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file)
}

// LoadSet returns the built-in catalog extended with the materials in path.
// An empty path yields the catalog alone.
func LoadSet(path string) (*Set, error) {
	s := NewSet()
	if path == "" {
		return s, nil
	}

	entries, err := Load(path)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err := s.Add(e.Key, e.Material()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return s, nil
}
