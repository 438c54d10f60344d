package model

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/catalog.yaml"

// Catalog holds the static option lists rendered as button groups.
type Catalog struct {
	Genres    []string `yaml:"genres" json:"genres"`
	Devices   []string `yaml:"devices" json:"devices"`
	Mechanics []string `yaml:"mechanics" json:"mechanics"`
	Vibes     []string `yaml:"vibes" json:"vibes"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog Catalog
	defaultErr     error
)

// DefaultCatalog returns a copy of the embedded option lists.
func DefaultCatalog() (Catalog, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCatalogPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		catalog, err := LoadCatalog(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog = catalog
	})

	if defaultErr != nil {
		return Catalog{}, defaultErr
	}
	return defaultCatalog.Clone(), nil
}

// MustDefaultCatalog panics when the embedded catalog is unreadable.
func MustDefaultCatalog() Catalog {
	catalog, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// LoadCatalog decodes and validates a YAML catalog. Labels are trimmed and
// blank entries dropped.
func LoadCatalog(r io.Reader) (Catalog, error) {
	if r == nil {
		return Catalog{}, fmt.Errorf("model: missing reader")
	}
	var catalog Catalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("model: empty catalog")
		}
		return Catalog{}, fmt.Errorf("model: decode catalog: %w", err)
	}
	catalog = catalog.normalized()
	if err := catalog.Validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// Validate checks that the single-select device group can hold an active
// button and that no group repeats a label.
func (c Catalog) Validate() error {
	if len(c.Devices) == 0 {
		return fmt.Errorf("model: catalog needs at least one device")
	}
	groups := map[string][]string{
		"genres":    c.Genres,
		"devices":   c.Devices,
		"mechanics": c.Mechanics,
		"vibes":     c.Vibes,
	}
	for name, labels := range groups {
		seen := make(map[string]struct{}, len(labels))
		for _, label := range labels {
			if _, ok := seen[label]; ok {
				return fmt.Errorf("model: duplicate %s label %q", name, label)
			}
			seen[label] = struct{}{}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	return Catalog{
		Genres:    append([]string(nil), c.Genres...),
		Devices:   append([]string(nil), c.Devices...),
		Mechanics: append([]string(nil), c.Mechanics...),
		Vibes:     append([]string(nil), c.Vibes...),
	}
}

func (c Catalog) normalized() Catalog {
	return Catalog{
		Genres:    cleanLabels(c.Genres),
		Devices:   cleanLabels(c.Devices),
		Mechanics: cleanLabels(c.Mechanics),
		Vibes:     cleanLabels(c.Vibes),
	}
}

func cleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
