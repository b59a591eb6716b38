// Package catalog holds the element and attribute inventory that the
// node package's constructors are generated from.
//
// The built-in inventory lives in catalog.yaml and is embedded into the
// binary. Projects can supply their own catalog file to generate
// extensions, for example for custom elements.
package catalog

import (
	_ "embed"
	"os"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/markout-dev/markout/internal/errors"
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is a parsed element and attribute inventory.
type Catalog struct {
	Elements   []ElementGroup `yaml:"elements"`
	Attributes []AttrGroup    `yaml:"attributes"`
}

// ElementGroup is a themed run of element definitions. The group name
// becomes a banner comment in the generated source.
type ElementGroup struct {
	Group string   `yaml:"group"`
	Tags  []TagDef `yaml:"tags"`
}

// TagDef defines one element constructor.
type TagDef struct {
	// Name is the generated Go function name.
	Name string `yaml:"name"`

	// Tag is the HTML tag the constructor produces.
	Tag string `yaml:"tag"`

	// Note is an optional remark appended to the doc comment.
	Note string `yaml:"note,omitempty"`
}

// AttrGroup is a themed run of attribute definitions.
type AttrGroup struct {
	Group string    `yaml:"group"`
	Attrs []AttrDef `yaml:"attrs"`
}

// AttrDef defines one attribute helper.
type AttrDef struct {
	// Name is the generated Go function name.
	Name string `yaml:"name"`

	// Attr is the HTML attribute the helper sets.
	Attr string `yaml:"attr"`

	// Kind selects the helper shape: string, int, float, bool or flag.
	Kind string `yaml:"kind"`

	// Param is the parameter name. Unused for flag kinds.
	Param string `yaml:"param,omitempty"`

	// Note is an optional remark appended to the doc comment.
	Note string `yaml:"note,omitempty"`
}

// Load returns the built-in catalog.
func Load() (*Catalog, error) {
	return parse(embedded, "catalog.yaml")
}

// LoadFile reads a catalog from a custom YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E201").
			WithDetail("Cannot read " + path).
			Wrap(err)
	}
	return parse(data, path)
}

func parse(data []byte, name string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.New("E201").
			WithDetail("Failed to parse " + name + ": " + err.Error()).
			Wrap(err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog for problems that would produce broken
// or surprising Go source.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)

	for _, g := range c.Elements {
		for _, t := range g.Tags {
			if t.Name == "" || t.Tag == "" {
				return errors.New("E205").
					WithDetail("Element entry " + entryLabel(t.Name, t.Tag) + " in group " + g.Group + " needs both a name and a tag")
			}
			if !isExportedIdentifier(t.Name) {
				return errors.New("E203").
					WithDetail(t.Name + " is not an exported Go identifier")
			}
			if !isHTMLName(t.Tag) {
				return errors.Newf(errors.CategoryCatalog, "invalid tag name %q", t.Tag)
			}
			if seen[t.Name] {
				return errors.New("E202").
					WithDetail(t.Name + " is defined more than once")
			}
			seen[t.Name] = true
		}
	}

	for _, g := range c.Attributes {
		for _, a := range g.Attrs {
			if a.Name == "" || a.Attr == "" {
				return errors.New("E205").
					WithDetail("Attribute entry " + entryLabel(a.Name, a.Attr) + " in group " + g.Group + " needs both a name and an attr")
			}
			if !isExportedIdentifier(a.Name) {
				return errors.New("E203").
					WithDetail(a.Name + " is not an exported Go identifier")
			}
			if !isHTMLName(a.Attr) {
				return errors.Newf(errors.CategoryCatalog, "invalid attribute name %q", a.Attr)
			}
			switch a.Kind {
			case "string", "int", "float", "bool":
				if a.Param == "" {
					return errors.New("E205").
						WithDetail("Attribute " + a.Name + " needs a param name for kind " + a.Kind)
				}
			case "flag":
			default:
				return errors.New("E204").
					WithDetail("Attribute " + a.Name + " has kind " + a.Kind)
			}
			if seen[a.Name] {
				return errors.New("E202").
					WithDetail(a.Name + " is defined more than once")
			}
			seen[a.Name] = true
		}
	}

	return nil
}

func entryLabel(name, target string) string {
	if name != "" {
		return name
	}
	if target != "" {
		return target
	}
	return "(unnamed)"
}

// isExportedIdentifier reports whether s is a valid exported Go
// identifier. Trailing underscores are common for names that would
// otherwise collide (Time_, Map_, Defer_).
func isExportedIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}

// isHTMLName reports whether s looks like a lowercase HTML tag or
// attribute name.
func isHTMLName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return s != ""
}
