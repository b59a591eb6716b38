package catalog

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/markout-dev/markout/internal/errors"
)

// A Generator renders Go source from a catalog. The output is gofmt
// formatted and carries a generated-code header, so regenerating over a
// clean tree produces no diff.
type Generator struct {
	catalog *Catalog
	pkg     string
}

// NewGenerator returns a generator that emits source into the named
// package.
func NewGenerator(c *Catalog, pkg string) *Generator {
	return &Generator{catalog: c, pkg: pkg}
}

// GenerateElements renders the element constructor file.
func (g *Generator) GenerateElements() ([]byte, error) {
	return g.render(elementsTmpl, struct {
		Package string
		Groups  []ElementGroup
	}{g.pkg, g.catalog.Elements})
}

// GenerateAttributes renders the attribute helper file.
func (g *Generator) GenerateAttributes() ([]byte, error) {
	return g.render(attributesTmpl, struct {
		Package string
		Groups  []AttrGroup
	}{g.pkg, g.catalog.Attributes})
}

// Files renders every generated file, keyed by file name.
func (g *Generator) Files() (map[string][]byte, error) {
	elements, err := g.GenerateElements()
	if err != nil {
		return nil, err
	}
	attributes, err := g.GenerateAttributes()
	if err != nil {
		return nil, err
	}
	return map[string][]byte{
		"elements_gen.go":   elements,
		"attributes_gen.go": attributes,
	}, nil
}

func (g *Generator) render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.New("E206").Wrap(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New("E206").
			WithDetail("Generated source does not parse: " + err.Error()).
			Wrap(err)
	}
	return src, nil
}

// The templates emit one blank line between declarations so the raw
// output is already gofmt clean. format.Source still runs as a sanity
// check on the catalog data.

var elementsTmpl = template.Must(template.New("elements").Parse(`// Code generated by markout gen catalog. DO NOT EDIT.

package {{.Package}}
{{range .Groups}}
// {{.Group}} elements.
{{range .Tags}}
// {{.Name}} creates a <{{.Tag}}> element{{with .Note}} ({{.}}){{end}}.
func {{.Name}}(children ...*Node) *Node { return El("{{.Tag}}", children...) }
{{end}}{{end}}`))

var attributesTmpl = template.Must(template.New("attributes").Parse(`// Code generated by markout gen catalog. DO NOT EDIT.

package {{.Package}}

import "strconv"
{{range .Groups}}
// {{.Group}} attributes.
{{range .Attrs}}
// {{.Name}} sets the {{.Attr}} attribute{{with .Note}} ({{.}}){{end}}.
{{if eq .Kind "flag"}}func {{.Name}}() *Node { return BoolAttr("{{.Attr}}") }
{{else if eq .Kind "int"}}func {{.Name}}({{.Param}} int) *Node { return Attr("{{.Attr}}", strconv.Itoa({{.Param}})) }
{{else if eq .Kind "float"}}func {{.Name}}({{.Param}} float64) *Node { return Attr("{{.Attr}}", strconv.FormatFloat({{.Param}}, 'g', -1, 64)) }
{{else if eq .Kind "bool"}}func {{.Name}}({{.Param}} bool) *Node { return Attr("{{.Attr}}", strconv.FormatBool({{.Param}})) }
{{else}}func {{.Name}}({{.Param}} string) *Node { return Attr("{{.Attr}}", {{.Param}}) }
{{end}}{{end}}{{end}}`))
