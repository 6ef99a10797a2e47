package xliff

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/afero"
)

//go:embed templates/catalog.xlf.tmpl
var templateFS embed.FS

// defaultTemplate is the embedded template used when no template file is
// configured.
const defaultTemplate = "templates/catalog.xlf.tmpl"

// Renderer serialises a catalog to file content.
type Renderer interface {
	Render(c *Catalog) ([]byte, error)
}

// funcMap is available to every catalog template.
var funcMap = template.FuncMap{
	"escape": escape,
}

// escape returns s with XML special characters escaped, usable in both
// attribute values and text content.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// TemplateRenderer renders catalogs through a text/template. The template
// receives the *Catalog as its data.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer loads the template at templateFile from fs, or the
// embedded default template when templateFile is empty.
func NewTemplateRenderer(fs afero.Fs, templateFile string) (*TemplateRenderer, error) {
	var (
		name = defaultTemplate
		data []byte
		err  error
	)
	if templateFile == "" {
		data, err = templateFS.ReadFile(defaultTemplate)
	} else {
		name = templateFile
		data, err = afero.ReadFile(fs, templateFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return ParseTemplate(name, string(data))
}

// ParseTemplate builds a TemplateRenderer from template text.
func ParseTemplate(name, text string) (*TemplateRenderer, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// Render implements Renderer.
func (r *TemplateRenderer) Render(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, c); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", r.tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
