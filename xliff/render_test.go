package xliff

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_SourceCatalog(t *testing.T) {
	r, err := NewTemplateRenderer(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	out, err := r.Render(&Catalog{
		ProductName:    "Vendor.Site",
		SourceLanguage: "en",
		Units: []Unit{
			{ID: "ui.label", Source: "Headline", Target: "ignored"},
			{ID: "properties.title", Source: `Title <b> & "more"`},
		},
	})
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
	<file original="" product-name="Vendor.Site" source-language="en" datatype="plaintext">
		<body>
			<trans-unit id="ui.label" xml:space="preserve">
				<source>Headline</source>
			</trans-unit>
			<trans-unit id="properties.title" xml:space="preserve">
				<source>Title &lt;b&gt; &amp; &#34;more&#34;</source>
			</trans-unit>
		</body>
	</file>
</xliff>
`
	assert.Equal(t, want, string(out))
}

func TestTemplateRenderer_TargetCatalog(t *testing.T) {
	r, err := NewTemplateRenderer(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	out, err := r.Render(&Catalog{
		ProductName:    "Vendor.Site",
		SourceLanguage: "en",
		TargetLanguage: "de",
		Units:          []Unit{{ID: "ui.label", Source: "Headline", Target: "Überschrift"}},
	})
	require.NoError(t, err)

	assert.Contains(t, string(out), `source-language="en" target-language="de"`)
	assert.Contains(t, string(out), "<target>Überschrift</target>")
}

func TestTemplateRenderer_RoundTrip(t *testing.T) {
	r, err := NewTemplateRenderer(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	c := &Catalog{
		ProductName:    "Vendor.Site",
		SourceLanguage: "en",
		TargetLanguage: "fr",
		Units: []Unit{
			{ID: "a", Source: "Line one\nline two", Target: "  padded  "},
			{ID: "b", Source: "x < y & z", Target: ""},
		},
	}
	out, err := r.Render(c)
	require.NoError(t, err)

	units, err := ParseUnits(out)
	require.NoError(t, err)
	assert.Equal(t, ExistingUnit{Source: "Line one\nline two", Target: "  padded  ", HasSource: true, HasTarget: true}, units["a"])
	assert.Equal(t, ExistingUnit{Source: "x < y & z", HasSource: true, HasTarget: true}, units["b"])
}

func TestTemplateRenderer_EmptyCatalog(t *testing.T) {
	r, err := NewTemplateRenderer(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	out, err := r.Render(&Catalog{ProductName: "P", SourceLanguage: "en"})
	require.NoError(t, err)

	units, err := ParseUnits(out)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestTemplateRenderer_CustomTemplateFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/tpl/x.xlf", []byte(`{{.ProductName}}:{{range .Units}}{{.ID}}={{escape .Source}};{{end}}`), 0o644))

	r, err := NewTemplateRenderer(mem, "/tpl/x.xlf")
	require.NoError(t, err)

	out, err := r.Render(&Catalog{ProductName: "P", Units: []Unit{{ID: "a", Source: "<A>"}}})
	require.NoError(t, err)
	assert.Equal(t, "P:a=&lt;A&gt;;", string(out))
}

func TestNewTemplateRenderer_Errors(t *testing.T) {
	mem := afero.NewMemMapFs()

	_, err := NewTemplateRenderer(mem, "/missing.tmpl")
	require.Error(t, err)

	require.NoError(t, afero.WriteFile(mem, "/bad.tmpl", []byte("{{.Units"), 0o644))
	_, err = NewTemplateRenderer(mem, "/bad.tmpl")
	require.Error(t, err)
}
