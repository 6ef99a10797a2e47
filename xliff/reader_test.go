package xliff

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXLIFF = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
	<file original="" product-name="Vendor.Site" source-language="en" target-language="de" datatype="plaintext">
		<body>
			<trans-unit id="ui.label" xml:space="preserve">
				<source>Headline</source>
				<target>Überschrift</target>
			</trans-unit>
			<trans-unit id="properties.title" xml:space="preserve">
				<source>Title &amp; subtitle</source>
				<target/>
			</trans-unit>
			<trans-unit id="groups.text">
				<source>Text</source>
			</trans-unit>
			<trans-unit id="ui.label">
				<source>duplicate</source>
			</trans-unit>
		</body>
	</file>
</xliff>
`

func TestParseUnits(t *testing.T) {
	units, err := ParseUnits([]byte(sampleXLIFF))
	require.NoError(t, err)

	assert.Equal(t, map[string]ExistingUnit{
		"ui.label":         {Source: "Headline", Target: "Überschrift", HasSource: true, HasTarget: true},
		"properties.title": {Source: "Title & subtitle", Target: "", HasSource: true, HasTarget: true},
		"groups.text":      {Source: "Text", HasSource: true},
	}, units)
}

func TestParseUnits_WithoutNamespace(t *testing.T) {
	units, err := ParseUnits([]byte(`<xliff><file><body><trans-unit id="a"><source>A</source></trans-unit></body></file></xliff>`))
	require.NoError(t, err)
	assert.Equal(t, "A", units["a"].Source)
}

func TestParseUnits_Latin1(t *testing.T) {
	data := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<xliff version=\"1.2\"><file><body>" +
		"<trans-unit id=\"ui.label\"><source>Headline</source><target>\xdcberschrift</target></trans-unit>" +
		"</body></file></xliff>")

	units, err := ParseUnits(data)
	require.NoError(t, err)
	assert.Equal(t, "Überschrift", units["ui.label"].Target)
}

func TestParseUnits_UnknownEncoding(t *testing.T) {
	_, err := ParseUnits([]byte(`<?xml version="1.0" encoding="x-no-such-charset"?><xliff><file><body/></file></xliff>`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseUnits_Empty(t *testing.T) {
	units, err := ParseUnits([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestParseUnits_MissingBody(t *testing.T) {
	_, err := ParseUnits([]byte(`<xliff xmlns="urn:oasis:names:tc:xliff:document:1.2"><file></file></xliff>`))
	require.ErrorIs(t, err, ErrMissingBody)

	_, err = ParseUnits([]byte(`<xliff></xliff>`))
	require.ErrorIs(t, err, ErrMissingBody)
}

func TestParseUnits_Malformed(t *testing.T) {
	for _, in := range []string{
		`<xliff><file><body>`,
		`<resources><string name="a">A</string></resources>`,
		`not xml at all`,
	} {
		_, err := ParseUnits([]byte(in))
		require.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestFSReader(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/t/de/A.xlf", []byte(sampleXLIFF), 0o644))

	r := FSReader{Fs: mem}

	units, err := r.ReadUnits("/t/de/A.xlf")
	require.NoError(t, err)
	assert.Len(t, units, 3)

	_, err = r.ReadUnits("/t/de/Missing.xlf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
