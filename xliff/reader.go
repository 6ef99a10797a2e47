package xliff

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrMalformed is returned for content that is not a well-formed
	// <xliff> document.
	ErrMalformed = errors.New("malformed XLIFF")
	// ErrMissingBody is returned for an <xliff> document without
	// <file><body>.
	ErrMissingBody = errors.New("XLIFF file is missing a body tag")
)

// ExistingUnit is a trans-unit read from a catalog file. HasSource and
// HasTarget tell whether the element was present at all, so an empty
// <target/> still counts as existing text.
type ExistingUnit struct {
	Source    string
	Target    string
	HasSource bool
	HasTarget bool
}

// Reader loads the trans-units of an existing catalog file.
type Reader interface {
	ReadUnits(path string) (map[string]ExistingUnit, error)
}

// FSReader reads catalogs from an afero filesystem.
type FSReader struct {
	Fs afero.Fs
}

// ReadUnits implements Reader. A missing file returns an error wrapping
// fs.ErrNotExist; an empty file yields no units and no error.
func (r FSReader) ReadUnits(path string) (map[string]ExistingUnit, error) {
	data, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	units, err := ParseUnits(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return units, nil
}

// document mirrors the parts of XLIFF 1.2 that are read back. Elements
// are matched by local name, so a default xmlns on <xliff> is ignored.
type document struct {
	XMLName xml.Name   `xml:"xliff"`
	Files   []fileElem `xml:"file"`
}

type fileElem struct {
	Body *bodyElem `xml:"body"`
}

type bodyElem struct {
	Units []unitElem `xml:"trans-unit"`
}

type unitElem struct {
	ID     string    `xml:"id,attr"`
	Source *textElem `xml:"source"`
	Target *textElem `xml:"target"`
}

type textElem struct {
	Text string `xml:",chardata"`
}

// ParseUnits parses XLIFF content into a map of trans-unit id -> unit.
// The first trans-unit wins when an id repeats.
func ParseUnits(data []byte) (map[string]ExistingUnit, error) {
	units := make(map[string]ExistingUnit)
	if len(bytes.TrimSpace(data)) == 0 {
		return units, nil
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.Files) == 0 || doc.Files[0].Body == nil {
		return nil, ErrMissingBody
	}

	for _, u := range doc.Files[0].Body.Units {
		if _, dup := units[u.ID]; dup {
			continue
		}
		var eu ExistingUnit
		if u.Source != nil {
			eu.Source, eu.HasSource = u.Source.Text, true
		}
		if u.Target != nil {
			eu.Target, eu.HasTarget = u.Target.Text, true
		}
		units[u.ID] = eu
	}
	return units, nil
}

// charsetReader decodes catalogs declaring a non-UTF-8 encoding, e.g.
// <?xml version="1.0" encoding="ISO-8859-1"?>.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
