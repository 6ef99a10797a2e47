// Package merge reconciles the translation ids found in a NodeType file
// with the catalog already on disk, in the spirit of msgmerge:
//   - ids still required keep their existing source/target text,
//   - new ids get a labeled placeholder and are reported as added,
//   - ids no longer required are dropped.
//
// PropagateSource then copies the authoritative source-language texts into
// a target-language catalog.
package merge

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/minios-linux/xliffkit/xliff"
)

// Field names the part of a trans-unit that received a placeholder.
type Field string

const (
	FieldSource Field = "source"
	FieldTarget Field = "target"
)

// Added marks one placeholder synthesized by Build.
type Added struct {
	ID    string
	Field Field
}

// Request describes the catalog to build.
type Request struct {
	// PackageKey becomes the catalog's product name.
	PackageKey string
	// PackageDir is the package root the catalog layout is relative to.
	PackageDir string
	// Locale selects the catalog file.
	Locale string
	// SourceLanguage is recorded in the catalog header.
	SourceLanguage string
	// TargetLanguage is empty for a source-only catalog. When set, target
	// texts are resolved and placeholdered as well.
	TargetLanguage string
	// NameParts is the document's relative output path.
	NameParts []string
	// IDs are the required translation ids in document order.
	IDs []string
}

// Builder builds catalogs from required ids and existing catalog files.
type Builder struct {
	reader xliff.Reader
	layout xliff.Layout
}

// NewBuilder returns a Builder reading existing catalogs through reader.
func NewBuilder(reader xliff.Reader, layout xliff.Layout) *Builder {
	return &Builder{reader: reader, layout: layout}
}

// Build returns the catalog for req together with the placeholders it had
// to synthesize. The catalog is always usable. A non-nil error is a
// warning about the existing file (missing, unreadable or malformed), in
// which case no existing text was reused.
func (b *Builder) Build(req Request) (*xliff.Catalog, []Added, error) {
	path := b.layout.FilePath(req.PackageDir, req.Locale, req.NameParts)

	existing, warn := b.reader.ReadUnits(path)
	if warn != nil {
		existing = nil
	}

	catalog := &xliff.Catalog{
		ProductName:    req.PackageKey,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}
	withTarget := !catalog.IsSource()

	var added []Added
	seen := make(map[string]bool, len(req.IDs))
	for _, id := range req.IDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		old, found := existing[id]
		unit := xliff.Unit{ID: id}

		if found && old.HasSource {
			unit.Source = old.Source
		} else {
			unit.Source = Placeholder(req.Locale, req.NameParts, id)
			added = append(added, Added{ID: id, Field: FieldSource})
		}

		switch {
		case found && old.HasTarget:
			unit.Target = old.Target
		case withTarget:
			unit.Target = Placeholder(req.Locale, req.NameParts, id)
			added = append(added, Added{ID: id, Field: FieldTarget})
		}

		catalog.Units = append(catalog.Units, unit)
	}

	return catalog, added, warn
}

// Placeholder returns the text used for a missing translation:
// "#<locale>/<name parts joined by '/'>:<id>".
func Placeholder(locale string, nameParts []string, id string) string {
	return "#" + locale + "/" + strings.Join(nameParts, "/") + ":" + id
}

// IsNotExist reports whether a Build warning only says that the catalog
// file does not exist yet.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// PropagateSource overwrites the source text of every unit in target with
// the source text of the unit with the same id in source. Units whose id
// is not in source keep their own source text; target texts are never
// touched.
func PropagateSource(target, source *xliff.Catalog) {
	texts := source.SourceTexts()
	for i := range target.Units {
		if s, ok := texts[target.Units[i].ID]; ok {
			target.Units[i].Source = s
		}
	}
}
