// Package xliff models XLIFF translation catalogs: the in-memory catalog,
// where catalog files live inside a package, reading trans-units from an
// existing file and rendering a catalog through a text template.
package xliff

import (
	"path"
	"strings"
)

// Unit is one <trans-unit>.
type Unit struct {
	ID     string
	Source string
	Target string
}

// Catalog is the content of one XLIFF file.
type Catalog struct {
	// ProductName is the owning package key.
	ProductName string
	// SourceLanguage is the locale the source texts are written in.
	SourceLanguage string
	// TargetLanguage is empty for a source-only catalog.
	TargetLanguage string
	// Units are ordered like the ids of the originating document.
	Units []Unit
}

// IsSource reports whether c is a source-only catalog.
func (c *Catalog) IsSource() bool {
	return c.TargetLanguage == ""
}

// SourceTexts returns a map of unit id -> source text.
func (c *Catalog) SourceTexts() map[string]string {
	m := make(map[string]string, len(c.Units))
	for _, u := range c.Units {
		m[u.ID] = u.Source
	}
	return m
}

// ---------------------------------------------------------------------------
// File layout
// ---------------------------------------------------------------------------

// Layout places catalog files inside a package:
//
//	<packageDir>/<TranslationsPath>/<locale>/<name parts...>.<FileExtension>
type Layout struct {
	// TranslationsPath is relative to the package directory,
	// e.g. "Resources/Private/Translations".
	TranslationsPath string
	// FileExtension is used without the leading dot, e.g. "xlf".
	FileExtension string
}

// FilePath returns the catalog file path for locale and nameParts.
func (l Layout) FilePath(packageDir, locale string, nameParts []string) string {
	ext := strings.TrimPrefix(l.FileExtension, ".")
	return l.join(packageDir, locale, strings.Join(nameParts, "/")) + "." + ext
}

// DirPath returns the directory holding the catalog file.
func (l Layout) DirPath(packageDir, locale string, nameParts []string) string {
	dirParts := nameParts
	if len(dirParts) > 0 {
		dirParts = dirParts[:len(dirParts)-1]
	}
	return l.join(packageDir, locale, strings.Join(dirParts, "/"))
}

func (l Layout) join(packageDir, locale, rest string) string {
	return path.Join(strings.TrimRight(packageDir, "/"), strings.Trim(l.TranslationsPath, "/"), locale, rest)
}
