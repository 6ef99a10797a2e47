package xliff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	l := Layout{TranslationsPath: "/Resources/Private/Translations/", FileExtension: "xlf"}

	tests := []struct {
		name     string
		pkg      string
		parts    []string
		wantFile string
		wantDir  string
	}{
		{
			name:     "nested name",
			pkg:      "/srv/Packages/Sites/Vendor.Site/",
			parts:    []string{"Content", "Headline"},
			wantFile: "/srv/Packages/Sites/Vendor.Site/Resources/Private/Translations/de/Content/Headline.xlf",
			wantDir:  "/srv/Packages/Sites/Vendor.Site/Resources/Private/Translations/de/Content",
		},
		{
			name:     "single part",
			pkg:      "/srv/pkg",
			parts:    []string{"Headline"},
			wantFile: "/srv/pkg/Resources/Private/Translations/de/Headline.xlf",
			wantDir:  "/srv/pkg/Resources/Private/Translations/de",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantFile, l.FilePath(tc.pkg, "de", tc.parts))
			assert.Equal(t, tc.wantDir, l.DirPath(tc.pkg, "de", tc.parts))
		})
	}
}

func TestLayout_ExtensionWithDot(t *testing.T) {
	l := Layout{TranslationsPath: "T", FileExtension: ".xliff"}
	assert.Equal(t, "/p/T/en/A.xliff", l.FilePath("/p", "en", []string{"A"}))
}

func TestCatalog_Helpers(t *testing.T) {
	c := &Catalog{
		SourceLanguage: "en",
		Units:          []Unit{{ID: "a", Source: "A"}, {ID: "b", Source: "B"}},
	}
	assert.True(t, c.IsSource())
	assert.Equal(t, map[string]string{"a": "A", "b": "B"}, c.SourceTexts())

	c.TargetLanguage = "de"
	assert.False(t, c.IsSource())
}
