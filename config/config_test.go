package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// LoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj", 0o755))

	cfg, err := LoadConfig(fs, "/proj", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_FileInRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/"+FileName, []byte(`source_lang: de
node_types:
  include_patterns:
    - "NodeTypes/*.yaml"
  translation_magic_value: translate
translations:
  path: Resources/Translations
  file_extension: xliff
packages:
  paths: [DistributionPackages, Packages]
`), 0o644))

	cfg, err := LoadConfig(fs, "/proj", "")
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.SourceLang)
	assert.Equal(t, []string{"NodeTypes/*.yaml"}, cfg.NodeTypes.IncludePatterns)
	assert.Equal(t, "translate", cfg.ScannerOptions().MagicValue)
	assert.Equal(t, "Resources/Translations", cfg.Layout().TranslationsPath)
	assert.Equal(t, "xliff", cfg.Layout().FileExtension)
	assert.Equal(t, []string{"DistributionPackages", "Packages"}, cfg.Packages.Paths)
	assert.Empty(t, cfg.Translations.TemplateFile)
}

func TestLoadConfig_ExplicitPathAndEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/xliffkit.yaml", []byte("source_lang: fr\n"), 0o644))
	t.Setenv("XLIFFKIT_TRANSLATIONS_PATH", "Translations")

	cfg, err := LoadConfig(fs, "/proj", "/etc/xliffkit.yaml")
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.SourceLang)
	assert.Equal(t, "Translations", cfg.Translations.Path)
	assert.Equal(t, DefaultIncludePatterns(), cfg.NodeTypes.IncludePatterns)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := LoadConfig(afero.NewMemMapFs(), "/proj", "/nope.yaml")
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/"+FileName, []byte("source_lang: [\n"), 0o644))
		_, err := LoadConfig(fs, "/proj", "")
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("empty magic value", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/"+FileName, []byte("node_types:\n  translation_magic_value: \"\"\n"), 0o644))
		_, err := LoadConfig(fs, "/proj", "")
		assert.ErrorIs(t, err, errNoMagicValue)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.NodeTypes.IncludePatterns = nil
	cfg.Translations.FileExtension = "."
	err := cfg.Validate()
	assert.ErrorIs(t, err, errNoIncludePatterns)
	assert.ErrorIs(t, err, errNoFileExtension)
	assert.NotErrorIs(t, err, errNoMagicValue)
}

// ---------------------------------------------------------------------------
// ResolvePackageDir
// ---------------------------------------------------------------------------

func TestValidPackageKey(t *testing.T) {
	for key, want := range map[string]bool{
		"Vendor.Site":     true,
		"Neos.Demo.Blog":  true,
		"vendor.site2":    true,
		"Vendor":          false,
		"Vendor.":         false,
		".Site":           false,
		"Vendor/Site":     false,
		"Vendor.Site-Foo": false,
		"":                false,
	} {
		assert.Equal(t, want, ValidPackageKey(key), key)
	}
}

func TestResolvePackageDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, dir := range []string{
		"/proj/Packages/Sites/Vendor.Site",
		"/proj/Packages/Application/Vendor.Plugin",
		"/proj/DistributionPackages/Vendor.Flat",
	} {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	require.NoError(t, afero.WriteFile(fs, "/proj/Packages/Plugins/Vendor.File", nil, 0o644))

	paths := []string{"DistributionPackages", "Packages"}

	t.Run("category directory", func(t *testing.T) {
		dir, err := ResolvePackageDir(fs, "/proj", paths, "Vendor.Site")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/proj/Packages/Sites/Vendor.Site"), dir)
	})

	t.Run("flat", func(t *testing.T) {
		dir, err := ResolvePackageDir(fs, "/proj", paths, "Vendor.Flat")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/proj/DistributionPackages/Vendor.Flat"), dir)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := ResolvePackageDir(fs, "/proj", paths, "Vendor")
		assert.ErrorIs(t, err, ErrInvalidPackageKey)
	})

	t.Run("not available", func(t *testing.T) {
		_, err := ResolvePackageDir(fs, "/proj", paths, "Vendor.Missing")
		assert.ErrorIs(t, err, ErrPackageNotAvailable)
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := ResolvePackageDir(fs, "/proj", paths, "Vendor.File")
		assert.ErrorIs(t, err, ErrPackageNotDirectory)
	})
}
