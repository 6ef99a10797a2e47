// Package config loads .xliffkit.yaml configuration and locates packages.
//
// Settings are read from defaults, then the configuration file, then
// XLIFFKIT_* environment variables. A missing configuration file is not an
// error; every setting has a default.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minios-linux/xliffkit/nodetype"
	"github.com/minios-linux/xliffkit/xliff"
)

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

// Config is the top-level .xliffkit.yaml structure.
type Config struct {
	// SourceLang is the default source language (default "en").
	SourceLang   string       `mapstructure:"source_lang"`
	NodeTypes    NodeTypes    `mapstructure:"node_types"`
	Translations Translations `mapstructure:"translations"`
	Packages     Packages     `mapstructure:"packages"`
}

// NodeTypes configures NodeType discovery.
type NodeTypes struct {
	// IncludePatterns are matched against the package directory.
	IncludePatterns []string `mapstructure:"include_patterns"`
	// TranslationMagicValue marks a field as translatable.
	TranslationMagicValue string `mapstructure:"translation_magic_value"`
}

// Translations configures where and how catalogs are written.
type Translations struct {
	// Path is the translations directory relative to the package.
	Path string `mapstructure:"path"`
	// FileExtension is the catalog file extension without the dot.
	FileExtension string `mapstructure:"file_extension"`
	// TemplateFile replaces the built-in catalog template when set.
	TemplateFile string `mapstructure:"template_file"`
}

// Packages configures package directory lookup.
type Packages struct {
	// Paths are the directories, relative to the project root, holding packages.
	Paths []string `mapstructure:"paths"`
}

// Defaults.
const (
	DefaultSourceLang            = "en"
	DefaultTranslationMagicValue = "i18n"
	DefaultTranslationsPath      = "Resources/Private/Translations"
	DefaultFileExtension         = "xlf"
)

// DefaultIncludePatterns returns the default NodeType include patterns.
func DefaultIncludePatterns() []string {
	return []string{"NodeTypes/**/*.yaml", "Configuration/NodeTypes.*.yaml"}
}

// DefaultPackagePaths returns the default package search paths.
func DefaultPackagePaths() []string {
	return []string{"Packages"}
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		SourceLang: DefaultSourceLang,
		NodeTypes: NodeTypes{
			IncludePatterns:       DefaultIncludePatterns(),
			TranslationMagicValue: DefaultTranslationMagicValue,
		},
		Translations: Translations{
			Path:          DefaultTranslationsPath,
			FileExtension: DefaultFileExtension,
		},
		Packages: Packages{Paths: DefaultPackagePaths()},
	}
}

// ---------------------------------------------------------------------------
// Validation and conversion
// ---------------------------------------------------------------------------

var (
	errNoIncludePatterns = errors.New("node_types.include_patterns must not be empty")
	errNoMagicValue      = errors.New("node_types.translation_magic_value must not be empty")
	errNoFileExtension   = errors.New("translations.file_extension must not be empty")
)

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	var errs []error
	if len(c.NodeTypes.IncludePatterns) == 0 {
		errs = append(errs, errNoIncludePatterns)
	}
	if strings.TrimSpace(c.NodeTypes.TranslationMagicValue) == "" {
		errs = append(errs, errNoMagicValue)
	}
	if strings.Trim(c.Translations.FileExtension, ". ") == "" {
		errs = append(errs, errNoFileExtension)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ScannerOptions returns the NodeType scanner options.
func (c *Config) ScannerOptions() nodetype.Options {
	return nodetype.Options{MagicValue: c.NodeTypes.TranslationMagicValue}
}

// Layout returns the catalog file layout.
func (c *Config) Layout() xliff.Layout {
	return xliff.Layout{
		TranslationsPath: c.Translations.Path,
		FileExtension:    c.Translations.FileExtension,
	}
}
