package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/minios-linux/xliffkit/config"
	"github.com/minios-linux/xliffkit/glob"
	"github.com/minios-linux/xliffkit/i18n"
	"github.com/minios-linux/xliffkit/langmeta"
	"github.com/minios-linux/xliffkit/merge"
	"github.com/minios-linux/xliffkit/nodetype"
	"github.com/minios-linux/xliffkit/updater"
	"github.com/minios-linux/xliffkit/xliff"
)

// ---------------------------------------------------------------------------
// Shared setup
// ---------------------------------------------------------------------------

// session is the state every package command starts from.
type session struct {
	fs     afero.Fs
	cfg    *config.Config
	pkgDir string
}

// newSession loads the configuration and locates the package directory,
// either from --package-dir or by looking packageKey up below --root.
func newSession(fs afero.Fs, packageKey string) (*session, error) {
	cfg, err := config.LoadConfig(fs, rootDir, configPath)
	if err != nil {
		return nil, err
	}

	if packageDir != "" {
		if !config.ValidPackageKey(packageKey) {
			return nil, fmt.Errorf("%q: %w", packageKey, config.ErrInvalidPackageKey)
		}
		return &session{fs: fs, cfg: cfg, pkgDir: packageDir}, nil
	}

	dir, err := config.ResolvePackageDir(fs, rootDir, cfg.Packages.Paths, packageKey)
	if err != nil {
		return nil, err
	}
	return &session{fs: fs, cfg: cfg, pkgDir: dir}, nil
}

func (s *session) scanner() *nodetype.Scanner {
	sc := nodetype.NewScanner(s.fs, glob.New(s.fs), nodetype.YAMLParser{}, s.cfg.ScannerOptions())
	sc.OnSkip = func(path string, err error) {
		logInfo(i18n.T("Skipping %s: %v"), path, err)
	}
	return sc
}

// templateFile returns the configured catalog template, resolved against
// --root, or "" for the built-in one.
func (s *session) templateFile() string {
	tf := s.cfg.Translations.TemplateFile
	if tf == "" || filepath.IsAbs(tf) {
		return tf
	}
	return filepath.Join(rootDir, tf)
}

// ---------------------------------------------------------------------------
// update / update-source
// ---------------------------------------------------------------------------

func newUpdateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update <package-key> <source-language> <target-language>",
		Short: "Update source and target language catalogs of a package",
		Long: `Update the XLIFF catalogs of a package for the source and the target language.

The source language catalogs are updated first. Target language catalogs
then take their <source> texts from the source catalogs; existing <target>
texts are kept and missing ones get a placeholder.`,
		Example: `  xliffkit update Vendor.Site en de
  xliffkit update Vendor.Site en de_CH --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.OutOrStdout(), afero.NewOsFs(), updateArgs{
				packageKey: args[0],
				sourceLang: args[1],
				targetLang: args[2],
				dryRun:     dryRun,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print catalog changes as a diff instead of writing them")

	return cmd
}

func newUpdateSourceCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update-source <package-key> [source-language]",
		Short: "Update source language catalogs of a package",
		Long: `Update the XLIFF catalogs of a package for the source language only.
The source language defaults to source_lang from the configuration.`,
		Example: `  xliffkit update-source Vendor.Site
  xliffkit update-source Vendor.Site en`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := updateArgs{packageKey: args[0], dryRun: dryRun}
			if len(args) == 2 {
				a.sourceLang = args[1]
			}
			return runUpdate(cmd.OutOrStdout(), afero.NewOsFs(), a)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print catalog changes as a diff instead of writing them")

	return cmd
}

type updateArgs struct {
	packageKey string
	sourceLang string
	targetLang string
	dryRun     bool
}

func runUpdate(out io.Writer, fs afero.Fs, a updateArgs) error {
	s, err := newSession(fs, a.packageKey)
	if err != nil {
		return err
	}

	if a.sourceLang == "" {
		a.sourceLang = s.cfg.SourceLang
	}
	source, err := langmeta.Canonical(a.sourceLang)
	if err != nil {
		return fmt.Errorf("source language: %w", err)
	}
	var target string
	if a.targetLang != "" {
		if target, err = langmeta.Canonical(a.targetLang); err != nil {
			return fmt.Errorf("target language: %w", err)
		}
		if target == source {
			return fmt.Errorf(i18n.T("Target language %s is the source language"), target)
		}
	}

	renderer, err := xliff.NewTemplateRenderer(s.fs, s.templateFile())
	if err != nil {
		return err
	}
	layout := s.cfg.Layout()
	builder := merge.NewBuilder(xliff.FSReader{Fs: s.fs}, layout)

	sync := updater.New(s.fs, s.scanner(), builder, renderer, cliReporter{}, updater.Options{
		IncludePatterns: s.cfg.NodeTypes.IncludePatterns,
		Layout:          layout,
		DryRun:          a.dryRun,
		DiffOut:         out,
	})

	if target != "" {
		logInfo(i18n.T("Updating %s: %s -> %s"), a.packageKey, langmeta.Label(source), langmeta.Label(target))
	} else {
		logInfo(i18n.T("Updating %s: %s"), a.packageKey, langmeta.Label(source))
	}

	res := sync.Synchronize(updater.Request{
		PackageKey:     a.packageKey,
		PackageDir:     s.pkgDir,
		SourceLanguage: source,
		TargetLanguage: target,
	})

	if !quiet {
		printSummary(out, s.pkgDir, res)
	}

	switch {
	case res.Documents == 0 && len(res.Errors) == 0:
		logWarning(i18n.T("No NodeType files with translatable fields found in %s"), s.pkgDir)
	case a.dryRun:
		logSuccess(i18n.N("Dry run: %d translation would be added", "Dry run: %d translations would be added", res.Updated), res.Updated)
	default:
		logSuccess(i18n.N("Updated %d translation", "Updated %d translations", res.Updated), res.Updated)
	}

	if n := len(res.Errors); n > 0 {
		return fmt.Errorf(i18n.N("%d catalog could not be updated", "%d catalogs could not be updated", n), n)
	}
	return nil
}

// cliReporter prints synchronizer progress through the log helpers.
type cliReporter struct{}

func (cliReporter) Info(format string, args ...any) {
	logInfo(i18n.T(format), args...)
}

func (cliReporter) Warn(path string, err error) {
	logWarning(i18n.T("Problem with %s: %v"), path, err)
}

func (cliReporter) Error(path string, err error) {
	logError("%v", err)
}

// ---------------------------------------------------------------------------
// scan (read-only: NodeType files and their translation ids)
// ---------------------------------------------------------------------------

func newScanCmd() *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "scan <package-key>",
		Short: "List NodeType files with translatable fields",
		Long: `List the NodeType files of a package that contain translatable fields,
the catalog each one maps to, and the number of translation ids.
Does not modify any files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.OutOrStdout(), afero.NewOsFs(), args[0], showIDs)
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Also list every translation id")

	return cmd
}

func runScan(out io.Writer, fs afero.Fs, packageKey string, showIDs bool) error {
	s, err := newSession(fs, packageKey)
	if err != nil {
		return err
	}

	docs, err := s.scanner().Scan(s.pkgDir, s.cfg.NodeTypes.IncludePatterns)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logWarning(i18n.T("No NodeType files with translatable fields found in %s"), s.pkgDir)
		return nil
	}

	printDocuments(out, s.pkgDir, s.cfg.Translations.FileExtension, docs, showIDs)
	return nil
}
