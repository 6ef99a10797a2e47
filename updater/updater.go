// Package updater creates and updates the XLIFF catalogs of one package
// from its NodeType files.
//
// For every NodeType file holding translatable fields, the source-language
// catalog is rebuilt and written first. When a target language is given,
// the target catalog is rebuilt next, its source texts are replaced with
// those of the source catalog, and it is written as well. Failures are
// reported per file and never stop the run.
package updater

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/minios-linux/xliffkit/merge"
	"github.com/minios-linux/xliffkit/nodetype"
	"github.com/minios-linux/xliffkit/xliff"
)

// Reporter receives progress and per-file problems.
type Reporter interface {
	Info(format string, args ...any)
	Warn(path string, err error)
	Error(path string, err error)
}

// DocumentScanner finds the NodeType documents of a package.
type DocumentScanner interface {
	Scan(baseDir string, patterns []string) ([]nodetype.Document, error)
}

// CatalogBuilder builds a catalog from required ids and the existing file.
type CatalogBuilder interface {
	Build(req merge.Request) (*xliff.Catalog, []merge.Added, error)
}

// Options configures a Synchronizer.
type Options struct {
	// IncludePatterns locate NodeType files inside the package.
	IncludePatterns []string
	// Layout places catalog files inside the package.
	Layout xliff.Layout
	// DryRun renders catalogs without touching the filesystem. Changes are
	// written as line diffs to DiffOut when it is set.
	DryRun  bool
	DiffOut io.Writer
}

// Request selects the package and languages to update.
type Request struct {
	PackageKey     string
	PackageDir     string
	SourceLanguage string
	// TargetLanguage is optional; empty updates source catalogs only.
	TargetLanguage string
}

// Synchronizer updates the catalogs of a package.
type Synchronizer struct {
	fs       afero.Fs
	scanner  DocumentScanner
	builder  CatalogBuilder
	renderer xliff.Renderer
	reporter Reporter
	opts     Options
}

// New returns a Synchronizer. All collaborators are required.
func New(fs afero.Fs, scanner DocumentScanner, builder CatalogBuilder, renderer xliff.Renderer, reporter Reporter, opts Options) *Synchronizer {
	return &Synchronizer{
		fs:       fs,
		scanner:  scanner,
		builder:  builder,
		renderer: renderer,
		reporter: reporter,
		opts:     opts,
	}
}

// Synchronize updates all catalogs of req.PackageDir. Failures, including
// a package directory that cannot be scanned, are reported and recorded
// in the Result; they never stop the run.
func (s *Synchronizer) Synchronize(req Request) *Result {
	res := &Result{}

	docs, err := s.scanner.Scan(req.PackageDir, s.opts.IncludePatterns)
	if err != nil {
		fe := FileError{Path: req.PackageDir, Op: opScan, Err: err}
		res.Errors = append(res.Errors, fe)
		s.reporter.Error(fe.Path, fe)
		return res
	}

	res.Documents = len(docs)
	for _, doc := range docs {
		s.syncDocument(req, doc, res)
	}
	return res
}

// syncDocument writes the source catalog of doc and, when requested, its
// target catalog.
func (s *Synchronizer) syncDocument(req Request, doc nodetype.Document, res *Result) {
	source := s.build(req, doc, req.SourceLanguage, "")
	s.persist(req, doc, req.SourceLanguage, source, res)

	if req.TargetLanguage == "" {
		return
	}

	target := s.build(req, doc, req.TargetLanguage, req.TargetLanguage)
	merge.PropagateSource(target.catalog, source.catalog)
	s.persist(req, doc, req.TargetLanguage, target, res)
}

// built is a catalog with the placeholders Build synthesized for it.
type built struct {
	catalog *xliff.Catalog
	added   []merge.Added
}

func (s *Synchronizer) build(req Request, doc nodetype.Document, locale, targetLanguage string) built {
	catalog, added, warn := s.builder.Build(merge.Request{
		PackageKey:     req.PackageKey,
		PackageDir:     req.PackageDir,
		Locale:         locale,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: targetLanguage,
		NameParts:      doc.NameParts,
		IDs:            doc.TranslationIDs,
	})
	if warn != nil {
		path := s.opts.Layout.FilePath(req.PackageDir, locale, doc.NameParts)
		if merge.IsNotExist(warn) {
			s.reporter.Info("Creating XLIFF file '%s'", path)
		} else {
			s.reporter.Warn(path, fmt.Errorf("continuing without parsed values: %w", warn))
		}
	}
	return built{catalog: catalog, added: added}
}
