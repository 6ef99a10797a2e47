package nodetype

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/minios-linux/xliffkit/glob"
)

// Document is one NodeType file that contains translatable fields.
type Document struct {
	// Path is the file the document was read from.
	Path string
	// NameParts is the relative output path of its translation catalog;
	// the last part is the file base name.
	NameParts []string
	// TranslationIDs lists the normalized ids in document order.
	TranslationIDs []string
}

// Options configures a Scanner.
type Options struct {
	// MagicValue marks a field as translatable.
	MagicValue string
}

// Scanner discovers NodeType files and extracts their translation ids.
type Scanner struct {
	fs      afero.Fs
	matcher *glob.Matcher
	parser  Parser
	opts    Options

	// OnSkip, when set, is called for every matched file that could not be
	// read or parsed. Such files are skipped either way.
	OnSkip func(path string, err error)
}

// NewScanner returns a Scanner reading from fs.
func NewScanner(fs afero.Fs, matcher *glob.Matcher, parser Parser, opts Options) *Scanner {
	return &Scanner{fs: fs, matcher: matcher, parser: parser, opts: opts}
}

// Scan resolves every include pattern against baseDir and returns the
// documents holding at least one translation id. A file matched by more
// than one pattern is processed once. The only error is
// glob.ErrNotADirectory for a missing or invalid baseDir.
func (s *Scanner) Scan(baseDir string, patterns []string) ([]Document, error) {
	if ok, err := afero.IsDir(s.fs, baseDir); err != nil || !ok {
		return nil, fmt.Errorf("scanning %s: %w", baseDir, glob.ErrNotADirectory)
	}

	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := s.matcher.Resolve(baseDir, pattern)
		if err != nil {
			s.skip(baseDir, err)
			continue
		}
		for _, p := range matches {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}

	var docs []Document
	for _, path := range paths {
		doc, ok := s.load(path)
		if ok && len(doc.TranslationIDs) > 0 {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// load reads and parses one file. ok is false for unreadable files and for
// files without a usable document.
func (s *Scanner) load(path string) (Document, bool) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.skip(path, fmt.Errorf("reading %s: %w", path, err))
		return Document{}, false
	}

	tree, err := s.parser.Parse(data)
	if err != nil {
		s.skip(path, err)
		return Document{}, false
	}
	if tree == nil {
		return Document{}, false
	}

	return NewDocument(path, tree, s.opts.MagicValue), true
}

// NewDocument builds the Document for an already parsed tree.
func NewDocument(path string, tree *Node, magic string) Document {
	parts, ok := NameParts(tree)
	if !ok {
		parts = namePartsFromFile(path)
	}
	return Document{
		Path:           path,
		NameParts:      parts,
		TranslationIDs: NormalizeAll(ExtractIDs(tree, magic)),
	}
}

// namePartsFromFile splits the file base name without its .yaml/.yml
// extension on '.', e.g. "NodeTypes.Content.Text.yaml" -> [NodeTypes Content Text].
func namePartsFromFile(path string) []string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	parts, _ := splitName(base)
	return parts
}

func (s *Scanner) skip(path string, err error) {
	if s.OnSkip != nil {
		s.OnSkip(path, err)
	}
}
