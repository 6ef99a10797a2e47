// Package glob resolves slash-separated file patterns against a base
// directory. The dialect has three kinds of segments:
//
//	Configuration/NodeTypes.yaml   literal segments
//	NodeTypes/*.yaml               '*' matches any run of characters within one name
//	NodeTypes/**/*.yaml            '**' matches zero or more directory levels
//
// There are no character classes, no brace expansion and no escaping.
// Wildcard segments enumerate files, so they only match as the final
// segment of a pattern. Hidden entries (names starting with '.') are only
// matched by segments that start with '.' themselves, and '**' never
// descends into hidden directories.
package glob

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotADirectory is returned when the base directory does not exist
// or is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// recursive is the segment that matches any number of directory levels.
const recursive = "**"

// Matcher resolves patterns on a filesystem.
type Matcher struct {
	fs afero.Fs
}

// New returns a Matcher operating on fs.
func New(fs afero.Fs) *Matcher {
	return &Matcher{fs: fs}
}

// Resolve returns every file below baseDir matching pattern. Results are
// joined onto baseDir and ordered by directory listing (names sorted per
// directory), so repeated runs over the same tree return the same order.
func (m *Matcher) Resolve(baseDir, pattern string) ([]string, error) {
	if ok, err := afero.IsDir(m.fs, baseDir); err != nil || !ok {
		return nil, fmt.Errorf("resolving %q in %s: %w", pattern, baseDir, ErrNotADirectory)
	}

	segments := splitPattern(pattern)
	if len(segments) == 0 {
		return nil, nil
	}
	return m.match(filepath.Clean(baseDir), segments, 0), nil
}

// splitPattern splits a pattern on '/' and drops empty segments, so
// leading, trailing and doubled slashes are ignored.
func splitPattern(pattern string) []string {
	var segments []string
	for _, s := range strings.Split(pattern, "/") {
		if s != "" && s != "." {
			segments = append(segments, s)
		}
	}
	return segments
}

// match walks segments[idx:] starting at dir.
func (m *Matcher) match(dir string, segments []string, idx int) []string {
	if idx >= len(segments) {
		return nil
	}
	segment := segments[idx]
	last := idx == len(segments)-1

	switch {
	case segment == recursive:
		// Zero levels: try the rest of the pattern right here.
		matches := m.match(dir, segments, idx+1)
		// One more level: retry '**' in every subdirectory.
		for _, sub := range m.list(dir, true) {
			if isHidden(sub) {
				continue
			}
			matches = append(matches, m.match(filepath.Join(dir, sub), segments, idx)...)
		}
		return matches

	case strings.Contains(segment, "*"):
		if !last {
			return nil
		}
		var matches []string
		for _, name := range m.list(dir, false) {
			if MatchSegment(segment, name) {
				matches = append(matches, filepath.Join(dir, name))
			}
		}
		return matches

	default:
		candidate := filepath.Join(dir, segment)
		info, err := m.fs.Stat(candidate)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return m.match(candidate, segments, idx+1)
		}
		if last {
			return []string{candidate}
		}
		return nil
	}
}

// list returns the names of the directories (dirs == true) or the
// non-directory entries (dirs == false) directly inside dir. Unreadable
// directories yield nothing.
func (m *Matcher) list(dir string, dirs bool) []string {
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() == dirs {
			names = append(names, e.Name())
		}
	}
	return names
}

// MatchSegment reports whether name matches a single pattern segment in
// which '*' stands for any (possibly empty) run of characters. All other
// characters match literally. A leading '.' in name must be matched by a
// leading '.' in segment.
func MatchSegment(segment, name string) bool {
	if isHidden(name) && !isHidden(segment) {
		return false
	}
	parts := strings.Split(segment, "*")
	if len(parts) == 1 {
		return segment == name
	}

	prefix, suffix := parts[0], parts[len(parts)-1]
	if len(name) < len(prefix)+len(suffix) ||
		!strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return false
	}

	rest := name[len(prefix) : len(name)-len(suffix)]
	for _, mid := range parts[1 : len(parts)-1] {
		i := strings.Index(rest, mid)
		if i < 0 {
			return false
		}
		rest = rest[i+len(mid):]
	}
	return true
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
