package updater

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/minios-linux/xliffkit/nodetype"
)

// ErrDirectoryOccupied is returned when a plain file sits where a catalog
// directory has to be created.
var ErrDirectoryOccupied = errors.New("a file with the same name exists")

// persist renders b.catalog and writes it to its catalog file. The added
// count is credited only when the catalog was written (or would have
// been, in a dry run).
func (s *Synchronizer) persist(req Request, doc nodetype.Document, locale string, b built, res *Result) {
	layout := s.opts.Layout
	dir := layout.DirPath(req.PackageDir, locale, doc.NameParts)
	path := layout.FilePath(req.PackageDir, locale, doc.NameParts)

	fr := FileResult{
		Document: doc.Path,
		Path:     path,
		Locale:   locale,
		Units:    len(b.catalog.Units),
		Added:    len(b.added),
	}

	fail := func(op string, err error) {
		fe := FileError{Path: path, Op: op, Err: err}
		if op == opCreateDir {
			fe.Path = dir
		}
		fr.Status = StatusFailed
		res.Errors = append(res.Errors, fe)
		res.Files = append(res.Files, fr)
		s.reporter.Error(fe.Path, fe)
	}

	if !s.opts.DryRun {
		if err := s.ensureDir(dir); err != nil {
			fail(opCreateDir, err)
			return
		}
		if err := s.ensureFile(path); err != nil {
			fail(opCreateFile, err)
			return
		}
	}

	content, err := s.renderer.Render(b.catalog)
	if err != nil {
		fail(opRender, err)
		return
	}
	fr.Bytes = len(content)

	current, _ := afero.ReadFile(s.fs, path)
	changed := !bytes.Equal(current, content)

	switch {
	case s.opts.DryRun:
		fr.Status = StatusUnchanged
		if changed {
			fr.Status = StatusWouldChange
			if s.opts.DiffOut != nil {
				fmt.Fprint(s.opts.DiffOut, LineDiff(path, string(current), string(content)))
			}
		}
	case !changed:
		fr.Status = StatusUnchanged
	default:
		if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
			fail(opWrite, err)
			return
		}
		fr.Status = StatusWritten
		s.reporter.Info("Updated XLIFF file '%s'", path)
	}

	res.Updated += fr.Added
	res.Files = append(res.Files, fr)
}

// ensureDir creates dir and its parents unless it already exists.
func (s *Synchronizer) ensureDir(dir string) error {
	info, err := s.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s: %w", dir, ErrDirectoryOccupied)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return s.fs.MkdirAll(dir, 0o755)
}

// ensureFile creates an empty file at path unless a file already exists.
func (s *Synchronizer) ensureFile(path string) error {
	info, err := s.fs.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return afero.WriteFile(s.fs, path, nil, 0o644)
}
