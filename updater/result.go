package updater

import "fmt"

// Status is the outcome for one catalog file.
type Status string

const (
	StatusWritten     Status = "written"
	StatusUnchanged   Status = "unchanged"
	StatusWouldChange Status = "would change"
	StatusFailed      Status = "failed"
)

// Operations named in FileError.
const (
	opScan       = "scan"
	opCreateDir  = "create directory"
	opCreateFile = "create file"
	opRender     = "render"
	opWrite      = "write"
)

// FileResult describes one processed catalog.
type FileResult struct {
	// Document is the NodeType file the catalog was built from.
	Document string
	// Path is the catalog file.
	Path   string
	Locale string
	// Units is the number of trans-units in the catalog.
	Units int
	// Added is the number of placeholders synthesized for it.
	Added int
	// Bytes is the size of the rendered catalog.
	Bytes  int
	Status Status
}

// FileError is a per-file failure. The run continues after it.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result summarises a Synchronize run.
type Result struct {
	// Documents is the number of NodeType files with translatable fields.
	Documents int
	// Updated is the number of placeholders added over all catalogs
	// that were written.
	Updated int
	Files   []FileResult
	Errors  []FileError
}

// Written returns the number of catalogs that were written.
func (r *Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == StatusWritten {
			n++
		}
	}
	return n
}
