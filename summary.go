package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/minios-linux/xliffkit/i18n"
	"github.com/minios-linux/xliffkit/langmeta"
	"github.com/minios-linux/xliffkit/nodetype"
	"github.com/minios-linux/xliffkit/updater"
)

// newTable returns a borderless table writing to w.
func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	return tbl
}

// relPath returns path relative to base, or path unchanged when it is not
// below base.
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func statusText(s updater.Status) string {
	switch s {
	case updater.StatusWritten:
		return color.GreenString(i18n.T("written"))
	case updater.StatusWouldChange:
		return color.YellowString(i18n.T("would change"))
	case updater.StatusFailed:
		return color.RedString(i18n.T("failed"))
	default:
		return i18n.T("unchanged")
	}
}

// printSummary renders one row per catalog processed by a run.
func printSummary(w io.Writer, pkgDir string, res *updater.Result) {
	if len(res.Files) == 0 {
		return
	}

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{
		i18n.T("NodeType file"), i18n.T("Language"), i18n.T("Catalog"),
		i18n.T("Units"), i18n.T("Added"), i18n.T("Size"), i18n.T("Status"),
	})

	var units, size int
	for _, f := range res.Files {
		units += f.Units
		size += f.Bytes
		tbl.AppendRow(table.Row{
			relPath(pkgDir, f.Document),
			langmeta.Label(f.Locale),
			relPath(pkgDir, f.Path),
			f.Units,
			f.Added,
			humanize.Bytes(uint64(f.Bytes)),
			statusText(f.Status),
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf(i18n.N("%d file", "%d files", res.Documents), res.Documents), "", "",
		units, res.Updated, humanize.Bytes(uint64(size)), "",
	})
	tbl.Render()
}

// printDocuments renders the result of a scan.
func printDocuments(w io.Writer, pkgDir, ext string, docs []nodetype.Document, showIDs bool) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{i18n.T("NodeType file"), i18n.T("Catalog"), i18n.T("Translation ids")})

	ids := 0
	for _, d := range docs {
		ids += len(d.TranslationIDs)
		catalog := strings.Join(d.NameParts, "/") + "." + strings.TrimPrefix(ext, ".")
		tbl.AppendRow(table.Row{relPath(pkgDir, d.Path), catalog, len(d.TranslationIDs)})
		if showIDs {
			for _, id := range d.TranslationIDs {
				tbl.AppendRow(table.Row{"", "  " + id, ""})
			}
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf(i18n.N("%d file", "%d files", len(docs)), len(docs)), "", ids})
	tbl.Render()
}
