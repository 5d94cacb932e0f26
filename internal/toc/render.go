package toc

import (
	"fmt"
	"html/template"
	"io"
)

// Style is the stylesheet embedded in every TOC page. Every second cell is a
// page number and gets right padding to separate it from the next column.
const Style = `
  td {
    font-size: 10px;
  }
  table tr td:nth-child(2), td:nth-child(4), td:nth-child(6), td:nth-child(8), td:nth-child(10) {
    padding-right: 8px;
  }
`

// FileSuffix identifies generated TOC pages.
const FileSuffix = ".toc.html"

var pageTemplate = template.Must(template.New("page").Parse(
	`<html><head><style>` + Style + `</style></head><body><table>` +
		`{{range .Rows}}<tr>{{range .}}<td>{{.Title}}</td><td>{{.StartPage}}</td>{{end}}</tr>{{end}}` +
		`</table></body></html>`,
))

// Render writes a TOC page as HTML.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render toc page %d: %w", p.Number, err)
	}
	return nil
}

// PageFileName returns the file name of the 1-based TOC page n.
func PageFileName(n int) string {
	return fmt.Sprintf("%02d%s", n, FileSuffix)
}
