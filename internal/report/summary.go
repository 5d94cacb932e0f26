// Package report renders human-readable run summaries for the terminal.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackzampolin/booktoc/internal/toc"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for written files
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for pruned files and dry runs
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatSummary renders the result of a generate run.
func FormatSummary(w io.Writer, res *toc.Result, dryRun bool) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Table of contents"), dimStyle.Render(res.Dir))
	fmt.Fprintf(&b, "%s %dx%d\n", dimStyle.Render("Grid:"), res.Layout.Rows, res.Layout.Cols)
	fmt.Fprintf(&b, "%s %d  %s %d  %s %d",
		dimStyle.Render("Chapters:"), res.Entries,
		dimStyle.Render("Title pages:"), res.TitlePageLength,
		dimStyle.Render("TOC pages:"), res.TOCPages,
	)
	if res.Entries > 0 {
		fmt.Fprintf(&b, "\n%s %d-%d", dimStyle.Render("Chapter pages:"), res.FirstPage, res.LastPage)
	}

	switch {
	case dryRun:
		fmt.Fprintf(&b, "\n%s", warnStyle.Render("dry run, nothing written"))
	case res.TOCPages == 0:
		fmt.Fprintf(&b, "\n%s", warnStyle.Render("no chapters found, nothing written"))
	default:
		for _, path := range res.Written {
			fmt.Fprintf(&b, "\n%s %s", successStyle.Render("✓"), filepath.Base(path))
		}
	}
	for _, path := range res.Pruned {
		fmt.Fprintf(&b, "\n%s %s", warnStyle.Render("✗"), filepath.Base(path))
	}

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}

// FormatError renders a failed regeneration, used by watch mode.
func FormatError(w io.Writer, dir string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", warnStyle.Render("✗"), dir, err)
}
