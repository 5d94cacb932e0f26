// Package toc paginates chapter entries into fixed-size grids and renders each
// grid as an HTML table of contents page.
package toc

import (
	"errors"
	"fmt"

	"github.com/jackzampolin/booktoc/internal/chapters"
)

const (
	// DefaultRows is the default number of TOC rows per page.
	DefaultRows = 50

	// DefaultCols is the default number of TOC columns per page.
	DefaultCols = 3
)

// ErrInvalidLayout is returned for grids with fewer than one row or column.
var ErrInvalidLayout = errors.New("invalid toc layout")

// Layout is the grid dimension of a single TOC page.
type Layout struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// DefaultLayout returns the 50x3 grid.
func DefaultLayout() Layout {
	return Layout{Rows: DefaultRows, Cols: DefaultCols}
}

// Validate checks that the grid has at least one cell.
func (l Layout) Validate() error {
	if l.Rows < 1 || l.Cols < 1 {
		return fmt.Errorf("%w: %dx%d (rows and cols must be at least 1)", ErrInvalidLayout, l.Rows, l.Cols)
	}
	return nil
}

// PerPage is the number of entries one TOC page holds.
func (l Layout) PerPage() int {
	return l.Rows * l.Cols
}

// CountedEntry is a chapter title with its absolute starting page.
type CountedEntry struct {
	Title     string `json:"title" yaml:"title"`
	StartPage int    `json:"start_page" yaml:"start_page"`
}

// PageCount returns how many TOC pages are needed for n entries.
func PageCount(n int, l Layout) int {
	if n <= 0 {
		return 0
	}
	per := l.PerPage()
	return (n + per - 1) / per
}

// FirstPage is the page on which the first chapter starts: after every TOC
// page and the title page.
func FirstPage(n, titlePageLength int, l Layout) int {
	return PageCount(n, l) + titlePageLength + 1
}

// Count annotates entries with starting pages beginning at start. It returns
// the counted entries and the page following the last chapter.
func Count(entries []chapters.Entry, start int) ([]CountedEntry, int) {
	counted := make([]CountedEntry, 0, len(entries))
	next := start
	for _, e := range entries {
		counted = append(counted, CountedEntry{Title: e.Title, StartPage: next})
		next += e.PageLength
	}
	return counted, next
}

// Paginate computes the starting page of every entry given the title page
// length and the TOC grid.
func Paginate(entries []chapters.Entry, titlePageLength int, l Layout) []CountedEntry {
	counted, _ := Count(entries, FirstPage(len(entries), titlePageLength, l))
	return counted
}
