package chapters

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is one chapter: its TOC title and the number of pages it occupies.
type Entry struct {
	Title      string `json:"title" yaml:"title"`
	PageLength int    `json:"page_length" yaml:"page_length"`
}

// Listing is the result of scanning a pages directory.
type Listing struct {
	TitlePageLength int     `json:"title_page_length" yaml:"title_page_length"`
	Entries         []Entry `json:"entries" yaml:"entries"`
}

// Extract scans dir and returns the title page length and the chapter entries
// in case-insensitive filename order.
func Extract(dir string) (*Listing, error) {
	return ExtractWithLogger(dir, nil)
}

// ExtractWithLogger is Extract with debug logging of every classified file.
func ExtractWithLogger(dir string, log *slog.Logger) (*Listing, error) {
	if log == nil {
		log = slog.Default()
	}

	names, err := listChapterFiles(dir)
	if err != nil {
		return nil, err
	}

	parsed := make([]Parsed, 0, len(names))
	for _, name := range names {
		p, err := Parse(name)
		if err != nil {
			return nil, err
		}
		log.Debug("classified file", "file", name, "kind", p.Kind, "pages", p.PageLength)
		parsed = append(parsed, p)
	}

	return Collect(parsed)
}

// Collect folds parsed filenames, already in sorted order, into a Listing.
// Title pages set the title page length, TOC artifacts are dropped and
// chapters become entries.
func Collect(parsed []Parsed) (*Listing, error) {
	listing := &Listing{Entries: make([]Entry, 0, len(parsed))}

	var titlePage string
	for _, p := range parsed {
		switch p.Kind {
		case KindTitlePage:
			if titlePage != "" {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleTitlePages, titlePage, p.Name)
			}
			titlePage = p.Name
			listing.TitlePageLength = p.PageLength
		case KindTOCArtifact:
			continue
		case KindChapter:
			listing.Entries = append(listing.Entries, Entry{Title: p.Title, PageLength: p.PageLength})
		}
	}

	return listing, nil
}

// listChapterFiles returns the regular chapter files in dir sorted
// case-insensitively.
func listChapterFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if !IsChapterFile(de.Name()) {
			continue
		}
		if de.Type()&os.ModeSymlink != 0 {
			// Follow links so chapters can live elsewhere.
			info, err := os.Stat(filepath.Join(dir, de.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			names = append(names, de.Name())
			continue
		}
		if de.Type().IsRegular() {
			names = append(names, de.Name())
		}
	}

	SortNames(names)
	return names, nil
}

// SortNames sorts filenames ascending by their lowercased form.
// Names that differ only in case fall back to byte order.
func SortNames(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
