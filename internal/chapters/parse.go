// Package chapters derives table-of-contents entries from the filenames of
// per-chapter PDF files.
//
// The expected chapter filename is {title}[#{pages}].pdf and the expected
// title page filename is 00.{title}[#{pages}].pdf. Files whose title ends in
// .toc are previously generated TOC pages and are ignored.
package chapters

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Ext is the extension of chapter documents.
	Ext = ".pdf"

	// TitlePagePrefix marks the book's title page.
	TitlePagePrefix = "00."

	// TOCSuffix marks a previously generated TOC page.
	TOCSuffix = ".toc"

	// PageDelimiter separates the title from the page count.
	PageDelimiter = "#"

	// DefaultPageLength is used when a filename carries no page count.
	DefaultPageLength = 1
)

var (
	// ErrMalformedPageCount is returned when the segment after '#' is not an integer.
	ErrMalformedPageCount = errors.New("malformed page count")

	// ErrInvalidPageCount is returned when a page count is out of range.
	ErrInvalidPageCount = errors.New("invalid page count")

	// ErrMultipleTitlePages is returned when more than one 00. file exists.
	ErrMultipleTitlePages = errors.New("multiple title pages")
)

// Kind classifies a parsed filename.
type Kind int

const (
	KindChapter Kind = iota
	KindTitlePage
	KindTOCArtifact
)

func (k Kind) String() string {
	switch k {
	case KindChapter:
		return "chapter"
	case KindTitlePage:
		return "title_page"
	case KindTOCArtifact:
		return "toc_artifact"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Parsed is a single filename broken into its parts.
type Parsed struct {
	Name       string
	Kind       Kind
	Title      string
	PageLength int
}

// Parse splits a chapter filename into title and page length and classifies it.
// The name must carry the chapter extension.
func Parse(name string) (Parsed, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, PageDelimiter)

	p := Parsed{
		Name:       name,
		Title:      parts[0],
		PageLength: DefaultPageLength,
	}

	if len(parts) > 1 {
		n, err := parsePageCount(parts[1])
		if err != nil {
			return Parsed{}, fmt.Errorf("%w in %q: %w", ErrMalformedPageCount, name, err)
		}
		p.PageLength = n
	}

	switch {
	case strings.HasPrefix(p.Title, TitlePagePrefix):
		p.Kind = KindTitlePage
		if p.PageLength < 0 {
			return Parsed{}, fmt.Errorf("%w in %q: title page length %d", ErrInvalidPageCount, name, p.PageLength)
		}
	case strings.HasSuffix(p.Title, TOCSuffix):
		p.Kind = KindTOCArtifact
	default:
		p.Kind = KindChapter
		if p.PageLength < 1 {
			return Parsed{}, fmt.Errorf("%w in %q: chapter length %d", ErrInvalidPageCount, name, p.PageLength)
		}
	}

	return p, nil
}

// IsChapterFile reports whether name has the chapter extension and a non-empty stem.
func IsChapterFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == Ext && len(name) > len(ext)
}

// parsePageCount reads a page count leniently: surrounding whitespace is
// trimmed and single underscores may separate digits, so "1_0" is 10.
func parsePageCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 {
		return 0, &strconv.NumError{Func: "parsePageCount", Num: s, Err: strconv.ErrSyntax}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '_' {
			continue
		}
		if i == 0 || i == len(digits)-1 || !isDigit(digits[i-1]) || !isDigit(digits[i+1]) {
			return 0, &strconv.NumError{Func: "parsePageCount", Num: s, Err: strconv.ErrSyntax}
		}
	}
	return strconv.Atoi(strings.ReplaceAll(s, "_", ""))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
