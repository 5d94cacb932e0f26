package toc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var pageFilePattern = regexp.MustCompile(`^(\d{2,})\.toc\.html$`)

// Writer writes rendered TOC pages into a directory.
type Writer struct {
	Dir    string
	Logger *slog.Logger
}

// WriteAll renders and writes pages in order. It stops at the first failure
// and leaves pages already written in place.
func (w *Writer) WriteAll(ctx context.Context, pages []Page) ([]string, error) {
	log := w.Logger
	if log == nil {
		log = slog.Default()
	}

	written := make([]string, 0, len(pages))
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(w.Dir, PageFileName(p.Number))
		if err := writePage(path, p); err != nil {
			return written, err
		}
		log.Debug("wrote toc page", "file", path, "page", p.Number)
		written = append(written, path)
	}

	return written, nil
}

func writePage(path string, p Page) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create toc page: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close toc page: %w", cerr)
		}
	}()

	return Render(f, p)
}

// Prune removes TOC pages in dir numbered above keep, left behind by an
// earlier run that produced more pages.
func Prune(dir string, keep int) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var removed []string
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		m := pageFilePattern.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= keep {
			continue
		}
		path := filepath.Join(dir, de.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove stale toc page: %w", err)
		}
		removed = append(removed, path)
	}

	return removed, nil
}
