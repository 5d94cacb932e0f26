package toc

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/booktoc/internal/chapters"
)

// Request contains the parameters for generating a table of contents.
type Request struct {
	Dir    string       // Directory holding the chapter PDFs
	Layout Layout       // Grid of a single TOC page
	DryRun bool         // Compute pages without writing them
	Prune  bool         // Remove stale TOC pages from earlier runs
	Logger *slog.Logger // Optional logger for progress updates
}

// Result describes a generated table of contents.
type Result struct {
	Dir             string         `json:"dir" yaml:"dir"`
	Layout          Layout         `json:"layout" yaml:"layout"`
	TitlePageLength int            `json:"title_page_length" yaml:"title_page_length"`
	Entries         int            `json:"entries" yaml:"entries"`
	TOCPages        int            `json:"toc_pages" yaml:"toc_pages"`
	FirstPage       int            `json:"first_page" yaml:"first_page"`
	LastPage        int            `json:"last_page" yaml:"last_page"`
	Counted         []CountedEntry `json:"counted" yaml:"counted"`
	Pages           []Page         `json:"-" yaml:"-"`
	Written         []string       `json:"written,omitempty" yaml:"written,omitempty"`
	Pruned          []string       `json:"pruned,omitempty" yaml:"pruned,omitempty"`
}

// Plan extracts entries from req.Dir and lays them out without touching the
// filesystem.
func Plan(req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := req.Layout.Validate(); err != nil {
		return nil, err
	}

	listing, err := chapters.ExtractWithLogger(req.Dir, log)
	if err != nil {
		return nil, err
	}

	first := FirstPage(len(listing.Entries), listing.TitlePageLength, req.Layout)
	counted, next := Count(listing.Entries, first)
	pages := Pages(counted, req.Layout)

	log.Info("planned toc",
		"dir", req.Dir,
		"entries", len(counted),
		"title_page_length", listing.TitlePageLength,
		"toc_pages", len(pages))

	return &Result{
		Dir:             req.Dir,
		Layout:          req.Layout,
		TitlePageLength: listing.TitlePageLength,
		Entries:         len(counted),
		TOCPages:        len(pages),
		FirstPage:       first,
		LastPage:        next - 1,
		Counted:         counted,
		Pages:           pages,
	}, nil
}

// Generate plans the TOC for req.Dir and writes one HTML file per TOC page
// into the same directory.
func Generate(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	res, err := Plan(req)
	if err != nil {
		return nil, err
	}
	if req.DryRun {
		return res, nil
	}

	w := &Writer{Dir: req.Dir, Logger: log}
	res.Written, err = w.WriteAll(ctx, res.Pages)
	if err != nil {
		return res, err
	}

	if req.Prune {
		res.Pruned, err = Prune(req.Dir, res.TOCPages)
		if err != nil {
			return res, err
		}
		if len(res.Pruned) > 0 {
			log.Info("pruned stale toc pages", "count", len(res.Pruned))
		}
	}

	log.Info("toc generated", "dir", req.Dir, "written", len(res.Written))
	return res, nil
}
