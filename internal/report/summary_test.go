package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jackzampolin/booktoc/internal/toc"
)

func TestFormatSummary(t *testing.T) {
	res := &toc.Result{
		Dir:             "/books/novel",
		Layout:          toc.Layout{Rows: 2, Cols: 1},
		TitlePageLength: 2,
		Entries:         3,
		TOCPages:        2,
		FirstPage:       5,
		LastPage:        20,
		Written:         []string{"/books/novel/01.toc.html", "/books/novel/02.toc.html"},
		Pruned:          []string{"/books/novel/03.toc.html"},
	}

	t.Run("written", func(t *testing.T) {
		var buf bytes.Buffer
		FormatSummary(&buf, res, false)
		out := buf.String()

		for _, want := range []string{"/books/novel", "2x1", "Chapters:", "5-20", "01.toc.html", "02.toc.html", "03.toc.html"} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "dry run") {
			t.Error("unexpected dry run marker")
		}
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		FormatSummary(&buf, res, true)
		if !strings.Contains(buf.String(), "dry run, nothing written") {
			t.Errorf("expected dry run marker:\n%s", buf.String())
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		var buf bytes.Buffer
		FormatSummary(&buf, &toc.Result{Dir: "/empty", Layout: toc.DefaultLayout()}, false)
		out := buf.String()
		if !strings.Contains(out, "no chapters found") {
			t.Errorf("expected empty marker:\n%s", out)
		}
		if strings.Contains(out, "Chapter pages:") {
			t.Errorf("unexpected page range:\n%s", out)
		}
	})
}

func TestFormatError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, "/books/novel", errors.New("malformed page count"))
	if !strings.Contains(buf.String(), "/books/novel: malformed page count") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
