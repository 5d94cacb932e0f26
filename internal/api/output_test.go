package api

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Title     string `json:"title" yaml:"title"`
	StartPage int    `json:"start_page" yaml:"start_page"`
}

func TestOutputTo(t *testing.T) {
	data := []sample{{Title: "Intro", StartPage: 3}}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "- title: Intro\n  start_page: 3\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"start_page": 3`) {
			t.Errorf("unexpected json: %s", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormat("toml"), data); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if GetOutputFormat() != OutputFormatJSON {
		t.Errorf("expected json, got %s", GetOutputFormat())
	}

	SetOutputFormat("xml")
	if GetOutputFormat() != DefaultOutput {
		t.Errorf("expected fallback to %s, got %s", DefaultOutput, GetOutputFormat())
	}
}

func TestParseOutputFormat(t *testing.T) {
	if _, err := ParseOutputFormat("json"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseOutputFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}
