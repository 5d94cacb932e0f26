package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func bookDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"00.MyBook#2.pdf", "Intro.pdf", "Chapter A#10.pdf", "Chapter B#5.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestGenerateCommand(t *testing.T) {
	dir := bookDir(t)

	out, err := execute(t, "generate", dir, "--toc-rows", "2", "--toc-cols", "1", "--home", t.TempDir(), "--log-level", "error")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "01.toc.html") || !strings.Contains(out, "02.toc.html") {
		t.Errorf("summary missing written pages:\n%s", out)
	}

	for _, name := range []string{"01.toc.html", "02.toc.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "03.toc.html")); !os.IsNotExist(err) {
		t.Error("unexpected third page")
	}
}

func TestGenerateCommand_RequiresDirectory(t *testing.T) {
	if _, err := execute(t, "generate"); err == nil {
		t.Fatal("expected error without pages_dir")
	}
}

func TestInspectCommand(t *testing.T) {
	dir := bookDir(t)

	out, err := execute(t, "inspect", dir, "--toc-rows", "2", "--toc-cols", "1", "--home", t.TempDir(), "-o", "json", "--log-level", "error")
	if err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, out)
	}

	var res struct {
		TitlePageLength int `json:"title_page_length"`
		TOCPages        int `json:"toc_pages"`
		Counted         []struct {
			Title     string `json:"title"`
			StartPage int    `json:"start_page"`
		} `json:"counted"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if res.TitlePageLength != 2 || res.TOCPages != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
	want := []int{5, 15, 20}
	if len(res.Counted) != len(want) {
		t.Fatalf("got %d entries, want %d", len(res.Counted), len(want))
	}
	for i, page := range want {
		if res.Counted[i].StartPage != page {
			t.Errorf("entry %d: got page %d, want %d", i, res.Counted[i].StartPage, page)
		}
	}

	files, _ := filepath.Glob(filepath.Join(dir, "*.toc.html"))
	if len(files) != 0 {
		t.Errorf("inspect should not write files, found %v", files)
	}
}

func TestConfigInitCommand(t *testing.T) {
	homeDir := filepath.Join(t.TempDir(), "booktoc")

	if _, err := execute(t, "config", "init", "--home", homeDir); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(homeDir, "config.yaml")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, err := execute(t, "config", "init", "--home", homeDir); err == nil {
		t.Error("expected error when config exists")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "booktoc ") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestConfigShowCommand_OutputFormat(t *testing.T) {
	homeDir := t.TempDir()

	out, err := execute(t, "config", "show", "--home", homeDir, "-o", "json")
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, out)
	}
	var cfg struct {
		TOC struct {
			Rows int `json:"rows"`
			Cols int `json:"cols"`
		} `json:"toc"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if cfg.TOC.Rows != 50 || cfg.TOC.Cols != 3 || cfg.Output != "json" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := execute(t, "config", "show", "--home", homeDir, "-o", "toml"); err == nil {
		t.Error("expected error for unknown output format")
	}
}
