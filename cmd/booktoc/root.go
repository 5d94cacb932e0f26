package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/booktoc/internal/api"
	"github.com/jackzampolin/booktoc/internal/config"
	"github.com/jackzampolin/booktoc/internal/home"
	"github.com/jackzampolin/booktoc/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "booktoc",
	Short: "Generate a paginated table of contents for a directory of chapter PDFs",
	Long: `booktoc produces a table of contents for the set of PDF files in a directory,
each assumed to be a chapter. Titles and page counts come from the file names:

  {TOC entry}[#{no of pages}].pdf     a chapter, 1 page if the count is omitted
  00.{title}[#{no of pages}].pdf      the book's title page

Chapters are ordered alphabetically, ignoring case. The TOC pages are written
next to the chapters as 01.toc.html, 02.toc.html, ... and are ignored on the
next run.`,
	Version:      version.GitRelease,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./booktoc.yaml or ~/.booktoc/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "booktoc home directory (default: ~/.booktoc)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn or error",
	)

	rootCmd.AddCommand(versionCmd)
}

// addLayoutFlags registers the grid flags shared by generate, inspect and watch.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Int("toc-rows", 50, "The max number of TOC rows")
	cmd.Flags().Int("toc-cols", 3, "The max number of TOC cols")
}

// loadConfig resolves configuration for cmd from flags, environment and
// config files, and applies the output format.
func loadConfig(cmd *cobra.Command) (*config.Manager, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}

	flags := map[string]string{
		"output":    "output",
		"log_level": "log-level",
	}
	if cmd.Flags().Lookup("toc-rows") != nil {
		flags["toc.rows"] = "toc-rows"
		flags["toc.cols"] = "toc-cols"
	}
	if cmd.Flags().Lookup("debounce") != nil {
		flags["watch.debounce"] = "debounce"
	}

	mgr, err := config.NewManager(config.Options{
		ConfigFile: cfgFile,
		HomeDir:    h.Path(),
		Flags:      flags,
		FlagSet:    cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	format, err := api.ParseOutputFormat(mgr.Get().Output)
	if err != nil {
		return nil, err
	}
	api.SetOutputFormat(string(format))

	return mgr, nil
}

// newLogger builds the text logger used by every command. Logs go to stderr
// so structured output on stdout stays parseable.
func newLogger(level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})), nil
}
