package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/booktoc/internal/report"
	"github.com/jackzampolin/booktoc/internal/toc"
)

var (
	generateDryRun bool
	generatePrune  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <pages_dir>",
	Short: "Write the TOC pages for a directory of chapter PDFs",
	Long: `Write the table of contents for the chapter PDFs in <pages_dir>.

Each TOC page is a grid of --toc-rows by --toc-cols entries filled column by
column. Chapter page numbers start after the title page and all TOC pages.

Examples:
  booktoc generate ./pages
  booktoc generate ./pages --toc-rows 40 --toc-cols 2
  booktoc generate ./pages --dry-run
  booktoc generate ./pages --prune     # also remove leftover NN.toc.html pages`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg := mgr.Get()

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = logger.With("run_id", uuid.NewString())

		res, err := toc.Generate(cmd.Context(), toc.Request{
			Dir:    args[0],
			Layout: cfg.Layout(),
			DryRun: generateDryRun,
			Prune:  generatePrune,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		report.FormatSummary(cmd.OutOrStdout(), res, generateDryRun)
		return nil
	},
}

func init() {
	addLayoutFlags(generateCmd)
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Compute the TOC without writing files")
	generateCmd.Flags().BoolVar(&generatePrune, "prune", false, "Remove TOC pages left over from earlier runs")

	rootCmd.AddCommand(generateCmd)
}
