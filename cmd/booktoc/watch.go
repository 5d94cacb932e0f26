package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/booktoc/internal/config"
	"github.com/jackzampolin/booktoc/internal/report"
	"github.com/jackzampolin/booktoc/internal/toc"
	"github.com/jackzampolin/booktoc/internal/watch"
)

var watchPrune bool

var watchCmd = &cobra.Command{
	Use:   "watch <pages_dir>",
	Short: "Regenerate the TOC whenever chapter files change",
	Long: `Generate the TOC for <pages_dir>, then keep regenerating it whenever a chapter
PDF is added, removed, renamed or rewritten. Edits to the config file are
picked up without a restart.

Stop with Ctrl+C.`,
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

		dir := args[0]
		out := cmd.OutOrStdout()

		run := func(ctx context.Context) error {
			res, err := toc.Generate(ctx, toc.Request{
				Dir:    dir,
				Layout: mgr.Get().Layout(),
				Prune:  watchPrune,
				Logger: logger.With("run_id", uuid.NewString()),
			})
			if err != nil {
				return err
			}
			report.FormatSummary(out, res, false)
			return nil
		}

		w := watch.New(dir, cfg.Watch.Debounce, run, logger)
		w.OnError = func(err error) { report.FormatError(out, dir, err) }

		if mgr.ConfigFileUsed() != "" {
			mgr.OnChange(func(c *config.Config) {
				logger.Info("config changed", "rows", c.TOC.Rows, "cols", c.TOC.Cols)
				w.Kick()
			})
			mgr.WatchConfig()
		}

		return w.Watch(cmd.Context())
	},
}

func init() {
	addLayoutFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "Quiet period after a change before regenerating")
	watchCmd.Flags().BoolVar(&watchPrune, "prune", true, "Remove TOC pages left over from earlier runs")

	rootCmd.AddCommand(watchCmd)
}
