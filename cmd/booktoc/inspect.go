package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/booktoc/internal/api"
	"github.com/jackzampolin/booktoc/internal/toc"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pages_dir>",
	Short: "Print the computed TOC entries without writing anything",
	Long: `Print the entries booktoc would write for <pages_dir>, with the starting page
of every chapter, as YAML or JSON (see --output).`,
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

		res, err := toc.Plan(toc.Request{
			Dir:    args[0],
			Layout: cfg.Layout(),
			Logger: logger,
		})
		if err != nil {
			return err
		}

		return api.OutputTo(cmd.OutOrStdout(), api.GetOutputFormat(), res)
	},
}

func init() {
	addLayoutFlags(inspectCmd)

	rootCmd.AddCommand(inspectCmd)
}
