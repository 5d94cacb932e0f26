package config

import (
	"time"

	"github.com/jackzampolin/booktoc/internal/toc"
)

// Config holds booktoc configuration.
// Stored at: ~/.booktoc/config.yaml
type Config struct {
	TOC      TOCCfg   `mapstructure:"toc" yaml:"toc" json:"toc"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level" json:"log_level"` // debug, info, warn, error
	Output   string   `mapstructure:"output" yaml:"output" json:"output"`          // yaml or json
	Watch    WatchCfg `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// TOCCfg is the grid of a single TOC page.
type TOCCfg struct {
	Rows int `mapstructure:"rows" yaml:"rows" json:"rows"`
	Cols int `mapstructure:"cols" yaml:"cols" json:"cols"`
}

// WatchCfg configures the watch command.
type WatchCfg struct {
	// Debounce is how long to wait after the last change before regenerating.
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TOC: TOCCfg{
			Rows: toc.DefaultRows,
			Cols: toc.DefaultCols,
		},
		LogLevel: "info",
		Output:   "yaml",
		Watch: WatchCfg{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Layout converts the TOC section into a toc.Layout.
func (c *Config) Layout() toc.Layout {
	return toc.Layout{Rows: c.TOC.Rows, Cols: c.TOC.Cols}
}

// Validate checks values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	return c.Layout().Validate()
}
