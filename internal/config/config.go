package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jackzampolin/booktoc/internal/home"
)

// EnvPrefix is prepended to environment variable overrides, e.g. BOOKTOC_TOC_ROWS.
const EnvPrefix = "BOOKTOC"

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	v         *viper.Viper
	config    *Config
	callbacks []func(*Config)
}

// Options controls where a Manager looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file. When empty, booktoc.yaml in the
	// working directory and config.yaml in HomeDir are searched.
	ConfigFile string
	// HomeDir is the booktoc home directory.
	HomeDir string
	// Flags are bound so that explicitly set flags win over every other source.
	// Keys are config keys, values are flag names.
	Flags   map[string]string
	FlagSet *pflag.FlagSet
}

// NewManager creates a new config manager and loads initial config.
func NewManager(opts Options) (*Manager, error) {
	cm := &Manager{
		v:         viper.New(),
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(opts); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults, environment, flags and config file.
func (cm *Manager) initViper(opts Options) error {
	v := cm.v

	defaults := DefaultConfig()
	v.SetDefault("toc.rows", defaults.TOC.Rows)
	v.SetDefault("toc.cols", defaults.TOC.Cols)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)

	// Environment variables with BOOKTOC_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.FlagSet != nil {
		for key, name := range opts.Flags {
			f := opts.FlagSet.Lookup(name)
			if f == nil {
				return fmt.Errorf("unknown flag %q for config key %q", name, key)
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	// Config file
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("booktoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if opts.HomeDir != "" {
			v.AddConfigPath(opts.HomeDir)
		}
	}

	// Try to read config file (not required)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if opts.ConfigFile == "" && opts.HomeDir != "" {
			return cm.readHomeConfig(opts.HomeDir)
		}
	}

	return nil
}

// readHomeConfig falls back to config.yaml in the home directory, which uses
// a different base name than the per-project booktoc.yaml.
func (cm *Manager) readHomeConfig(homeDir string) error {
	path := filepath.Join(homeDir, home.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	cm.v.SetConfigFile(path)
	if err := cm.v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := cm.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// ConfigFileUsed returns the config file that was read, or "".
func (cm *Manager) ConfigFileUsed() string {
	return cm.v.ConfigFileUsed()
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration. Invalid edits are
// logged and the previous configuration is kept.
func (cm *Manager) WatchConfig() {
	cm.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			slog.Warn("ignoring invalid config change", "file", e.Name, "error", err)
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	cm.v.WatchConfig()
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# booktoc configuration
# Every key can be overridden with a BOOKTOC_ environment variable,
# e.g. BOOKTOC_TOC_ROWS=40 or BOOKTOC_LOG_LEVEL=debug

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}
