// Package config loads brookplot settings from defaults, an optional
// brookplot.yaml and BROOKPLOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/renato0307/brookplot/internal/figure"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/lookup"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/theme"
	"github.com/renato0307/brookplot/internal/ui"
)

// EnvPrefix prefixes every environment override, e.g. BROOKPLOT_THEME_WEB
const EnvPrefix = "BROOKPLOT"

// ErrInvalidLogRotation is returned for non-positive rotation limits
var ErrInvalidLogRotation = errors.New("log rotation limits must be greater than zero")

// Config holds the complete application configuration
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme" json:"theme"`
	UI     UIConfig     `mapstructure:"ui" json:"ui"`
	Bundle BundleConfig `mapstructure:"bundle" json:"bundle"`
	Fonts  FontsConfig  `mapstructure:"fonts" json:"fonts"`
	Output OutputConfig `mapstructure:"output" json:"output"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
}

// ThemeConfig holds the chart theme inputs
type ThemeConfig struct {
	FontSize  float64 `mapstructure:"font_size" json:"font_size"`
	LineWidth float64 `mapstructure:"line_width" json:"line_width"`
	Web       bool    `mapstructure:"web" json:"web"`
	Palette   string  `mapstructure:"palette" json:"palette"`
}

// UIConfig holds terminal settings
type UIConfig struct {
	Theme string `mapstructure:"theme" json:"theme"`
}

// BundleConfig locates bundled assets such as logos/<code>.png
type BundleConfig struct {
	Dir string `mapstructure:"dir" json:"dir"`
}

// FontsConfig locates the Roboto TTF files; empty uses the built-in font
type FontsConfig struct {
	Dir string `mapstructure:"dir" json:"dir"`
}

// OutputConfig holds default figure size and resolution presets
type OutputConfig struct {
	Size string `mapstructure:"size" json:"size"`
	DPI  string `mapstructure:"dpi" json:"dpi"`
}

// LogConfig holds logging settings
type LogConfig struct {
	File       string `mapstructure:"file" json:"file"`
	Level      string `mapstructure:"level" json:"level"`
	Format     string `mapstructure:"format" json:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups"`
}

// DefaultConfig returns a new configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			FontSize:  theme.DefaultFontSize,
			LineWidth: theme.DefaultLineWidth,
			Web:       false,
			Palette:   string(palette.Brand1),
		},
		UI:     UIConfig{Theme: "brookings"},
		Bundle: BundleConfig{Dir: "."},
		Output: OutputConfig{Size: "medium"},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads configuration from configPath, or searches for
// brookplot.yaml in the working directory and $HOME/.config/brookplot.
// A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("brookplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/brookplot")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg = expandPaths(cfg)
	return &cfg, nil
}

// Validate checks enum keys and positive sizes
func (c *Config) Validate() error {
	if _, err := c.ChartTheme(); err != nil {
		return err
	}
	if _, err := palette.LookupCore(c.Theme.Palette, false); err != nil {
		return fmt.Errorf("theme.palette: %w", err)
	}
	if _, err := ui.ParseTheme(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if _, err := figure.ParseSize(c.Output.Size); err != nil {
		return fmt.Errorf("output.size: %w", err)
	}
	if _, err := figure.ParseDPI(c.Output.DPI); err != nil {
		return fmt.Errorf("output.dpi: %w", err)
	}
	if !logLevels.Has(c.Log.Level) {
		return fmt.Errorf("log.level: %w", lookup.NewUnknownKeyError("log level", c.Log.Level, logLevels.Keys()))
	}
	if !logFormats.Has(c.Log.Format) {
		return fmt.Errorf("log.format: %w", lookup.NewUnknownKeyError("log format", c.Log.Format, logFormats.Keys()))
	}
	if c.Log.MaxSizeMB <= 0 || c.Log.MaxBackups <= 0 {
		return fmt.Errorf("%w: got max_size_mb=%d max_backups=%d", ErrInvalidLogRotation, c.Log.MaxSizeMB, c.Log.MaxBackups)
	}
	return nil
}

var logLevels = lookup.NewTable("log level",
	lookup.Entry[struct{}]{Key: "debug"},
	lookup.Entry[struct{}]{Key: "info"},
	lookup.Entry[struct{}]{Key: "warn"},
	lookup.Entry[struct{}]{Key: "error"},
)

var logFormats = lookup.NewTable("log format",
	lookup.Entry[struct{}]{Key: string(logging.FormatText)},
	lookup.Entry[struct{}]{Key: string(logging.FormatJSON)},
)

// ChartTheme builds the chart theme with the configured series palette
func (c *Config) ChartTheme() (theme.Config, error) {
	cfg, err := theme.New(c.Theme.FontSize, c.Theme.LineWidth, theme.BackgroundFor(c.Theme.Web))
	if err != nil {
		return theme.Config{}, fmt.Errorf("theme: %w", err)
	}
	if c.Theme.Palette != "" {
		cfg = cfg.WithCycle(palette.Name(c.Theme.Palette))
	}
	return cfg, nil
}

// LoggingConfig converts the log section for logging.Init
func (c *Config) LoggingConfig(stderr bool) logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Stderr:     stderr,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}

// FigureOptions returns the figure size and DPI options implied by the
// output section
func (c *Config) FigureOptions() ([]figure.Option, error) {
	size, err := figure.ParseSize(c.Output.Size)
	if err != nil {
		return nil, err
	}
	opts := []figure.Option{figure.WithSize(size)}
	dpi, err := figure.ParseDPI(c.Output.DPI)
	if err != nil {
		return nil, err
	}
	if dpi > 0 {
		opts = append(opts, figure.WithDPI(dpi))
	}
	return opts, nil
}

// GetConfigPath returns the per-user configuration file path
func GetConfigPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".config", "brookplot", "brookplot.yaml")
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("theme.font_size", defaults.Theme.FontSize)
	v.SetDefault("theme.line_width", defaults.Theme.LineWidth)
	v.SetDefault("theme.web", defaults.Theme.Web)
	v.SetDefault("theme.palette", defaults.Theme.Palette)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("bundle.dir", defaults.Bundle.Dir)
	v.SetDefault("fonts.dir", defaults.Fonts.Dir)
	v.SetDefault("output.size", defaults.Output.Size)
	v.SetDefault("output.dpi", defaults.Output.DPI)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
}

func expandPaths(cfg Config) Config {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	for _, p := range []*string{&cfg.Bundle.Dir, &cfg.Fonts.Dir, &cfg.Log.File} {
		if strings.HasPrefix(*p, "~") {
			*p = home + (*p)[1:]
		}
	}
	return cfg
}
