package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/config"
	"github.com/renato0307/brookplot/internal/fonts"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/logo"
)

// app carries the loaded configuration to subcommands
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "brookplot",
		Short: "Brookings-style palettes and chart theming",
		Long: `brookplot lists and previews the Brookings color palettes, picks
readable text colors and renders themed charts with titles, footnotes
and logos.

Configuration:
  1. --config flag (explicit path)
  2. ./brookplot.yaml
  3. $HOME/.config/brookplot/brookplot.yaml

Every key can be overridden with a BROOKPLOT_ environment variable,
e.g. BROOKPLOT_THEME_WEB=true or BROOKPLOT_OUTPUT_DPI=print.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = logging.Shutdown() },
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./brookplot.yaml or $HOME/.config/brookplot/brookplot.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		a.palettesCmd(),
		a.viewCmd(),
		a.contrastCmd(),
		a.logosCmd(),
		a.browseCmd(),
		a.demoCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads and validates configuration and starts logging
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logging.Init(cfg.LoggingConfig(a.verbose)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	a.cfg = cfg
	logging.Debug("configuration loaded", "command", cmd.Name(), "theme", cfg.Theme.Palette)
	return nil
}

// fonts returns the configured font family, or the built-in one
func (a *app) fonts() (*fonts.Family, error) {
	if a.cfg.Fonts.Dir == "" {
		return fonts.Default()
	}
	return fonts.LoadDir(a.cfg.Fonts.Dir)
}

func (a *app) logos() logo.Resolver {
	return logo.Resolver{BundleDir: a.cfg.Bundle.Dir}
}
