package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/annotate"
	"github.com/renato0307/brookplot/internal/figure"
	"github.com/renato0307/brookplot/internal/logging"
	"github.com/renato0307/brookplot/internal/logo"
	"github.com/renato0307/brookplot/internal/theme"
)

// Annual U.S. unemployment rates, percent
var (
	demoYears = []float64{2007, 2008, 2009, 2010, 2011, 2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023}
	demoU3    = []float64{4.6, 5.8, 9.3, 9.6, 8.9, 8.1, 7.4, 6.2, 5.3, 4.9, 4.4, 3.9, 3.7, 8.1, 5.3, 3.6, 3.6}
	demoU6    = []float64{8.3, 10.5, 16.2, 16.7, 15.9, 14.7, 13.8, 12.0, 10.4, 9.6, 8.5, 7.7, 7.2, 13.6, 9.4, 6.9, 6.9}
)

type demoOptions struct {
	output    string
	size      string
	dpi       string
	palette   string
	reverse   bool
	web       bool
	title     string
	subtitle  string
	tag       string
	source    string
	notes     []string
	logo      string
	logoScale float64
}

func (a *app) demoCmd() *cobra.Command {
	o := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample themed chart",
		Example: `  brookplot demo -o unemployment.png --title "Unemployment" \
    --subtitle "Percent of labor force" --tag "Figure 1" \
    --source "Bureau of Labor Statistics" --logo hc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.output == "" {
				return fmt.Errorf("an output file is required (-o)")
			}
			f, err := a.buildDemo(cmd, o)
			if err != nil {
				return err
			}
			if err := f.Save(o.output, 0); err != nil {
				return err
			}
			for _, w := range f.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.output)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&o.output, "output", "o", "", "PNG or SVG file to write")
	fl.StringVar(&o.size, "size", "", "figure size: small, medium or large (default from config)")
	fl.StringVar(&o.dpi, "dpi", "", "resolution: retina, print or screen (default from config)")
	fl.StringVar(&o.palette, "palette", "", "series palette (default from config)")
	fl.BoolVar(&o.reverse, "reverse", false, "reverse the series palette")
	fl.BoolVar(&o.web, "web", false, "use the web background")
	fl.StringVar(&o.title, "title", "", "chart title")
	fl.StringVar(&o.subtitle, "subtitle", "", "subtitle, usually the unit")
	fl.StringVar(&o.tag, "tag", "", "figure tag, e.g. \"Figure 1\"")
	fl.StringVar(&o.source, "source", "", "source footnote")
	fl.StringArrayVar(&o.notes, "note", nil, "footnote after a bold \"Note:\" label (repeatable)")
	fl.StringVar(&o.logo, "logo", "", "logo code or image path")
	fl.Float64Var(&o.logoScale, "logo-scale", logo.DefaultScale, "logo width as a fraction of the figure")
	return cmd
}

// buildDemo assembles the sample figure from config and flags
func (a *app) buildDemo(cmd *cobra.Command, o *demoOptions) (*figure.Figure, error) {
	cfg := *a.cfg
	if cmd.Flags().Changed("web") {
		cfg.Theme.Web = o.web
	}
	if o.size != "" {
		cfg.Output.Size = o.size
	}
	if o.dpi != "" {
		cfg.Output.DPI = o.dpi
	}

	th, err := cfg.ChartTheme()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.FigureOptions()
	if err != nil {
		return nil, err
	}
	family, err := a.fonts()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		figure.WithFonts(family),
		figure.WithLogoResolver(a.logos()),
		figure.WithLogger(logging.Get().Component("demo")),
	)

	f, err := figure.New(th, opts...)
	if err != nil {
		return nil, err
	}
	return f, populateDemo(f, th, o)
}

func populateDemo(f *figure.Figure, th theme.Config, o *demoOptions) error {
	name := o.palette
	if name == "" {
		name = string(th.Cycle)
	}
	if err := f.SetPalette(name, o.reverse); err != nil {
		return err
	}

	if err := f.AddLine("Unemployment (U-3)", demoYears, demoU3); err != nil {
		return err
	}
	if err := f.AddLine("Underemployment (U-6)", demoYears, demoU6); err != nil {
		return err
	}

	if o.title != "" || o.subtitle != "" || o.tag != "" {
		f.AddTitles(annotate.TitleOptions{Title: o.title, Subtitle: o.subtitle, Tag: o.tag})
	}
	if o.source != "" {
		f.AddSource(o.source)
	}
	for _, n := range o.notes {
		f.AddNote(n)
	}
	if o.logo != "" {
		if err := f.AddLogo(o.logo, 0, 0, o.logoScale); err != nil {
			return err
		}
	}
	return nil
}
