package main

import (
	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/browser"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/ui"
)

func (a *app) browseCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse palettes interactively and copy hex codes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			opts := browser.Options{Theme: ui.GetTheme(a.cfg.UI.Theme)}
			if kind != "" {
				k, err := palette.ParseKind(kind)
				if err != nil {
					return err
				}
				opts.Kind = k
			}
			return browser.Run(opts)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "start with one registry: core or extended")
	return cmd
}
