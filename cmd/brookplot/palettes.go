package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/export"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/preview"
)

func (a *app) palettesCmd() *cobra.Command {
	var (
		kind    string
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the palettes with terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps := palette.All()
			if kind != "" {
				k, err := palette.ParseKind(kind)
				if err != nil {
					return err
				}
				ps = palette.ByKind(k)
			}
			for _, p := range ps {
				strip, err := preview.Terminal(string(p.Name()), reverse)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strip)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "registry to list: core or extended (default both)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "show colors in reverse order")
	cmd.AddCommand(a.exportCmd())
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every palette to a YAML or XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return fmt.Errorf("an output file is required (-o)")
			}
			var f export.Format
			if format != "" {
				var err error
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
			}
			if err := export.Save(output, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "yaml or xlsx (default from the file extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
