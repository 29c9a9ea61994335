package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/figure"
	"github.com/renato0307/brookplot/internal/palette"
	"github.com/renato0307/brookplot/internal/preview"
)

func (a *app) viewCmd() *cobra.Command {
	var (
		output  string
		format  string
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   "view NAME",
		Short: "Preview a palette as a swatch grid",
		Long: `Preview a palette. Without -o the swatches are printed to the
terminal; with -o a two-row grid image labeled with each color's
position and hex code is written.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePalettes,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			name := args[0]
			if output == "" {
				strip, err := preview.Terminal(name, reverse)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strip)
				return nil
			}

			if _, err := palette.Lookup(name, reverse); err != nil {
				return err
			}
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			family, err := a.fonts()
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() {
				if cerr := out.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("failed to close %s: %w", output, cerr)
				}
			}()

			opts := preview.Options{Reverse: reverse, SVG: f == figure.FormatSVG, Fonts: family}
			if err := preview.Render(out, name, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "image file to write")
	cmd.Flags().StringVar(&format, "format", "", "png or svg (default from the file extension)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "reverse the color order")
	return cmd
}

// resolveFormat prefers an explicit format over the file extension
func resolveFormat(format, path string) (figure.Format, error) {
	if format != "" {
		return figure.ParseFormat(format)
	}
	return figure.FormatForPath(path)
}

func completePalettes(_ *cobra.Command, args []string, prefix string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, n := range palette.Names() {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
