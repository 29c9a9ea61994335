package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/colors"
)

func (a *app) contrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast HEX...",
		Short: "Pick black or white text for each background color",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BACKGROUND\tTEXT\tRATIO\tSAMPLE")
			for _, hex := range args {
				bg, err := colors.ParseHex(hex)
				if err != nil {
					return err
				}
				text := bg.TextColor()
				sample := lipgloss.NewStyle().
					Background(bg.Lipgloss()).
					Foreground(text.Lipgloss()).
					Render(" Aa ")
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", bg.RGBHex(), text.RGBHex(), colors.ContrastRatio(bg, text), sample)
			}
			return w.Flush()
		},
	}
}
