package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/renato0307/brookplot/internal/logo"
)

func (a *app) logosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logos",
		Short: "List the logo codes and whether the bundle has them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver := a.logos()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tCENTER\tFILE")
			for _, code := range logo.Codes() {
				desc, _ := logo.Describe(code)
				status := resolver.Path(code)
				if _, err := resolver.Resolve(code); errors.Is(err, os.ErrNotExist) {
					status = "missing"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", code, desc, status)
			}
			return w.Flush()
		},
	}
}
