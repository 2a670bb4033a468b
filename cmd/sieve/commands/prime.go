package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <number>...",
		Short: "Report whether numbers are outside the composite set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := parseNumber(arg)
				if err != nil {
					_, _ = fmt.Fprintln(out, diagnostic(err, arg))
					continue
				}
				_, _ = fmt.Fprintf(out, "%d: %t\n", n, c.app.IsPrime(cmd.Context(), n))
			}
			return nil
		},
	}
}
