package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFactorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor <number>...",
		Short: "Print the prime factors of numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := parseNumber(arg)
				if err != nil {
					_, _ = fmt.Fprintln(out, diagnostic(err, arg))
					continue
				}
				_, _ = fmt.Fprintf(out, "%d: %s\n", n, c.app.Factorize(cmd.Context(), n))
			}
			return nil
		},
	}
}
