package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sieve/internal/ui/output"
	"go.trai.ch/sieve/internal/ui/style"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Build the composite set with both strategies and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Verify(cmd.Context())
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			line := fmt.Sprintf("%s sequential and parallel builds agree (bound=%d, workers=%d, entries=%d, digest=%016x)",
				style.Check, report.Bound, report.Workers, report.Entries, report.SequentialDigest)
			_, err = out.WriteString(output.Colorize(out, line, string(style.Green)) + "\n")
			return err
		},
	}
}
