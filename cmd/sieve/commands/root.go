// Package commands implements the CLI commands for sieve.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sieve/internal/app"
	"go.trai.ch/sieve/internal/build"
)

// MissingNumberMessage is printed when the root command gets no number to factor.
const MissingNumberMessage = "Please specify the number to factor"

// defaultProbes are checked by the root command before factoring.
var defaultProbes = []int64{4, 17}

// CLI represents the command line interface for sieve.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "sieve [number]",
		Short: "Bounded composite sieve and trial-division factorizer",
		Long: `sieve reports whether the probe numbers are products of two integers below
the configured bound, then prints the prime factors of the given number.

The bound and strategy come from sieve.yaml and the PAR, SIEVE_BOUND and
SIEVE_WORKERS environment variables. PAR=1 selects the parallel strategy.
Only the first number is factored; further arguments are ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Int64Slice("probe", defaultProbes, "Numbers to check for primality before factoring")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newPrimeCmd())
	rootCmd.AddCommand(c.newFactorCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	probes, err := cmd.Flags().GetInt64Slice("probe")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, n := range probes {
		_, _ = fmt.Fprintf(out, "%t\n", c.app.IsPrime(cmd.Context(), n))
	}

	if len(args) == 0 {
		_, _ = fmt.Fprintln(out, MissingNumberMessage)
		return nil
	}

	n, err := parseNumber(args[0])
	if err != nil {
		_, _ = fmt.Fprintln(out, diagnostic(err, args[0]))
		return nil
	}

	_, _ = fmt.Fprintln(out, c.app.Factorize(cmd.Context(), n))
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
// Negative numbers are accepted without a preceding "--".
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(separateNegativeNumbers(args))
}

// SetOutput sets the writers for command output and errors.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
