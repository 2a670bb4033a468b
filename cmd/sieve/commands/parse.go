package commands

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseNumber parses a base-10 signed 64-bit integer.
func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, zerr.With(errors.Join(domain.ErrInvalidNumber, err), "input", s)
	}
	return n, nil
}

// diagnostic renders a parse failure as "<reason>: <input>".
func diagnostic(err error, input string) string {
	reason := err
	for _, cause := range []error{strconv.ErrSyntax, strconv.ErrRange} {
		if errors.Is(err, cause) {
			reason = cause
			break
		}
	}
	return fmt.Sprintf("%v: %s", reason, input)
}

// valueFlags are the flags that consume the following argument as their value.
var valueFlags = []string{"--probe"}

// isNegativeNumeral reports whether s is a minus sign followed by decimal digits.
// Values outside the int64 range still qualify so they reach the diagnostic.
func isNegativeNumeral(s string) bool {
	digits, ok := strings.CutPrefix(s, "-")
	return ok && digits != "" && strings.Trim(digits, "0123456789") == ""
}

// separateNegativeNumbers inserts "--" before the first negative number so the
// flag parser treats it, and everything after it, as positional arguments.
func separateNegativeNumbers(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case slices.Contains(valueFlags, arg):
			i++
		case isNegativeNumeral(arg):
			return slices.Concat(args[:i], []string{"--"}, args[i:])
		}
	}
	return args
}
