// Package ports defines the core interfaces for the application.
package ports

import "context"

// PrimalityChecker answers primality queries.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type PrimalityChecker interface {
	// IsPrime reports whether n is not known to be composite.
	IsPrime(ctx context.Context, n int64) bool
}
