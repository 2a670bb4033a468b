package ports

import "go.trai.ch/sieve/internal/core/domain"

// Factorizer decomposes integers into prime factors.
//
//go:generate go run go.uber.org/mock/mockgen -source=factorizer.go -destination=mocks/mock_factorizer.go -package=mocks
type Factorizer interface {
	// Factorize returns the ordered factors of number. Their product equals number.
	Factorize(number int64) domain.Factors
}
