// Package factor implements prime factorization by trial division.
package factor

import "go.trai.ch/sieve/internal/core/domain"

// TrialDivision factors integers by extracting the smallest divisor repeatedly.
// It holds no state and is safe for concurrent use.
type TrialDivision struct{}

// NewTrialDivision creates a new TrialDivision factorizer.
func NewTrialDivision() *TrialDivision {
	return &TrialDivision{}
}

// Factorize returns the prime factors of number in ascending order.
//
// Negative numbers get a leading -1. A residual below 2 is returned as its own
// factor, so 0 yields [0], 1 yields [1] and -1 yields [-1, 1].
func (TrialDivision) Factorize(number int64) domain.Factors {
	var factors domain.Factors

	// Work on the magnitude as uint64 so that MinInt64 does not overflow.
	residual := uint64(number)
	if number < 0 {
		factors = append(factors, -1)
		residual = -residual
	}

	if residual < 2 {
		return append(factors, int64(residual))
	}

	for candidate := uint64(2); residual >= candidate; {
		if residual%candidate == 0 {
			factors = append(factors, int64(candidate))
			residual /= candidate
		} else {
			candidate++
		}
	}

	return factors
}
