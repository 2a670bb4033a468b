package sieve

import "iter"

// span returns the number of integers in [2, bound).
func span(bound int64) int64 {
	if bound <= 2 {
		return 0
	}
	return bound - 2
}

// pairCount returns the size of the Cartesian product [2, bound) x [2, bound).
func pairCount(bound int64) int64 {
	n := span(bound)
	return n * n
}

// pairAt maps a row-major index into the pair sequence back to its (a, b) pair.
func pairAt(bound, idx int64) (int64, int64) {
	n := span(bound)
	return 2 + idx/n, 2 + idx%n
}

// pairs yields every ordered pair (a, b) with a, b in [2, bound) in row-major order.
func pairs(bound int64) iter.Seq2[int64, int64] {
	return func(yield func(int64, int64) bool) {
		for a := int64(2); a < bound; a++ {
			for b := int64(2); b < bound; b++ {
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// partition is a half-open range [start, end) of the pair sequence.
type partition struct {
	start int64
	end   int64
}

// split divides total pair indices into at most workers contiguous partitions
// whose sizes differ by at most one.
func split(total int64, workers int) []partition {
	if total <= 0 {
		return nil
	}
	n := int64(max(workers, 1))
	n = min(n, total)

	parts := make([]partition, 0, n)
	size, rem := total/n, total%n
	var start int64
	for i := range n {
		end := start + size
		if i < rem {
			end++
		}
		parts = append(parts, partition{start: start, end: end})
		start = end
	}
	return parts
}
