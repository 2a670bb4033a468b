package sieve

import (
	"context"
	"encoding/binary"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a digest of the composite set that depends only on its contents.
func (s *CompositeSet) Fingerprint(ctx context.Context) uint64 {
	return digest(s.Composites(ctx))
}

func digest(set map[int64]bool) uint64 {
	keys := slices.Sorted(maps.Keys(set))

	hasher := xxhash.New()
	var buf [8]byte
	for _, k := range keys {
		if !set[k] {
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
		_, _ = hasher.Write(buf[:])
	}
	return hasher.Sum64()
}
