package app

import (
	"context"

	"go.trai.ch/sieve/internal/core/domain"
)

// StubSet is a fixed composite set for exercising Verify.
type StubSet struct {
	Set    map[int64]bool
	Digest uint64
}

// Composites returns the fixed set.
func (s StubSet) Composites(_ context.Context) map[int64]bool { return s.Set }

// Fingerprint returns the fixed digest.
func (s StubSet) Fingerprint(_ context.Context) uint64 { return s.Digest }

// WithSetFactory replaces the constructor Verify uses for each strategy.
func (a *App) WithSetFactory(fn func(domain.Config) StubSet) *App {
	a.newSet = func(cfg domain.Config) compositeSet { return fn(cfg) }
	return a
}
