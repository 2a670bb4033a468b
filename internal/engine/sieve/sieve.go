// Package sieve implements a bounded composite set built from pair products.
//
// The set holds every product a*b with a, b in [2, bound). It is computed once,
// on the first query, either sequentially or by fanning the pair sequence out
// to a fixed number of workers and merging their private partial sets.
// Both strategies produce the same set.
//
// Primality answers are bounded: a number is reported prime when it is not a
// product of two integers below the bound, which includes 0, 1, negative
// numbers and composites whose factors are all at least the bound.
package sieve

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// CompositeSet is a lazily built, read-only set of composite integers.
type CompositeSet struct {
	cfg    domain.Config
	logger ports.Logger
	tracer ports.Tracer

	once  sync.Once
	cache map[int64]bool
}

// New creates an empty CompositeSet for the given configuration.
// Nothing is computed until the first query.
func New(cfg domain.Config, logger ports.Logger, tracer ports.Tracer) *CompositeSet {
	cfg.Workers = max(cfg.Workers, 1)
	return &CompositeSet{
		cfg:    cfg,
		logger: logger,
		tracer: tracer,
	}
}

// Bound returns the exclusive upper limit for factor enumeration.
func (s *CompositeSet) Bound() int64 {
	return s.cfg.Bound
}

// Strategy returns the strategy used to build the set.
func (s *CompositeSet) Strategy() domain.Strategy {
	return s.cfg.Strategy()
}

// Composites builds the set on first use and returns it.
// Every call returns the same map; callers must not modify it.
// The build runs to completion once started; ctx only carries the trace.
func (s *CompositeSet) Composites(ctx context.Context) map[int64]bool {
	s.once.Do(func() {
		s.cache = s.build(ctx)
	})
	return s.cache
}

// IsPrime reports whether n is absent from the composite set.
func (s *CompositeSet) IsPrime(ctx context.Context, n int64) bool {
	return !s.Composites(ctx)[n]
}

func (s *CompositeSet) build(ctx context.Context) map[int64]bool {
	bound, strategy := s.cfg.Bound, s.Strategy()
	_, span := s.tracer.Start(ctx, "sieve.build",
		ports.WithAttribute("sieve.bound", bound),
		ports.WithAttribute("sieve.strategy", strategy.String()),
	)
	defer span.End()

	s.logger.Info(fmt.Sprintf("building composite set (bound=%d, strategy=%s)", bound, strategy))

	var set map[int64]bool
	if strategy == domain.StrategyParallel {
		span.SetAttribute("sieve.workers", s.cfg.Workers)
		set = buildParallel(bound, s.cfg.Workers)
	} else {
		set = buildSequential(bound)
	}

	span.SetAttribute("sieve.entries", len(set))
	return set
}

func buildSequential(bound int64) map[int64]bool {
	set := make(map[int64]bool)
	for a, b := range pairs(bound) {
		set[a*b] = true
	}
	return set
}

func buildParallel(bound int64, workers int) map[int64]bool {
	parts := split(pairCount(bound), workers)
	partials := make([]map[int64]bool, len(parts))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range parts {
		g.Go(func() error {
			local := make(map[int64]bool)
			for idx := p.start; idx < p.end; idx++ {
				a, b := pairAt(bound, idx)
				local[a*b] = true
			}
			partials[i] = local
			return nil
		})
	}
	// Workers never fail; Wait is the join point.
	_ = g.Wait()

	return merge(partials)
}

// merge unions the partial sets. Every value is true, so overlapping keys are harmless.
func merge(partials []map[int64]bool) map[int64]bool {
	size := 0
	for _, p := range partials {
		size = max(size, len(p))
	}
	set := make(map[int64]bool, size)
	for _, p := range partials {
		maps.Copy(set, p)
	}
	return set
}
