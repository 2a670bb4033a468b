// Package app implements the application layer for sieve.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/sieve/internal/engine/sieve"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	config     domain.Config
	checker    ports.PrimalityChecker
	factorizer ports.Factorizer
	logger     ports.Logger
	tracer     ports.Tracer
	newSet     func(domain.Config) compositeSet
}

// compositeSet is the part of a sieve that Verify compares.
type compositeSet interface {
	Composites(ctx context.Context) map[int64]bool
	Fingerprint(ctx context.Context) uint64
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	checker ports.PrimalityChecker,
	factorizer ports.Factorizer,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		config:     cfg,
		checker:    checker,
		factorizer: factorizer,
		logger:     log,
		tracer:     tracer,
		newSet: func(cfg domain.Config) compositeSet {
			return sieve.New(cfg, log, tracer)
		},
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() domain.Config {
	return a.config
}

// IsPrime reports whether n is not a product of two integers below the configured bound.
// The first call builds the composite set.
func (a *App) IsPrime(ctx context.Context, n int64) bool {
	return a.checker.IsPrime(ctx, n)
}

// Factorize returns the prime factors of n.
func (a *App) Factorize(ctx context.Context, n int64) domain.Factors {
	_, span := a.tracer.Start(ctx, "factor.factorize", ports.WithAttribute("factor.number", n))
	defer span.End()

	factors := a.factorizer.Factorize(n)
	span.SetAttribute("factor.count", len(factors))
	return factors
}

// Verify builds the composite set for the configured bound with both strategies
// and compares their digests. It returns ErrStrategyMismatch when they differ.
func (a *App) Verify(ctx context.Context) (domain.VerifyReport, error) {
	ctx, span := a.tracer.Start(ctx, "app.verify", ports.WithAttribute("sieve.bound", a.config.Bound))
	defer span.End()

	seqCfg, parCfg := a.config, a.config
	seqCfg.Parallel = false
	parCfg.Parallel = true

	seq := a.newSet(seqCfg)
	par := a.newSet(parCfg)

	report := domain.VerifyReport{
		Bound:   a.config.Bound,
		Workers: a.config.Workers,
	}

	// The two builds share nothing, so they run side by side.
	var g errgroup.Group
	g.Go(func() error {
		report.SequentialDigest = seq.Fingerprint(ctx)
		report.Entries = len(seq.Composites(ctx))
		return nil
	})
	g.Go(func() error {
		report.ParallelDigest = par.Fingerprint(ctx)
		return nil
	})
	_ = g.Wait()

	span.SetAttribute("sieve.entries", report.Entries)
	span.SetAttribute("verify.consistent", report.Consistent())

	if !report.Consistent() {
		err := zerr.With(zerr.With(
			errors.Join(domain.ErrStrategyMismatch, zerr.New("composite sets differ")),
			"sequential_digest", fmt.Sprintf("%016x", report.SequentialDigest)),
			"parallel_digest", fmt.Sprintf("%016x", report.ParallelDigest),
		)
		span.RecordError(err)
		return report, err
	}

	a.logger.Info(fmt.Sprintf("strategies agree on %d composites below %d²", report.Entries, report.Bound))
	return report, nil
}
