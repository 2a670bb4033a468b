package sieve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
)

// NodeID is the unique identifier for the composite set Graft node.
const NodeID graft.ID = "engine.sieve"

func init() {
	graft.Register(graft.Node[ports.PrimalityChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.PrimalityChecker, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, log, tracer), nil
		},
	})
}
