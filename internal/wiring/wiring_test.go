package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/sieve/internal/adapters/config"
	"go.trai.ch/sieve/internal/adapters/logger"
	"go.trai.ch/sieve/internal/adapters/telemetry"
	"go.trai.ch/sieve/internal/app"
	"go.trai.ch/sieve/internal/engine/factor"
	"go.trai.ch/sieve/internal/engine/sieve"
	_ "go.trai.ch/sieve/internal/wiring"
)

func TestWiring_RegistersEveryNode(t *testing.T) {
	registry := graft.Registry()

	for _, id := range []graft.ID{
		config.NodeID,
		config.ConfigNodeID,
		logger.NodeID,
		telemetry.TracerNodeID,
		sieve.NodeID,
		factor.NodeID,
		app.AppNodeID,
		app.ComponentsNodeID,
	} {
		assert.Contains(t, registry, id)
	}
}
