package factor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/core/ports"
)

// NodeID is the unique identifier for the factorizer Graft node.
const NodeID graft.ID = "engine.factorizer"

func init() {
	graft.Register(graft.Node[ports.Factorizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Factorizer, error) {
			return NewTrialDivision(), nil
		},
	})
}
