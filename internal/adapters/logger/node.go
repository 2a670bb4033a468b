package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return newFromEnv(os.LookupEnv), nil
		},
	})
}

// newFromEnv creates a Logger on stderr, in JSON mode when the environment asks for it.
func newFromEnv(getenv func(string) (string, bool)) *Logger {
	l := NewWithWriter(os.Stderr)
	if v, ok := getenv(domain.LogFormatEnvVar); ok && v == domain.LogFormatJSON {
		l.SetJSON(true)
	}
	return l
}
