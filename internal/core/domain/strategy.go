package domain

// Strategy names how a composite set is computed.
type Strategy string

const (
	// StrategySequential accumulates every pair product on the calling goroutine.
	StrategySequential Strategy = "sequential"
	// StrategyParallel partitions the pairs across workers and merges their partial sets.
	StrategyParallel Strategy = "parallel"
)

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}
