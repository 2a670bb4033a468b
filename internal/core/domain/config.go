package domain

import "runtime"

const (
	// DefaultBound is the sieve bound used when nothing else is configured.
	DefaultBound int64 = 10000

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "sieve.yaml"

	// ParallelEnvVar enables the parallel strategy when set to ParallelEnvValue.
	ParallelEnvVar = "PAR"
	// ParallelEnvValue is the only value of ParallelEnvVar recognized as true.
	ParallelEnvValue = "1"
	// BoundEnvVar overrides the configured bound.
	BoundEnvVar = "SIEVE_BOUND"
	// WorkersEnvVar overrides the configured worker count.
	WorkersEnvVar = "SIEVE_WORKERS"
	// LogFormatEnvVar switches the logger to JSON output when set to LogFormatJSON.
	LogFormatEnvVar = "SIEVE_LOG_FORMAT"
	// LogFormatJSON is the LogFormatEnvVar value that selects JSON logs.
	LogFormatJSON = "json"
)

// Config holds the settings for building a composite set.
type Config struct {
	// Bound is the exclusive upper limit for factor enumeration.
	Bound int64
	// Parallel selects the fan-out/merge strategy instead of the sequential one.
	Parallel bool
	// Workers is the number of partitions used by the parallel strategy.
	Workers int
}

// DefaultConfig returns the configuration used when no file or override is present.
func DefaultConfig() Config {
	return Config{
		Bound:    DefaultBound,
		Parallel: false,
		Workers:  runtime.NumCPU(),
	}
}

// Strategy returns the execution strategy selected by the configuration.
func (c Config) Strategy() Strategy {
	if c.Parallel {
		return StrategyParallel
	}
	return StrategySequential
}
