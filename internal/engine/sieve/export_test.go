package sieve

// Exported for white-box testing.
var (
	BuildSequential = buildSequential
	BuildParallel   = buildParallel
	Digest          = digest
)
