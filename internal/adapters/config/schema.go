package config

// Sievefile represents the structure of the sieve.yaml configuration file.
// Pointer fields distinguish an omitted key from a zero value.
type Sievefile struct {
	Version  string `yaml:"version"`
	Bound    *int64 `yaml:"bound"`
	Parallel *bool  `yaml:"parallel"`
	Workers  *int   `yaml:"workers"`
}
