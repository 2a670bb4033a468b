// Package config provides the configuration loader for sieve.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
	// Getenv looks up environment variables. Defaults to os.LookupEnv.
	Getenv func(key string) (string, bool)
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log, Getenv: os.LookupEnv}
}

// Load resolves the configuration for cwd. Defaults are overlaid with sieve.yaml,
// when present, and then with the PAR, SIEVE_BOUND and SIEVE_WORKERS variables.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, domain.ConfigFileName)
	file, err := readFile(path)
	if err != nil {
		return domain.Config{}, err
	}
	if file != nil {
		applyFile(&cfg, file)
	}

	if err := l.applyEnv(&cfg); err != nil {
		return domain.Config{}, err
	}

	if cfg.Workers < 1 {
		l.Logger.Warn("worker count must be positive, using the number of CPUs")
		cfg.Workers = domain.DefaultConfig().Workers
	}

	return cfg, nil
}

func readFile(path string) (*Sievefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Sievefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(
			errors.Join(domain.ErrInvalidConfig, zerr.Wrap(err, "failed to parse config file")),
			"path", path,
		)
	}
	return &file, nil
}

func applyFile(cfg *domain.Config, file *Sievefile) {
	if file.Bound != nil {
		cfg.Bound = *file.Bound
	}
	if file.Parallel != nil {
		cfg.Parallel = *file.Parallel
	}
	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}

	// Only the exact value "1" enables the parallel strategy; anything else disables it.
	if v, ok := getenv(domain.ParallelEnvVar); ok {
		cfg.Parallel = v == domain.ParallelEnvValue
	}

	if v, ok := getenv(domain.BoundEnvVar); ok {
		bound, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(domain.BoundEnvVar, v, err)
		}
		cfg.Bound = bound
	}

	if v, ok := getenv(domain.WorkersEnvVar); ok {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return envError(domain.WorkersEnvVar, v, err)
		}
		cfg.Workers = workers
	}

	return nil
}

func envError(key, value string, err error) error {
	return zerr.With(zerr.With(
		errors.Join(domain.ErrInvalidConfig, zerr.Wrap(err, "failed to parse environment override")),
		"variable", key),
		"value", value,
	)
}
