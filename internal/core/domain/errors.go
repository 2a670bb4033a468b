package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidNumber is returned when an argument cannot be parsed as a signed 64-bit integer.
	ErrInvalidNumber = zerr.New("invalid number")

	// ErrInvalidConfig is returned when the configuration file or an environment override is malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrStrategyMismatch is returned when the sequential and parallel builds disagree.
	ErrStrategyMismatch = zerr.New("sequential and parallel composite sets differ")
)
