package xferwin

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of this module.
const Codespace = "xferwin"

var (
	// ErrDegenerateOrbit is returned when both bodies have (numerically) the same period,
	// so the phase angle never changes.
	ErrDegenerateOrbit = errorsmod.Register(Codespace, 2, "degenerate orbits")
	// ErrComputation is returned when a calculation yields a non-finite value.
	ErrComputation = errorsmod.Register(Codespace, 3, "computation failure")
	// ErrUnknownBody is returned when a body is not in the catalog.
	ErrUnknownBody = errorsmod.Register(Codespace, 4, "unknown body")
	// ErrInvalidConfig is returned when the configuration cannot be read.
	ErrInvalidConfig = errorsmod.Register(Codespace, 5, "invalid configuration")
)
