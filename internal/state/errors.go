package state

import "errors"

// --- Error Definitions ---
// A transition that returns one of these also returns its input snapshot
// unchanged.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrLogoTooLarge  = errors.New("logo exceeds the 2 MiB limit")
	ErrStaleAdvice   = errors.New("advice response superseded by a newer request")
	ErrNothingToUndo = errors.New("nothing to undo")
)
