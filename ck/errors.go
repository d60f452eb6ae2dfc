package ck

import "errors"

var (
	// ErrNoPolarity is returned by Reflect when the model does not expose a
	// pole/polar map. All five built-in models implement Polarity; the
	// sentinel guards externally supplied models.
	ErrNoPolarity = errors.New("ck: model has no pole/polar map")
)
