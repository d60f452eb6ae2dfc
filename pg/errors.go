// SPDX-License-Identifier: MIT
// Package pg: sentinel error set.
// Constructors return sentinels for invalid caller input; panics carry a
// wrapped sentinel and are reserved for violated arithmetic preconditions
// (overflow, degenerate configurations), where returning an error would
// poison every downstream expression.

package pg

import "errors"

var (
	// ErrZeroVector indicates an attempt to construct a Point or Line from
	// the all-zero coordinate triple, which names no geometric object.
	ErrZeroVector = errors.New("pg: zero coordinate triple is not a valid point or line")

	// ErrOverflow is wrapped by the panic raised when an exact arithmetic
	// step overflows the scalar type. Match with errors.Is on the recovered
	// value. Silent wraparound is never an option: every incidence and
	// equality test depends on exact zero comparisons.
	ErrOverflow = errors.New("pg: integer overflow in exact arithmetic")

	// ErrDegenerate is wrapped by the panic raised when a construction has
	// no defined result, e.g. the harmonic conjugate of a degenerate triple.
	ErrDegenerate = errors.New("pg: degenerate configuration")

	// ErrAxiom is wrapped by the errors CheckAxiom returns. A non-nil
	// CheckAxiom result signals a defect in the primitives themselves, not
	// a runtime condition callers should handle.
	ErrAxiom = errors.New("pg: projective axiom violated")
)
