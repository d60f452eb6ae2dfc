package ck

import "github.com/katalvlaran/projgeom/pg"

// Model is the capability set a Cayley–Klein geometry must provide. The
// four operations come in dual pairs: the point-side pair and the
// line-side pair with the roles swapped. Implementations are stateless
// values whose perpendicularity kernels are fixed per model.
type Model[T pg.Scalar] interface {
	// PointPerp reports whether p and l are perpendicular in the model
	// (the polar of p passes through the meet with l, in kernel form:
	// dot(K⊙p, l) == 0).
	PointPerp(p pg.Point[T], l pg.Line[T]) bool
	// LinePerp is the dual of PointPerp with the line-side kernel.
	LinePerp(l pg.Line[T], p pg.Point[T]) bool
	// LineThrough constructs the altitude through p relative to l: a line
	// through p perpendicular to l in the model's sense.
	LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T]
	// PointOn is the dual of LineThrough: the foot element on l relative
	// to p.
	PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T]
}

// Polarity is the pole/polar correspondence a model may additionally
// expose; Reflect requires it. All built-in models implement it.
type Polarity[T pg.Scalar] interface {
	// Pole maps a line to its pole point.
	Pole(l pg.Line[T]) pg.Point[T]
	// Polar maps a point to its polar line.
	Polar(p pg.Point[T]) pg.Line[T]
}

// Altitude returns the altitude through vertex relative to side, i.e.
// m.LineThrough(vertex, side).
func Altitude[T pg.Scalar](m Model[T], vertex pg.Point[T], side pg.Line[T]) pg.Line[T] {
	return m.LineThrough(vertex, side)
}

// TriAltitude returns the three altitudes of tri: altitude i passes
// through vertex i against opposite side i of tri.Dual(). Degenerate
// (collinear) triangles produce degenerate zero lines; non-degeneracy is
// a precondition, as with Triangle.Dual.
func TriAltitude[T pg.Scalar](m Model[T], tri pg.Triangle[T]) pg.Trilateral[T] {
	sides := tri.Dual()

	return pg.Trilateral[T]{
		Altitude(m, tri[0], sides[0]),
		Altitude(m, tri[1], sides[1]),
		Altitude(m, tri[2], sides[2]),
	}
}

// Orthocenter returns the common point of the three altitudes of tri.
// The altitudes of a non-degenerate triangle concur in every model, so
// meeting any two of them gives the same point.
func Orthocenter[T pg.Scalar](m Model[T], tri pg.Triangle[T]) pg.Point[T] {
	alt := TriAltitude(m, tri)

	return alt[1].Meet(alt[2])
}

// Reflect mirrors p across the line mirror: the harmonic involution with
// center Pole(mirror) and axis mirror. Applying it twice restores p.
// Returns ErrNoPolarity if the model does not implement Polarity.
// Precondition: the pole of mirror must not lie on mirror (true for every
// built-in model on valid input).
func Reflect[T pg.Scalar](m Model[T], mirror pg.Line[T], p pg.Point[T]) (pg.Point[T], error) {
	pol, ok := m.(Polarity[T])
	if !ok {
		return pg.Point[T]{}, ErrNoPolarity
	}

	return pg.Involution(pol.Pole(mirror), mirror, p), nil
}
