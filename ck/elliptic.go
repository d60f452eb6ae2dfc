package ck

import "github.com/katalvlaran/projgeom/pg"

// Elliptic is the Cayley–Klein model with the identity perpendicularity
// kernel: the polar of a point is the line with the same coordinates.
type Elliptic[T pg.Scalar] struct{}

// PointPerp reports dot(p, l) == 0.
func (Elliptic[T]) PointPerp(p pg.Point[T], l pg.Line[T]) bool {
	return pg.Dot(p.Coords(), l.Coords()) == 0
}

// LinePerp reports dot(l, p) == 0; identical to PointPerp by symmetry of
// the identity kernel.
func (Elliptic[T]) LinePerp(l pg.Line[T], p pg.Point[T]) bool {
	return pg.Dot(l.Coords(), p.Coords()) == 0
}

// LineThrough returns the altitude cross(p, l).
func (Elliptic[T]) LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T] {
	return pg.LineFrom(pg.Cross(p.Coords(), l.Coords()))
}

// PointOn returns the dual construction cross(l, p).
func (Elliptic[T]) PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T] {
	return pg.PointFrom(pg.Cross(l.Coords(), p.Coords()))
}

// Pole returns the point with l's coordinates.
func (Elliptic[T]) Pole(l pg.Line[T]) pg.Point[T] { return pg.PointFrom(l.Coords()) }

// Polar returns the line with p's coordinates.
func (Elliptic[T]) Polar(p pg.Point[T]) pg.Line[T] { return pg.LineFrom(p.Coords()) }
