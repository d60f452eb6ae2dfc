package ck

import "github.com/katalvlaran/projgeom/pg"

// Euclid is the degenerate Cayley–Klein model of ordinary Euclidean
// geometry. Its perpendicularity structure collapses onto the line at
// infinity [0 : 0 : 1]: the polar of every finite point is that line, and
// the pole of a line [a : b : c] is the ideal point (a : b : 0) of its
// normal direction.
type Euclid[T pg.Scalar] struct{}

// LineAtInfinity returns the model's fixed line at infinity [0 : 0 : 1].
func (Euclid[T]) LineAtInfinity() pg.Line[T] { return pg.MustLine[T](0, 0, 1) }

// PointPerp reports whether l is the line at infinity, the only line
// "perpendicular" to a point in the degenerate Euclidean sense.
func (e Euclid[T]) PointPerp(_ pg.Point[T], l pg.Line[T]) bool {
	return l.Equal(e.LineAtInfinity())
}

// LinePerp reports whether p is an ideal point (third coordinate zero).
func (Euclid[T]) LinePerp(_ pg.Line[T], p pg.Point[T]) bool {
	return p.Coords()[2] == 0
}

// LineThrough returns the altitude through p relative to l: the join of p
// with the pole of l, i.e. the line through p in the direction of l's
// normal. The result passes through p and is line-pair perpendicular to
// l. Precondition: l is not the line at infinity.
func (e Euclid[T]) LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T] {
	return p.Meet(e.Pole(l))
}

// PointOn returns the dual construction: the meet of l with the polar of
// p, which is the ideal point of l's own direction. Precondition: p is a
// finite point.
func (e Euclid[T]) PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T] {
	return l.Meet(e.Polar(p))
}

// Pole returns the ideal point (a : b : 0) of the normal direction of
// l = [a : b : c]. Precondition: l is not the line at infinity, whose
// pole is undefined in the degenerate metric.
func (Euclid[T]) Pole(l pg.Line[T]) pg.Point[T] {
	c := l.Coords()

	return pg.PointFrom(pg.Vec3[T]{c[0], c[1], 0})
}

// Polar returns the line at infinity, the polar of every finite point.
func (e Euclid[T]) Polar(_ pg.Point[T]) pg.Line[T] { return e.LineAtInfinity() }

// IsParallel reports whether l and m have proportional direction
// components, i.e. meet at infinity.
func (Euclid[T]) IsParallel(l, m pg.Line[T]) bool {
	return pg.Cross2(l.Coords().XY(), m.Coords().XY()) == 0
}

// IsPerpendicular reports whether the direction components of l and m are
// orthogonal.
func (Euclid[T]) IsPerpendicular(l, m pg.Line[T]) bool {
	return pg.Dot1(l.Coords().XY(), m.Coords().XY()) == 0
}

// Midpoint returns the midpoint of p and q: the affine-weighted
// combination in which each point carries the other's homogeneous weight.
// On finite points it reduces to the ordinary arithmetic midpoint, e.g.
// Midpoint((0:0:1), (2:4:1)) equals (1:2:1).
func (Euclid[T]) Midpoint(p, q pg.Point[T]) pg.Point[T] {
	return p.Parametrize(q.Coords()[2], q, p.Coords()[2])
}
