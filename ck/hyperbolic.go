package ck

import "github.com/katalvlaran/projgeom/pg"

// Hyperbolic is the Cayley–Klein model with kernel (1, 1, -1) on both the
// point and the line side.
type Hyperbolic[T pg.Scalar] struct{}

// hypKernel is the fixed perpendicularity kernel of the model.
func hypKernel[T pg.Scalar]() pg.Vec3[T] { return pg.Vec3[T]{1, 1, -1} }

// PointPerp reports dot(K⊙p, l) == 0.
func (Hyperbolic[T]) PointPerp(p pg.Point[T], l pg.Line[T]) bool {
	return pg.Dot(pg.MulElem(hypKernel[T](), p.Coords()), l.Coords()) == 0
}

// LinePerp reports dot(K⊙l, p) == 0.
func (Hyperbolic[T]) LinePerp(l pg.Line[T], p pg.Point[T]) bool {
	return pg.Dot(pg.MulElem(hypKernel[T](), l.Coords()), p.Coords()) == 0
}

// LineThrough returns the altitude cross(K⊙p, l).
func (Hyperbolic[T]) LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T] {
	return pg.LineFrom(pg.Cross(pg.MulElem(hypKernel[T](), p.Coords()), l.Coords()))
}

// PointOn returns the dual construction cross(K⊙l, p).
func (Hyperbolic[T]) PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T] {
	return pg.PointFrom(pg.Cross(pg.MulElem(hypKernel[T](), l.Coords()), p.Coords()))
}

// Pole returns the point K⊙l.
func (Hyperbolic[T]) Pole(l pg.Line[T]) pg.Point[T] {
	return pg.PointFrom(pg.MulElem(hypKernel[T](), l.Coords()))
}

// Polar returns the line K⊙p.
func (Hyperbolic[T]) Polar(p pg.Point[T]) pg.Line[T] {
	return pg.LineFrom(pg.MulElem(hypKernel[T](), p.Coords()))
}
