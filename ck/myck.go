package ck

import "github.com/katalvlaran/projgeom/pg"

// MyCK is a custom Cayley–Klein model with distinct kernels on the two
// sides of the duality: (-2, 1, -2) for points and (-1, 2, -1) for lines.
// It exists to demonstrate that the generic layer holds for asymmetric
// kernel pairs, not just the self-dual classical models.
type MyCK[T pg.Scalar] struct{}

func myckPointKernel[T pg.Scalar]() pg.Vec3[T] { return pg.Vec3[T]{-2, 1, -2} }

func myckLineKernel[T pg.Scalar]() pg.Vec3[T] { return pg.Vec3[T]{-1, 2, -1} }

// PointPerp reports dot(Kp⊙p, l) == 0.
func (MyCK[T]) PointPerp(p pg.Point[T], l pg.Line[T]) bool {
	return pg.Dot(pg.MulElem(myckPointKernel[T](), p.Coords()), l.Coords()) == 0
}

// LinePerp reports dot(Kl⊙l, p) == 0.
func (MyCK[T]) LinePerp(l pg.Line[T], p pg.Point[T]) bool {
	return pg.Dot(pg.MulElem(myckLineKernel[T](), l.Coords()), p.Coords()) == 0
}

// LineThrough returns the altitude cross(Kp⊙p, l).
func (MyCK[T]) LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T] {
	return pg.LineFrom(pg.Cross(pg.MulElem(myckPointKernel[T](), p.Coords()), l.Coords()))
}

// PointOn returns the dual construction cross(Kl⊙l, p).
func (MyCK[T]) PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T] {
	return pg.PointFrom(pg.Cross(pg.MulElem(myckLineKernel[T](), l.Coords()), p.Coords()))
}

// Pole returns the point Kl⊙l.
func (MyCK[T]) Pole(l pg.Line[T]) pg.Point[T] {
	return pg.PointFrom(pg.MulElem(myckLineKernel[T](), l.Coords()))
}

// Polar returns the line Kp⊙p.
func (MyCK[T]) Polar(p pg.Point[T]) pg.Line[T] {
	return pg.LineFrom(pg.MulElem(myckPointKernel[T](), p.Coords()))
}
