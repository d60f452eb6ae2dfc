package ck

import "github.com/katalvlaran/projgeom/pg"

// Persp is a degenerate Cayley–Klein model with a skewed line at infinity
// [0 : -1 : 1]. Its pole map is built from two fixed base points I_re and
// I_im spanning the absolute: the pole of l is dot(I_re, l)·I_re +
// dot(I_im, l)·I_im.
type Persp[T pg.Scalar] struct{}

// LineAtInfinity returns the model's designated line at infinity
// [0 : -1 : 1].
func (Persp[T]) LineAtInfinity() pg.Line[T] { return pg.MustLine[T](0, -1, 1) }

func perspIRe[T pg.Scalar]() pg.Point[T] { return pg.MustPoint[T](0, 1, 1) }

func perspIIm[T pg.Scalar]() pg.Point[T] { return pg.MustPoint[T](1, 0, 0) }

// PointPerp reports whether l is the line at infinity.
func (pr Persp[T]) PointPerp(_ pg.Point[T], l pg.Line[T]) bool {
	return l.Equal(pr.LineAtInfinity())
}

// LinePerp reports whether p lies on the line at infinity.
func (pr Persp[T]) LinePerp(_ pg.Line[T], p pg.Point[T]) bool {
	return p.Incident(pr.LineAtInfinity())
}

// LineThrough returns the altitude through p relative to l: the join of p
// with the pole of l.
func (pr Persp[T]) LineThrough(p pg.Point[T], l pg.Line[T]) pg.Line[T] {
	return p.Meet(pr.Pole(l))
}

// PointOn returns the meet of l with the polar of p, the model's ideal
// point of l. Precondition: l is not the line at infinity.
func (pr Persp[T]) PointOn(l pg.Line[T], p pg.Point[T]) pg.Point[T] {
	return l.Meet(pr.Polar(p))
}

// Pole returns dot(I_re, l)·I_re + dot(I_im, l)·I_im.
func (Persp[T]) Pole(l pg.Line[T]) pg.Point[T] {
	re, im := perspIRe[T](), perspIIm[T]()

	return re.Parametrize(pg.Dot(re.Coords(), l.Coords()), im, pg.Dot(im.Coords(), l.Coords()))
}

// Polar returns the line at infinity, the polar of every point off it.
func (pr Persp[T]) Polar(_ pg.Point[T]) pg.Line[T] { return pr.LineAtInfinity() }

// IsParallel reports whether l and m meet on the line at infinity.
func (pr Persp[T]) IsParallel(l, m pg.Line[T]) bool {
	return pr.LineAtInfinity().Incident(l.Meet(m))
}

// IsPerpendicular reports whether either of l and m is the line at
// infinity.
func (pr Persp[T]) IsPerpendicular(l, m pg.Line[T]) bool {
	linf := pr.LineAtInfinity()

	return l.Equal(linf) || m.Equal(linf)
}

// Midpoint returns the combination in which each point carries the
// other's weight against the line at infinity; the result lies on
// join(p, q) between the two in the model's affine chart.
func (pr Persp[T]) Midpoint(p, q pg.Point[T]) pg.Point[T] {
	linf := pr.LineAtInfinity().Coords()

	return p.Parametrize(pg.Dot(linf, q.Coords()), q, pg.Dot(linf, p.Coords()))
}
