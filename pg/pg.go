package pg

// Constructors and the primitive operations shared, via duality, by Point
// and Line. Every method below exists in both kinds with the roles
// swapped; the formulas are identical.

// NewPoint returns the point (x : y : z), or ErrZeroVector if the triple
// is all zeros.
func NewPoint[T Scalar](x, y, z T) (Point[T], error) {
	v := Vec3[T]{x, y, z}
	if v.IsZero() {
		return Point[T]{}, ErrZeroVector
	}

	return Point[T]{coord: v}, nil
}

// NewLine returns the line [a : b : c], or ErrZeroVector if the triple is
// all zeros.
func NewLine[T Scalar](a, b, c T) (Line[T], error) {
	v := Vec3[T]{a, b, c}
	if v.IsZero() {
		return Line[T]{}, ErrZeroVector
	}

	return Line[T]{coord: v}, nil
}

// MustPoint is NewPoint for literal coordinates; it panics on the zero
// triple.
func MustPoint[T Scalar](x, y, z T) Point[T] {
	p, err := NewPoint(x, y, z)
	if err != nil {
		panic(err)
	}

	return p
}

// MustLine is NewLine for literal coordinates; it panics on the zero
// triple.
func MustLine[T Scalar](a, b, c T) Line[T] {
	l, err := NewLine(a, b, c)
	if err != nil {
		panic(err)
	}

	return l
}

// PointFrom wraps a raw triple without validation. Constructing from the
// zero triple yields an invalid point; the precondition is the caller's.
// Intended for code that assembles coordinates it has already derived,
// such as the ck model constructions.
func PointFrom[T Scalar](v Vec3[T]) Point[T] { return Point[T]{coord: v} }

// LineFrom wraps a raw triple without validation; see PointFrom.
func LineFrom[T Scalar](v Vec3[T]) Line[T] { return Line[T]{coord: v} }

// Equal reports projective equality: p and q name the same point iff their
// triples are nonzero scalar multiples of each other, i.e. their cross
// product vanishes.
func (p Point[T]) Equal(q Point[T]) bool { return Cross(p.coord, q.coord).IsZero() }

// Equal reports projective equality of two lines.
func (l Line[T]) Equal(m Line[T]) bool { return Cross(l.coord, m.coord).IsZero() }

// Incident reports whether p lies on l.
func (p Point[T]) Incident(l Line[T]) bool { return Dot(p.coord, l.coord) == 0 }

// Incident reports whether l passes through p.
func (l Line[T]) Incident(p Point[T]) bool { return Dot(l.coord, p.coord) == 0 }

// Meet returns the line joining p and q. Commutative up to projective
// equality. If p and q coincide the result is the degenerate zero line;
// distinctness is a precondition.
func (p Point[T]) Meet(q Point[T]) Line[T] { return LineFrom(Cross(p.coord, q.coord)) }

// Meet returns the intersection point of l and m; the dual of the point
// version, same formula.
func (l Line[T]) Meet(m Line[T]) Point[T] { return PointFrom(Cross(l.coord, m.coord)) }

// Parametrize returns ld·p + mu·q, a point of the pencil spanned by p and
// q. Parametrize(1, q, 0) recovers p and Parametrize(0, q, 1) recovers q.
func (p Point[T]) Parametrize(ld T, q Point[T], mu T) Point[T] {
	return PointFrom(Plucker(ld, p.coord, mu, q.coord))
}

// Parametrize returns ld·l + mu·m on the pencil of lines spanned by l and m.
func (l Line[T]) Parametrize(ld T, m Line[T], mu T) Line[T] {
	return LineFrom(Plucker(ld, l.coord, mu, m.coord))
}

// triDual is the self-dual core of Triangle.Dual and Trilateral.Dual:
// element i of the result is the meet of the inputs opposite to i.
func triDual[T Scalar, P Dual[T, P, L], L any](tri [3]P) [3]L {
	return [3]L{
		tri[1].Meet(tri[2]),
		tri[2].Meet(tri[0]),
		tri[0].Meet(tri[1]),
	}
}

// Dual maps vertices to opposite sides: side i joins the two vertices
// other than vertex i. Collinear vertices yield degenerate zero lines;
// non-degeneracy is a precondition.
func (t Triangle[T]) Dual() Trilateral[T] {
	return triDual[T, Point[T], Line[T]](t)
}

// Dual maps sides to opposite vertices; Dual of Dual recovers the original
// triangle up to projective equality.
func (t Trilateral[T]) Dual() Triangle[T] {
	return triDual[T, Line[T], Point[T]](t)
}
