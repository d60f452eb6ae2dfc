package pg

import "fmt"

// Generic duality layer: predicates and constructions written once and
// instantiated for both sides of the point/line duality. Collinearity of
// points and concurrency of lines, for instance, are the same statement
// about dual objects, so Coincident serves both.

// Element constrains one side of the duality: P is Point[T] or Line[T].
// The structural term ties the scalar type to the element type so that T
// is inferred at call sites.
type Element[T Scalar, P any] interface {
	~struct{ coord Vec3[T] }
	Coords() Vec3[T]
	Equal(P) bool
	Parametrize(ld T, other P, mu T) P
}

// Dual extends Element with the operations that cross over to the dual
// kind D: the dual of Point[T] is Line[T] and vice versa.
type Dual[T Scalar, P, D any] interface {
	Element[T, P]
	Meet(P) D
	Incident(D) bool
}

// Coincident reports whether three points are collinear or, dually,
// whether three lines are concurrent: dot(cross(a, b), c) == 0.
func Coincident[T Scalar, P Element[T, P]](a, b, c P) bool {
	return Dot(Cross(a.Coords(), b.Coords()), c.Coords()) == 0
}

// HarmConj returns the harmonic conjugate of c with respect to a and b:
// the unique fourth element completing the harmonic range (a, b; c, ·).
//
// The construction drops an auxiliary line through c from the pole of
// join(a, b), which reduces to the closed-form weights
//
//	lc = (a×b)×c
//	ld = dot(lc, b),  mu = dot(lc, a)
//
// and the result ld·a + mu·b. It is involutive: HarmConj(a, b,
// HarmConj(a, b, c)) equals c projectively.
//
// Preconditions: a, b, c pairwise distinct and c on join(a, b). A triple
// for which both weights vanish (e.g. a and b coincide) has no defined
// conjugate; HarmConj panics with a value wrapping ErrDegenerate rather
// than fabricating an invalid element.
func HarmConj[T Scalar, P Element[T, P]](a, b, c P) P {
	lc := Cross(Cross(a.Coords(), b.Coords()), c.Coords())
	ld, mu := Dot(lc, b.Coords()), Dot(lc, a.Coords())
	if ld == 0 && mu == 0 {
		panic(fmt.Errorf("pg: harmonic conjugate of %v, %v, %v: %w", a, b, c, ErrDegenerate))
	}

	return a.Parametrize(ld, b, mu)
}

// IsHarmonic reports whether (a, b; c, d) form a harmonic range, i.e.
// whether d is the harmonic conjugate of c with respect to a and b.
// HarmConj's preconditions apply.
func IsHarmonic[T Scalar, P Element[T, P]](a, b, c, d P) bool {
	return HarmConj(a, b, c).Equal(d)
}

// Involution maps p to its image under the harmonic homology with center
// origin and axis mirror: the harmonic conjugate of p with respect to
// origin and the point where join(p, origin) crosses mirror. Applying it
// twice restores p. Precondition: origin not incident with mirror.
func Involution[T Scalar, P Dual[T, P, L], L Dual[T, L, P]](origin P, mirror L, p P) P {
	po := p.Meet(origin)
	b := po.Meet(mirror)

	return HarmConj(origin, b, p)
}

// CheckAxiom is a structural self-test of the primitives: meet must be
// commutative, incidence symmetric under duality, and the join of two
// elements incident with both, as must its meet with an arbitrary l.
// A non-nil result wraps ErrAxiom and signals a defect in this package,
// not a condition for callers to handle.
func CheckAxiom[T Scalar, P Dual[T, P, L], L Dual[T, L, P]](p, q P, l L) error {
	if p.Incident(l) != l.Incident(p) {
		return fmt.Errorf("incidence of %v and %v is not symmetric: %w", p, l, ErrAxiom)
	}
	m := p.Meet(q)
	if !m.Equal(q.Meet(p)) {
		return fmt.Errorf("meet of %v and %v is not commutative: %w", p, q, ErrAxiom)
	}
	if !m.Incident(p) || !m.Incident(q) {
		return fmt.Errorf("meet of %v and %v does not lie on both: %w", p, q, ErrAxiom)
	}
	x := m.Meet(l)
	if !x.Incident(m) || !x.Incident(l) {
		return fmt.Errorf("meet of %v and %v does not lie on both: %w", m, l, ErrAxiom)
	}

	return nil
}

// Perspective reports whether two triangles are perspective from a point:
// the three joins of corresponding vertices are concurrent. The dual type
// parameter is first so callers can name just it:
//
//	pg.Perspective[pg.Line[int64]](tri1, tri2)
func Perspective[L Dual[T, L, P], T Scalar, P Dual[T, P, L]](tri1, tri2 [3]P) bool {
	o := tri1[0].Meet(tri2[0]).Meet(tri1[1].Meet(tri2[1]))

	return tri1[2].Meet(tri2[2]).Incident(o)
}

// CheckPappus verifies Pappus's hexagon theorem for three collinear
// elements on each of two carriers: the cross joins of the hexagon meet
// in three coincident elements. Like Perspective, instantiate with the
// dual type: pg.CheckPappus[pg.Line[int64]](co1, co2).
func CheckPappus[L Dual[T, L, P], T Scalar, P Dual[T, P, L]](co1, co2 [3]P) bool {
	g := co1[0].Meet(co2[1]).Meet(co1[1].Meet(co2[0]))
	h := co1[0].Meet(co2[2]).Meet(co1[2].Meet(co2[0]))
	i := co1[1].Meet(co2[2]).Meet(co1[2].Meet(co2[1]))

	return Coincident(g, h, i)
}

// CheckDesargues verifies Desargues's theorem for a pair of triangles:
// they are perspective from a point exactly when their duals are
// perspective from a line. Instantiate with the dual type, as with
// Perspective.
func CheckDesargues[L Dual[T, L, P], T Scalar, P Dual[T, P, L]](tri1, tri2 [3]P) bool {
	dual1 := triDual[T, P, L](tri1)
	dual2 := triDual[T, P, L](tri2)

	return Perspective[L](tri1, tri2) == Perspective[P](dual1, dual2)
}
