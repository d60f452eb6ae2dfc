// Package pg implements exact projective-plane geometry over homogeneous
// coordinates: points, lines, incidence, joins/meets, pencils, and the
// classical configuration theorems (harmonic conjugates, Pappus, Desargues).
//
// 🚀 What is pg?
//
//	A point or line of the projective plane is a coordinate triple
//	(x : y : z), unique only up to a nonzero scalar multiple. All of
//	geometry then reduces to three exact vector operations:
//	  • Dot     — incidence test (a point lies on a line iff dot == 0)
//	  • Cross   — join of two points / meet of two lines
//	  • Plucker — linear combination spanning a pencil
//
// ✨ Key properties:
//   - Exact arithmetic over any signed integer scalar (no floats, ever);
//     overflow panics with ErrOverflow instead of silently wrapping.
//   - Point/line duality: every operation and theorem is implemented once
//     and serves both kinds, with the roles swapped.
//   - Immutable value types — safe to share between goroutines without
//     coordination.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/projgeom/pg"
//
//	p, _ := pg.NewPoint[int64](1, 2, 1)
//	q, _ := pg.NewPoint[int64](3, 4, 1)
//	l := p.Meet(q)        // the line joining p and q
//	l.Incident(p)         // true
//
// The ck package builds Cayley–Klein geometries (elliptic, hyperbolic,
// Euclidean, ...) on top of these primitives.
package pg
