// Package ck builds Cayley–Klein geometries on top of the pg projective
// primitives: a projective plane plus a model-specific notion of
// "perpendicular".
//
// 🚀 What is a Cayley–Klein plane?
//
//	Fix a perpendicularity rule and the projective plane turns into a
//	metric-flavored geometry. Five models ship with the package:
//	  • Elliptic    — the identity kernel
//	  • Hyperbolic  — kernel (1, 1, -1)
//	  • Euclid      — degenerate: perpendicular means "the line at infinity"
//	  • Persp       — degenerate: a designated line at infinity (0, -1, 1)
//	  • MyCK        — a custom pair of kernels (-2, 1, -2) / (-1, 2, -1)
//
// ✨ Genericity:
//
//	Altitude, TriAltitude, Orthocenter and Reflect are written once
//	against the Model capability set and behave identically across all
//	five models — the altitudes of any non-degenerate triangle concur in
//	every one of them. Each model is a stateless value; its
//	perpendicularity kernel is fixed configuration, never mutated.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/projgeom/ck"
//	    "github.com/katalvlaran/projgeom/pg"
//	)
//
//	tri := pg.Triangle[int64]{
//	    pg.MustPoint[int64](1, 2, 1),
//	    pg.MustPoint[int64](3, 1, 1),
//	    pg.MustPoint[int64](2, 4, 1),
//	}
//	o := ck.Orthocenter[int64](ck.Hyperbolic[int64]{}, tri)
//
// Euclid and Persp additionally expose the affine-style line-pair
// operations (IsParallel, IsPerpendicular) and Midpoint.
package ck
