// Package projgeom is an exact projective geometry kernel: points, lines
// and Cayley–Klein metric models over homogeneous integer coordinates,
// with no floating point anywhere.
//
// 🚀 What is projgeom?
//
//	A small, generic, overflow-checked library that brings together:
//		• Homogeneous primitives: points & lines as coordinate triples
//		• Duality: one generic implementation serves both kinds
//		• Incidence structure: meet, join, collinearity, concurrency
//		• Harmonic ranges: conjugates, involutions, reflections
//		• Classical theorems: Pappus & Desargues as runnable checks
//		• Metric layer: elliptic, hyperbolic & degenerate CK models
//		• Triangle centers: altitudes & orthocenters in every model
//
// ✨ Why choose projgeom?
//
//   - Exact – integer arithmetic only, overflow fails loudly
//   - Generic – one code path for points and lines, any signed scalar
//   - Model-agnostic – write a construction once, run it in five geometries
//   - Extensible – plug in your own perpendicularity kernel via ck.Model
//
// Everything is organized under two subpackages:
//
//	pg/ — homogeneous coordinate kernel, projective primitives & axioms
//	ck/ — Cayley–Klein models (elliptic, hyperbolic, euclid, persp, myck)
//
// Quick example:
//
//	p := pg.MustPoint[int64](1, 2, 1)
//	q := pg.MustPoint[int64](3, 4, 1)
//	l := p.Meet(q)                     // the line joining p and q
//	o := ck.Orthocenter(ck.Euclid[int64]{}, tri)
//
// ⚙️ Where to start?
//
// Construct points and lines with pg.NewPoint / pg.NewLine (or the Must
// variants for literals), combine them with Meet and Parametrize, and
// hand triangles to the ck layer for the metric constructions.
//
//	go get github.com/katalvlaran/projgeom
package projgeom
