// Package pg core value types: coordinate triples, points, lines, and the
// ordered triangle/trilateral tuples consumed by the ck package.
package pg

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate type of every geometric object. Any signed
// machine integer qualifies; all arithmetic on it is overflow-checked
// (see ErrOverflow). Cross products and Plucker combinations roughly
// double the bit width of their inputs, so pick a type with headroom:
// int64 comfortably covers coordinate magnitudes up to ~2^20 through a
// full orthocenter construction.
type Scalar interface {
	constraints.Signed
}

// Vec3 is an immutable homogeneous coordinate triple.
type Vec3[T Scalar] [3]T

// Vec2 holds the two direction components of a triple, used by the
// affine-style parallelism and perpendicularity checks.
type Vec2[T Scalar] [2]T

// XY returns the first two components of v.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// IsZero reports whether every component of v is zero. The zero triple
// names no geometric object.
func (v Vec3[T]) IsZero() bool { return v == Vec3[T]{} }

// Point is a projective point. Two Points are equal iff their coordinate
// triples are nonzero scalar multiples of each other; compare with Equal,
// never with ==.
type Point[T Scalar] struct {
	coord Vec3[T]
}

// Line is a projective line. It is the exact dual of Point: same
// representation, same operations with the roles of the two kinds swapped.
type Line[T Scalar] struct {
	coord Vec3[T]
}

// Triangle is an ordered vertex triple. Order matters: vertex i pairs with
// opposite side i under Dual and the altitude constructions in ck.
type Triangle[T Scalar] [3]Point[T]

// Trilateral is the dual of Triangle: an ordered triple of lines.
type Trilateral[T Scalar] [3]Line[T]

// Coords returns the coordinate triple of p.
func (p Point[T]) Coords() Vec3[T] { return p.coord }

// Coords returns the coordinate triple of l.
func (l Line[T]) Coords() Vec3[T] { return l.coord }

// String renders p as (x : y : z).
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v : %v : %v)", p.coord[0], p.coord[1], p.coord[2])
}

// String renders l as [a : b : c].
func (l Line[T]) String() string {
	return fmt.Sprintf("[%v : %v : %v]", l.coord[0], l.coord[1], l.coord[2])
}
