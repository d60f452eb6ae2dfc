package pg

import "fmt"

// Vector kernel: the four exact operations everything else is built from.
//
// All of them are pure and total on non-overflowing input. Overflow is a
// violated precondition of the chosen Scalar type and panics with a value
// wrapping ErrOverflow; wrapping around silently would corrupt every
// downstream equality and incidence test.

// Dot returns the exact inner product a·b of two triples.
//
//	Dot(Vec3[int64]{1, 2, 3}, Vec3[int64]{3, 4, 5}) == 26
func Dot[T Scalar](a, b Vec3[T]) T {
	return add(add(mul(a[0], b[0]), mul(a[1], b[1])), mul(a[2], b[2]))
}

// Dot1 is the 2-component inner product of the direction parts.
func Dot1[T Scalar](a, b Vec2[T]) T {
	return add(mul(a[0], b[0]), mul(a[1], b[1]))
}

// Cross2 is the 2-component cross product of the direction parts; zero
// exactly when the directions are parallel.
func Cross2[T Scalar](a, b Vec2[T]) T {
	return sub(mul(a[0], b[1]), mul(a[1], b[0]))
}

// Cross returns the 3-vector cross product a×b. The result is the zero
// triple exactly when a and b are scalar multiples of each other, which is
// what makes it both the join/meet operation and the projective equality
// test.
//
//	Cross(Vec3[int64]{1, 2, 3}, Vec3[int64]{3, 4, 5}) == Vec3[int64]{-2, 4, -2}
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		sub(mul(a[1], b[2]), mul(a[2], b[1])),
		sub(mul(a[2], b[0]), mul(a[0], b[2])),
		sub(mul(a[0], b[1]), mul(a[1], b[0])),
	}
}

// Plucker returns the componentwise combination ld·p + mu·q, the generic
// element of the pencil spanned by p and q.
func Plucker[T Scalar](ld T, p Vec3[T], mu T, q Vec3[T]) Vec3[T] {
	return Vec3[T]{
		add(mul(ld, p[0]), mul(mu, q[0])),
		add(mul(ld, p[1]), mul(mu, q[1])),
		add(mul(ld, p[2]), mul(mu, q[2])),
	}
}

// MulElem returns the componentwise (Hadamard) product a⊙b. The ck package
// uses it to apply per-model perpendicularity kernels.
func MulElem[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{mul(a[0], b[0]), mul(a[1], b[1]), mul(a[2], b[2])}
}

// add returns a+b, panicking with ErrOverflow on wraparound.
func add[T Scalar](a, b T) T {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(fmt.Errorf("pg: %v + %v wraps %T: %w", a, b, a, ErrOverflow))
	}

	return s
}

// sub returns a-b, panicking with ErrOverflow on wraparound.
func sub[T Scalar](a, b T) T {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		panic(fmt.Errorf("pg: %v - %v wraps %T: %w", a, b, a, ErrOverflow))
	}

	return d
}

// mul returns a*b, panicking with ErrOverflow on wraparound. The double
// division check also catches the minValue*-1 corner Go wraps silently.
func mul[T Scalar](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || p/a != b {
		panic(fmt.Errorf("pg: %v * %v wraps %T: %w", a, b, a, ErrOverflow))
	}

	return p
}
