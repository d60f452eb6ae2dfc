package pg_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/projgeom/pg"
)

//----------------------------------------------------------------------------//
// Constructors
//----------------------------------------------------------------------------//

// TestConstructorsRejectZeroTriple verifies that the all-zero triple is not
// a constructible object.
func TestConstructorsRejectZeroTriple(t *testing.T) {
	if _, err := pg.NewPoint[int64](0, 0, 0); !errors.Is(err, pg.ErrZeroVector) {
		t.Errorf("NewPoint(0,0,0) error = %v; want ErrZeroVector", err)
	}
	if _, err := pg.NewLine[int64](0, 0, 0); !errors.Is(err, pg.ErrZeroVector) {
		t.Errorf("NewLine(0,0,0) error = %v; want ErrZeroVector", err)
	}
	if _, err := pg.NewPoint[int64](0, -3, 0); err != nil {
		t.Errorf("NewPoint(0,-3,0) error = %v; want nil", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustPoint(0,0,0) did not panic")
		} else if err, ok := r.(error); !ok || !errors.Is(err, pg.ErrZeroVector) {
			t.Errorf("MustPoint panic value = %v; want ErrZeroVector", r)
		}
	}()
	pg.MustPoint[int64](0, 0, 0)
}

//----------------------------------------------------------------------------//
// Projective equality
//----------------------------------------------------------------------------//

// TestProjectiveEquality verifies homogeneity: scaling by any nonzero
// scalar names the same object.
func TestProjectiveEquality(t *testing.T) {
	cases := []struct {
		name string
		a, b pg.Point[int64]
		want bool
	}{
		{"PositiveScale", pt(1, 2, 1), pt(3, 6, 3), true},
		{"NegativeScale", pt(1, -1, 1), pt(-2, 2, -2), true},
		{"Identity", pt(1, 2, 1), pt(1, 2, 1), true},
		{"Distinct", pt(1, 2, 1), pt(1, 2, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("%v.Equal(%v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Equal is not symmetric for %v, %v", tc.a, tc.b)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Incidence and meet
//----------------------------------------------------------------------------//

// TestIncident pins the basic incidence scenarios for both duality
// directions.
func TestIncident(t *testing.T) {
	l := ln(1, 1, 0)
	if pt(1, 1, 1).Incident(l) {
		t.Error("(1:1:1) must not lie on [1:1:0]")
	}
	if !pt(1, -1, 1).Incident(l) {
		t.Error("(1:-1:1) must lie on [1:1:0]")
	}
	if got, want := l.Incident(pt(1, -1, 1)), pt(1, -1, 1).Incident(l); got != want {
		t.Error("incidence is not symmetric under duality")
	}
}

// TestMeet verifies joins of points, meets of lines, commutativity, and
// incidence closure.
func TestMeet(t *testing.T) {
	t.Run("JoinOfPoints", func(t *testing.T) {
		if got := pt(1, 0, 0).Meet(pt(0, 1, 0)); !got.Equal(ln(0, 0, 1)) {
			t.Errorf("join of axes points = %v; want [0:0:1]", got)
		}
		// (1:2:1) join (3:4:1) is [-2:2:-2], a multiple of [1:-1:1].
		if got := pt(1, 2, 1).Meet(pt(3, 4, 1)); !got.Equal(ln(1, -1, 1)) {
			t.Errorf("join = %v; want a multiple of [1:-1:1]", got)
		}
	})
	t.Run("MeetOfLines", func(t *testing.T) {
		if got := ln(1, 0, 0).Meet(ln(0, 1, 0)); !got.Equal(pt(0, 0, 1)) {
			t.Errorf("meet of axes = %v; want (0:0:1)", got)
		}
	})
	t.Run("Commutative", func(t *testing.T) {
		p, q := pt(1, 2, 3), pt(4, 5, 6)
		if !p.Meet(q).Equal(q.Meet(p)) {
			t.Error("point join is not commutative up to scale")
		}
		l, m := ln(1, 2, 3), ln(4, 5, 6)
		if !l.Meet(m).Equal(m.Meet(l)) {
			t.Error("line meet is not commutative up to scale")
		}
	})
	t.Run("IncidenceClosure", func(t *testing.T) {
		p, q := pt(1, 2, 1), pt(3, 4, 1)
		l := p.Meet(q)
		if !l.Incident(p) || !l.Incident(q) {
			t.Errorf("join %v does not pass through both %v and %v", l, p, q)
		}
	})
}

//----------------------------------------------------------------------------//
// Parametrize
//----------------------------------------------------------------------------//

// TestParametrize verifies the pencil endpoints and a pinned interior
// element.
func TestParametrize(t *testing.T) {
	p, q := pt(1, 2, 1), pt(3, 4, 1)
	if got := p.Parametrize(1, q, 0); !got.Equal(p) {
		t.Errorf("Parametrize(1, q, 0) = %v; want %v", got, p)
	}
	if got := p.Parametrize(0, q, 1); !got.Equal(q) {
		t.Errorf("Parametrize(0, q, 1) = %v; want %v", got, q)
	}
	if got := p.Parametrize(2, q, 1); !got.Equal(pt(5, 8, 3)) {
		t.Errorf("Parametrize(2, q, 1) = %v; want (5:8:3)", got)
	}

	l, m := ln(1, 0, 0), ln(0, 1, 0)
	if got := l.Parametrize(1, m, 0); !got.Equal(l) {
		t.Errorf("line Parametrize(1, m, 0) = %v; want %v", got, l)
	}
	if got := l.Parametrize(0, m, 1); !got.Equal(m) {
		t.Errorf("line Parametrize(0, m, 1) = %v; want %v", got, m)
	}
}

//----------------------------------------------------------------------------//
// Triangle duality
//----------------------------------------------------------------------------//

// TestTriangleDual pins the side triple and checks the dual-of-dual
// roundtrip.
func TestTriangleDual(t *testing.T) {
	tri := pg.Triangle[int64]{pt(1, 2, 1), pt(3, 1, 1), pt(2, 4, 1)}
	sides := tri.Dual()

	want := pg.Trilateral[int64]{ln(3, 1, -10), ln(2, -1, 0), ln(1, 2, -5)}
	for i := range sides {
		if !sides[i].Equal(want[i]) {
			t.Errorf("side %d = %v; want a multiple of %v", i, sides[i], want[i])
		}
		// Side i joins the two vertices other than vertex i.
		if !sides[i].Incident(tri[(i+1)%3]) || !sides[i].Incident(tri[(i+2)%3]) {
			t.Errorf("side %d does not pass through its two vertices", i)
		}
	}

	back := sides.Dual()
	for i := range back {
		if !back[i].Equal(tri[i]) {
			t.Errorf("Dual().Dual() vertex %d = %v; want %v", i, back[i], tri[i])
		}
	}
}
