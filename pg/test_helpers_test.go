package pg_test

import "github.com/katalvlaran/projgeom/pg"

// pt and ln build int64 objects tersely; every test in the package works
// over int64 unless it is exercising scalar genericity.
func pt(x, y, z int64) pg.Point[int64] { return pg.MustPoint(x, y, z) }

func ln(a, b, c int64) pg.Line[int64] { return pg.MustLine(a, b, c) }
