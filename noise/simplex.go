package noise

import (
	"math"
	"sync"
	"sync/atomic"
)

// Field generates seedable 2D simplex noise. Each Field owns its
// permutation tables, so independent fields with different seeds can
// coexist. The zero value answers queries from a shared seed-0 table
// pair; use New or Seed for explicit seeding.
type Field struct {
	tables atomic.Pointer[tables]
}

// New creates a noise field seeded with the given seed.
func New(seed uint32) *Field {
	f := &Field{}
	f.Seed(seed)
	return f
}

// Seed rebuilds the permutation tables from seed, replacing any previous
// tables. The swap is a single atomic pointer store: concurrent readers
// observe either the old pair or the new one, never a mix.
func (f *Field) Seed(seed uint32) {
	f.tables.Store(buildTables(seed))
}

var (
	defaultTablesOnce sync.Once
	defaultTables     *tables
)

// current returns the live table pair, falling back to a lazily built
// seed-0 pair so an unseeded zero-value Field never crashes.
func (f *Field) current() *tables {
	if tb := f.tables.Load(); tb != nil {
		return tb
	}
	defaultTablesOnce.Do(func() { defaultTables = buildTables(0) })
	return defaultTables
}

const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// grad2 computes the dot product of a hashed gradient vector and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 0xF
	u, v := x, y
	if h >= 8 {
		u = y
	}
	if h >= 4 {
		v = 0
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise2D returns 2D simplex noise in the range [-1, 1], deterministic
// for a given seed. Output is exactly 0 wherever the sample lands on a
// simplex cell origin, which includes (0, 0) and the whole x+y == 0
// diagonal; other integer points are generally nonzero because the
// gradient lattice lives in skewed space.
func (f *Field) Noise2D(x, y float64) float64 {
	tb := f.current()

	// Skew input space to determine which simplex cell we're in
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Lower or upper triangle of the rhombic cell
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255

	// Contributions from the three corners. The 512-entry tables absorb
	// the +1 offsets without re-masking.
	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(tb.permMod12[ii+tb.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(tb.permMod12[ii+i1+tb.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(tb.permMod12[ii+1+tb.perm[jj+1]], x2, y2)
	}

	// Scale to [-1, 1]
	return 70.0 * (n0 + n1 + n2)
}
