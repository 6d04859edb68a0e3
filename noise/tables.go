package noise

import "noisefield/rng"

// tables holds one generation of permutation state: a randomized
// permutation of 0..255 duplicated to 512 entries, plus its mod-12
// reduction for gradient selection. Both halves are built together from
// one seed and never mutated afterwards; Field swaps whole pairs.
type tables struct {
	perm      [512]int
	permMod12 [512]int
}

// buildTables constructs a table pair from seed. Identical seeds yield
// byte-identical tables on every platform because the shuffle consumes a
// SplitMix32 stream with wrapping 32-bit arithmetic.
func buildTables(seed uint32) *tables {
	g := rng.New(seed)

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Swap-from-tail shuffle. The reference generator stops at index 254,
	// leaving the final slot to whatever earlier swaps put there; keep
	// that boundary as-is, output compatibility beats textbook
	// Fisher-Yates here.
	for i := 0; i < 255; i++ {
		r := i + int(g.Random()*float64(256-i))
		p[i], p[r] = p[r], p[i]
	}

	tb := &tables{}
	for k := 0; k < 512; k++ {
		tb.perm[k] = p[k&255]
		tb.permMod12[k] = tb.perm[k] % 12
	}
	return tb
}
