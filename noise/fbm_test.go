package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noisefield/rng"
)

// rngCoords returns n deterministic coordinate pairs for sweep tests.
func rngCoords(n int) [][2]float64 {
	g := rng.New(123)
	out := make([][2]float64, n)
	for i := range out {
		out[i] = [2]float64{g.RandomFloat(-500, 500), g.RandomFloat(-500, 500)}
	}
	return out
}

// unitSampler returns 1.0 for every coordinate, isolating the octave
// amplitude bookkeeping from the noise kernel.
type unitSampler struct{}

func (unitSampler) Noise2D(x, y float64) float64 { return 1.0 }

func TestFbmZeroOctaves(t *testing.T) {
	f := New(1337)
	assert.Zero(t, Fbm(f, 3.5, -2.25, 0, 1.0, 1.0, 0.5, 2.0))
	assert.Zero(t, Fbm(unitSampler{}, 0, 0, 0, 100.0, 3.0, 0.5, 2.0))
}

// TestFbmSingleOctave verifies one octave is exactly a scaled kernel call.
func TestFbmSingleOctave(t *testing.T) {
	f := New(1337)
	x, y := 3.7, -1.2
	amp, freq := 0.8, 2.5

	want := f.Noise2D(x*freq, y*freq) * amp
	assert.Equal(t, want, Fbm(f, x, y, 1, amp, freq, 0.5, 2.0))
}

// TestFbmAmplitudeBudget drives Fbm with a sampler that always returns
// 1.0: four octaves at persistence 0.5 must sum to exactly
// 1 + 0.5 + 0.25 + 0.125 = 1.875.
func TestFbmAmplitudeBudget(t *testing.T) {
	got := Fbm(unitSampler{}, 12.0, 34.0, 4, 1.0, 1.0, 0.5, 2.0)
	assert.Equal(t, 1.875, got)
}

func TestFbmDeterministic(t *testing.T) {
	f := New(42)
	first := f.Fbm(1.5, 2.5, 5, 1.0, 0.01, 0.5, 2.0)
	for k := 0; k < 10; k++ {
		assert.Equal(t, first, f.Fbm(1.5, 2.5, 5, 1.0, 0.01, 0.5, 2.0))
	}
}

// TestFbmKnownValue pins a multi-octave sample for seed 1337.
func TestFbmKnownValue(t *testing.T) {
	f := New(1337)
	got := f.Fbm(3.7, -1.2, 4, 1.0, 1.0, 0.5, 2.0)
	assert.InDelta(t, 0.5933770083330291, got, 1e-12)
}

func TestFbmParams(t *testing.T) {
	f := New(7)
	p := Params{Octaves: 3, Amplitude: 1.5, Frequency: 0.1, Persistence: 0.4, Lacunarity: 2.2}

	want := Fbm(f, 8.5, 9.5, p.Octaves, p.Amplitude, p.Frequency, p.Persistence, p.Lacunarity)
	assert.Equal(t, want, FbmParams(f, 8.5, 9.5, p))
}

// TestFractalNorm verifies the normalized compositor stays within [0, 1]
// and matches the raw sum remapped by the amplitude budget.
func TestFractalNorm(t *testing.T) {
	f := New(1337)
	p := Params{Octaves: 4, Amplitude: 1.0, Frequency: 0.02, Persistence: 0.5, Lacunarity: 2.0}
	const budget = 1.875

	g := rngCoords(500)
	for _, c := range g {
		v := FractalNorm(f, c[0], c[1], p)
		require.GreaterOrEqual(t, v, 0.0, "FractalNorm(%v, %v)", c[0], c[1])
		require.LessOrEqual(t, v, 1.0, "FractalNorm(%v, %v)", c[0], c[1])

		raw := FbmParams(f, c[0], c[1], p)
		assert.InDelta(t, (raw/budget+1.0)/2.0, v, 1e-12)
	}
}

func TestFractalNormZeroOctaves(t *testing.T) {
	f := New(1)
	p := Params{Octaves: 0, Amplitude: 1.0, Frequency: 1.0, Persistence: 0.5, Lacunarity: 2.0}
	assert.Zero(t, FractalNorm(f, 4.2, 4.2, p))
}
