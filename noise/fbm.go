package noise

// Sampler yields a single-octave noise sample. Field implements it; tests
// and callers may substitute their own source.
type Sampler interface {
	Noise2D(x, y float64) float64
}

// Params holds configurable parameters for fractal noise generation.
// Callers set every field explicitly; nothing here has a default.
type Params struct {
	Octaves     int
	Amplitude   float64
	Frequency   float64
	Persistence float64
	Lacunarity  float64
}

// Fbm sums octaves of s at geometrically scaled coordinates and
// amplitudes. Amplitude and frequency update after each octave is
// accumulated. The result is a raw unbounded sum; octaves <= 0 yields 0.
func Fbm(s Sampler, x, y float64, octaves int, amplitude, frequency, persistence, lacunarity float64) float64 {
	var total float64
	for o := 0; o < octaves; o++ {
		total += s.Noise2D(x*frequency, y*frequency) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total
}

// FbmParams is Fbm with the settings bundled in a Params value.
func FbmParams(s Sampler, x, y float64, p Params) float64 {
	return Fbm(s, x, y, p.Octaves, p.Amplitude, p.Frequency, p.Persistence, p.Lacunarity)
}

// FractalNorm sums octaves like Fbm and remaps the total from the octave
// amplitude budget to [0, 1]. Zero octaves (or a zero budget) yields 0.
func FractalNorm(s Sampler, x, y float64, p Params) float64 {
	var total, maxAmp float64
	amp := p.Amplitude
	freq := p.Frequency

	for o := 0; o < p.Octaves; o++ {
		total += s.Noise2D(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= p.Lacunarity
		amp *= p.Persistence
	}

	if maxAmp == 0 {
		return 0
	}
	// Normalize from [-1,1] to [0,1]
	return (total/maxAmp + 1.0) / 2.0
}

// Fbm samples multi-octave noise from this field. See the package-level Fbm.
func (f *Field) Fbm(x, y float64, octaves int, amplitude, frequency, persistence, lacunarity float64) float64 {
	return Fbm(f, x, y, octaves, amplitude, frequency, persistence, lacunarity)
}

// Fractal samples multi-octave noise from this field normalized to [0, 1].
func (f *Field) Fractal(x, y float64, p Params) float64 {
	return FractalNorm(f, x, y, p)
}
