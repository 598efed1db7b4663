package noise

// Params holds configurable parameters for fractal (octave-summed) noise.
type Params struct {
	Octaves     int
	Frequency   float64
	Amplitude   float64
	Persistence float64
	Lacunarity  float64
}

// DefaultParams returns parameters that produce natural-looking terrain.
func DefaultParams() Params {
	return Params{
		Octaves:     4,
		Frequency:   0.01,
		Amplitude:   1.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// FBM sums octaves of a base sampler with per-octave frequency and
// amplitude scaling (fractal Brownian motion).
type FBM struct {
	base   Sampler
	params Params
}

// NewFBM wraps a base sampler in an octave combinator.
func NewFBM(base Sampler, params Params) *FBM {
	if params.Octaves < 1 {
		params.Octaves = 1
	}
	return &FBM{base: base, params: params}
}

// Sample returns the octave-summed noise value, normalized so the
// result stays in roughly the base sampler's output range.
func (f *FBM) Sample(x, y float64) float64 {
	freq := f.params.Frequency
	amp := f.params.Amplitude
	var sum, norm float64
	for i := 0; i < f.params.Octaves; i++ {
		sum += f.base.Sample(x*freq, y*freq) * amp
		norm += amp
		freq *= f.params.Lacunarity
		amp *= f.params.Persistence
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
