// Package noise provides seeded 2D coherent-noise samplers used to
// synthesize terrain heights.
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a deterministic function from 2D coordinates to a scalar.
// Implementations must return the same value for the same coordinates
// across calls and across processes given the same seed.
type Sampler interface {
	Sample(x, y float64) float64
}

// Perlin wraps aquilax/go-perlin as a Sampler.
type Perlin struct {
	noise *perlin.Perlin
}

// NewPerlin creates a seeded Perlin sampler.
// Alpha=2, beta=2, n=3 give good terrain-like noise.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Sample returns a noise value in roughly [-1, 1].
func (p *Perlin) Sample(x, y float64) float64 {
	return p.noise.Noise2D(x, y)
}

// Simplex wraps ojrac/opensimplex-go as a Sampler.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a seeded OpenSimplex sampler.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Sample returns a noise value in roughly [-1, 1].
func (s *Simplex) Sample(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}
