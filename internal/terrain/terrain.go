// Package terrain generates deterministic procedural heightmaps from
// seeded value noise with fractal Brownian motion, and renders them as
// ASCII art for the terrain demo.
package terrain

import "strings"

// Options control heightmap generation.
type Options struct {
	Width   int
	Height  int
	Seed    int64
	Scale   float64 // base noise frequency; larger is smoother
	Octaves int     // fBm octaves; each adds finer detail
}

// DefaultOptions are the demo's starting parameters.
func DefaultOptions() Options {
	return Options{
		Width:   64,
		Height:  24,
		Seed:    1,
		Scale:   16,
		Octaves: 4,
	}
}

// Heightmap is a row-major grid of heights in [0, 1).
type Heightmap struct {
	Width  int
	Height int
	Cells  []float64
}

// At returns the height at (x, y).
func (m *Heightmap) At(x, y int) float64 {
	return m.Cells[y*m.Width+x]
}

// Generate builds a heightmap. The same options always produce the same
// map.
func Generate(opts Options) *Heightmap {
	if opts.Width <= 0 || opts.Height <= 0 {
		return &Heightmap{}
	}
	if opts.Scale <= 0 {
		opts.Scale = 16
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}

	m := &Heightmap{
		Width:  opts.Width,
		Height: opts.Height,
		Cells:  make([]float64, opts.Width*opts.Height),
	}

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			m.Cells[y*opts.Width+x] = fbm(opts.Seed, float64(x)/opts.Scale, float64(y)/opts.Scale, opts.Octaves)
		}
	}
	return m
}

// fbm sums octaves of value noise, halving amplitude and doubling
// frequency per octave, normalized back to [0, 1).
func fbm(seed int64, x, y float64, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	total := 0.0
	for o := 0; o < octaves; o++ {
		sum += amplitude * valueNoise(seed+int64(o), x, y)
		total += amplitude
		amplitude /= 2
		x *= 2
		y *= 2
	}
	return sum / total
}

// valueNoise is lattice value noise: hashed corner values blended with
// a smoothstep.
func valueNoise(seed int64, x, y float64) float64 {
	x0, y0 := floor(x), floor(y)
	fx, fy := x-float64(x0), y-float64(y0)

	v00 := lattice(seed, x0, y0)
	v10 := lattice(seed, x0+1, y0)
	v01 := lattice(seed, x0, y0+1)
	v11 := lattice(seed, x0+1, y0+1)

	sx, sy := smooth(fx), smooth(fy)
	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	return lerp(top, bottom, sy)
}

// lattice hashes an integer lattice point to [0, 1). splitmix64-style
// mixing keeps neighboring points uncorrelated.
func lattice(seed int64, x, y int) float64 {
	h := uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ramp orders glyphs from low terrain to high.
const ramp = " .:-=+*#%@"

// RenderASCII renders the heightmap as one glyph per cell, rows joined
// by newlines.
func RenderASCII(m *Heightmap) string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			h := m.At(x, y)
			idx := int(h * float64(len(ramp)))
			if idx >= len(ramp) {
				idx = len(ramp) - 1
			}
			b.WriteByte(ramp[idx])
		}
		if y < m.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
