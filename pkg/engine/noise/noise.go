// Package noise implements seeded 2D gradient noise with a fractal
// (multi-octave) composition. Values are fully determined by the seed:
// the permutation table is built once with the LCG from pkg/engine/rng
// and is immutable afterwards, so a Table can be shared read-only.
package noise

import (
	"mapforge/pkg/engine/rng"
)

// grad3 holds the classic 12 gradient vectors. Only the x/y components
// are used for 2D sampling.
var grad3 = [12][3]float64{
	{1, 1, 0},
	{-1, 1, 0},
	{1, -1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{1, 0, -1},
	{-1, 0, -1},
	{0, 1, 1},
	{0, -1, 1},
	{0, 1, -1},
	{0, -1, -1},
}

// FBM defaults.
const (
	DefaultOctaves     = 4
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// Table is a seeded noise context. Each generation run owns its own
// Table; there is no shared mutable state between runs.
type Table struct {
	seed int64
	perm [512]int
}

// NewTable builds a permutation table from the seed: the identity
// permutation [0..255] shuffled by an LCG-driven Fisher-Yates pass,
// then doubled to 512 entries so lattice lookups never need a wrap check.
func NewTable(seed int64) *Table {
	t := &Table{seed: seed}

	var p [256]int
	for i := range p {
		p[i] = i
	}

	src := rng.New(seed)
	for i := 255; i > 0; i-- {
		j := src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	for i := 0; i < 512; i++ {
		t.perm[i] = p[i&255]
	}
	return t
}

// Seed returns the seed this table was built from.
func (t *Table) Seed() int64 {
	return t.seed
}

// Noise2D returns gradient noise at (x, y). Output is empirically in
// [-1, 1] for any input.
func (t *Table) Noise2D(x, y float64) float64 {
	// Lattice cell and fractional offset within it.
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)
	xw := xi & 255
	yw := yi & 255

	u := fade(xf)
	v := fade(yf)

	// Hash the four lattice corners into the gradient set.
	aa := t.perm[xw+t.perm[yw]] % 12
	ab := t.perm[xw+t.perm[yw+1]] % 12
	ba := t.perm[xw+1+t.perm[yw]] % 12
	bb := t.perm[xw+1+t.perm[yw+1]] % 12

	n00 := dot2(grad3[aa], xf, yf)
	n10 := dot2(grad3[ba], xf-1, yf)
	n01 := dot2(grad3[ab], xf, yf-1)
	n11 := dot2(grad3[bb], xf-1, yf-1)

	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// FBM sums octaves of Noise2D at geometrically increasing frequency and
// decreasing amplitude, normalized by the summed amplitude so the result
// stays in roughly [-1, 1] regardless of octave count.
func (t *Table) FBM(x, y float64, octaves int, lacunarity, persistence float64) float64 {
	if octaves <= 0 {
		panic("noise: FBM octave count must be positive")
	}

	var total, maxAmp float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < octaves; i++ {
		total += t.Noise2D(x*frequency, y*frequency) * amplitude
		maxAmp += amplitude
		frequency *= lacunarity
		amplitude *= persistence
	}
	return total / maxAmp
}

// fade is the quintic interpolation curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
