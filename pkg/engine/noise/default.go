package noise

// Process-wide convenience table for callers that do not manage their
// own Table. Re-seeding replaces it wholesale; it is not safe to call
// Seed concurrently with queries from another goroutine. Generation
// runs that need isolation should use NewTable directly.
var defaultTable = NewTable(0)

// Seed rebuilds the default table from the given seed. Seeding with the
// value the table was already built from is a no-op, so repeated calls
// with the same seed never change future query results.
func Seed(seed int64) {
	if defaultTable != nil && defaultTable.seed == seed {
		return
	}
	defaultTable = NewTable(seed)
}

// Noise2D samples the default table.
func Noise2D(x, y float64) float64 {
	return defaultTable.Noise2D(x, y)
}

// FBM samples fractal noise from the default table with the standard
// parameters (4 octaves, lacunarity 2, persistence 0.5).
func FBM(x, y float64) float64 {
	return defaultTable.FBM(x, y, DefaultOctaves, DefaultLacunarity, DefaultPersistence)
}
