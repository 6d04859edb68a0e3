package terrain

import (
	"fmt"

	"noisefield/noise"
	"noisefield/rng"
)

// Per-layer fractal settings.
var (
	elevationParams = noise.Params{Octaves: 4, Amplitude: 1.0, Frequency: 0.02, Persistence: 0.5, Lacunarity: 2.0}
	moistureParams  = noise.Params{Octaves: 3, Amplitude: 1.0, Frequency: 0.03, Persistence: 0.5, Lacunarity: 2.0}
	detailParams    = noise.Params{Octaves: 2, Amplitude: 1.0, Frequency: 0.1, Persistence: 0.5, Lacunarity: 2.0}
)

// Layers bundles the three independently seeded noise fields terrain is
// built from. Seeds are derived from the base seed so one integer
// reproduces the whole map.
type Layers struct {
	Elevation *noise.Field
	Moisture  *noise.Field
	Detail    *noise.Field
}

// NewLayers creates the three noise fields for the given base seed.
func NewLayers(seed uint32) *Layers {
	return &Layers{
		Elevation: noise.New(seed),
		Moisture:  noise.New(seed + 1),
		Detail:    noise.New(seed + 2),
	}
}

// ElevationAt samples the normalized [0, 1] elevation at a cell.
func (l *Layers) ElevationAt(x, y float64) float64 {
	return l.Elevation.Fractal(x, y, elevationParams)
}

// Config controls map generation.
type Config struct {
	Width  int
	Height int
	Seed   uint32
}

// Map is a generated terrain grid. Tiles is row-major: Tiles[y][x].
type Map struct {
	Width  int
	Height int
	Seed   uint32
	Tiles  [][]Tile
	Levels Levels
	SpawnX int
	SpawnY int
}

const minMapSize = 10

// Generate builds a terrain map from the config. Identical configs yield
// identical maps.
func Generate(cfg Config) (*Map, error) {
	if cfg.Width < minMapSize {
		return nil, fmt.Errorf("invalid width %d (minimum %d)", cfg.Width, minMapSize)
	}
	if cfg.Height < minMapSize {
		return nil, fmt.Errorf("invalid height %d (minimum %d)", cfg.Height, minMapSize)
	}

	ly := NewLayers(cfg.Seed)

	// First pass: normalized elevation over the whole grid feeds both the
	// level derivation and classification.
	elev := make([][]float64, cfg.Height)
	sample := make([]float64, 0, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		elev[y] = make([]float64, cfg.Width)
		for x := 0; x < cfg.Width; x++ {
			e := ly.ElevationAt(float64(x), float64(y))
			elev[y][x] = e
			sample = append(sample, e)
		}
	}

	lv, err := DeriveLevels(sample)
	if err != nil {
		return nil, fmt.Errorf("deriving levels: %w", err)
	}

	tiles := make([][]Tile, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		tiles[y] = make([]Tile, cfg.Width)
		for x := 0; x < cfg.Width; x++ {
			fx, fy := float64(x), float64(y)
			moist := ly.Moisture.Fractal(fx, fy, moistureParams)
			det := ly.Detail.Fractal(fx, fy, detailParams)
			tiles[y][x] = classify(elev[y][x], moist, det, lv)
		}
	}

	m := &Map{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		Tiles:  tiles,
		Levels: lv,
	}

	m.applyEdges(ly)

	// Trail carving and connectivity run on a derived stream so kernel
	// output and map decoration stay independently reproducible.
	g := rng.New(cfg.Seed + 100)
	sx, sy := m.trailStart()
	m.carveTrails(g, sx, sy)
	m.ensureConnectivity(g, sx, sy)

	m.SpawnX, m.SpawnY = m.findSpawn()
	return m, nil
}

// TileAt returns the tile at (x, y); out-of-bounds cells read as Wall.
func (m *Map) TileAt(x, y int) Tile {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Wall
	}
	return m.Tiles[y][x]
}

// IsWalkable reports whether (x, y) is inside the map and walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.TileAt(x, y).Walkable()
}

// findSpawn searches outward from the center for a grass or path tile
// whose 3x3 neighborhood is mostly walkable, falling back to any
// walkable tile.
func (m *Map) findSpawn() (int, int) {
	cx, cy := m.Width/2, m.Height/2

	maxR := max(m.Width, m.Height) / 2
	for r := 0; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx) != r && abs(dy) != r {
					continue // only check the ring perimeter
				}
				x, y := cx+dx, cy+dy
				if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
					continue
				}
				if m.Tiles[y][x] != Grass && m.Tiles[y][x] != Path {
					continue
				}
				// Check 3x3 neighborhood is mostly walkable
				walkCount := 0
				for ny := y - 1; ny <= y+1; ny++ {
					for nx := x - 1; nx <= x+1; nx++ {
						if m.IsWalkable(nx, ny) {
							walkCount++
						}
					}
				}
				if walkCount >= 7 {
					return x, y
				}
			}
		}
	}

	// Fallback: just find any walkable tile
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.IsWalkable(x, y) {
				return x, y
			}
		}
	}
	return cx, cy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
