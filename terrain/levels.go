package terrain

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Levels are elevation cutoffs separating water, shore, plains, highlands
// and peaks, in normalized [0, 1] elevation space.
type Levels struct {
	Sea      float64 // below: deep water
	Shore    float64 // below: shallow water
	Beach    float64 // below: sand
	Lowland  float64 // below: plains (grass, flowers, tall grass)
	Highland float64 // below: wooded mid elevation
	Peak     float64 // below: rock; above: wall
}

// Percentiles of the elevation distribution assigned to each cutoff.
// Chosen to match the tile proportions the fixed thresholds used to give
// on an average seed, but stable across unlucky ones.
var levelPercentiles = Levels{
	Sea:      20,
	Shore:    28,
	Beach:    32,
	Lowland:  42,
	Highland: 70,
	Peak:     78,
}

// DeriveLevels fits elevation cutoffs to a sample of the elevation field,
// so classification keeps its tile mix across seeds. The sample must be
// non-empty.
func DeriveLevels(sample []float64) (Levels, error) {
	if len(sample) == 0 {
		return Levels{}, fmt.Errorf("empty elevation sample")
	}

	var lv Levels
	for _, c := range []struct {
		dst *float64
		pct float64
	}{
		{&lv.Sea, levelPercentiles.Sea},
		{&lv.Shore, levelPercentiles.Shore},
		{&lv.Beach, levelPercentiles.Beach},
		{&lv.Lowland, levelPercentiles.Lowland},
		{&lv.Highland, levelPercentiles.Highland},
		{&lv.Peak, levelPercentiles.Peak},
	} {
		v, err := stats.Percentile(sample, c.pct)
		if err != nil {
			return Levels{}, fmt.Errorf("percentile %.0f: %w", c.pct, err)
		}
		*c.dst = v
	}
	return lv, nil
}

// classify maps one cell's layer samples to a tile, following the
// elevation bands with moisture and detail breaking ties inside them.
func classify(elev, moist, det float64, lv Levels) Tile {
	switch {
	case elev < lv.Sea:
		return Water
	case elev < lv.Shore:
		return ShallowWater
	case elev < lv.Beach:
		return Sand
	case elev < lv.Lowland:
		// Low plains
		if moist > 0.6 {
			return Flowers
		}
		if moist > 0.45 {
			return TallGrass
		}
		return Grass
	case elev < lv.Highland:
		// Mid elevation
		if moist > 0.55 {
			return Tree
		}
		if moist > 0.35 {
			// Sparse mix using detail noise
			if det > 0.65 {
				return Tree
			}
			if det > 0.45 {
				return TallGrass
			}
			return Grass
		}
		return Grass
	case elev < lv.Peak:
		return Rock
	default:
		return Wall
	}
}
