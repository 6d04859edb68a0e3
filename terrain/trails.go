package terrain

import (
	"noisefield/noise"
	"noisefield/rng"
)

const (
	borderDepth   = 3
	fillThreshold = 15 // islands smaller than this get filled in
)

// Noise shaping the border zone boundary.
var edgeDetailParams = noise.Params{Octaves: 2, Amplitude: 1.0, Frequency: 0.08, Persistence: 0.5, Lacunarity: 2.0}

type point struct{ x, y int }

// applyEdges hardens the map boundary: the outermost ring is always
// impassable, and walkable tiles within borderDepth of it are converted
// along a noise-shaped line so the edge reads as forest, not a wall.
func (m *Map) applyEdges(ly *Layers) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fx, fy := float64(x), float64(y)

			if x == 0 || x == m.Width-1 || y == 0 || y == m.Height-1 {
				if ly.ElevationAt(fx, fy) >= m.Levels.Highland {
					m.Tiles[y][x] = Wall
				} else {
					m.Tiles[y][x] = Tree
				}
				continue
			}

			dist := min(x, y, m.Width-1-x, m.Height-1-y)
			if dist < borderDepth && m.Tiles[y][x].Walkable() {
				threshold := float64(borderDepth-dist) * 0.3
				shape := ly.Elevation.Fractal(fx*2, fy*2, edgeDetailParams)
				if shape < threshold {
					if ly.ElevationAt(fx, fy) >= m.Levels.Highland {
						m.Tiles[y][x] = Rock
					} else {
						m.Tiles[y][x] = Tree
					}
				}
			}
		}
	}
}

// trailStart searches outward from the center for a walkable tile where
// trail carving can begin.
func (m *Map) trailStart() (int, int) {
	cx, cy := m.Width/2, m.Height/2
	for r := 0; r < max(m.Width, m.Height)/2; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				nx, ny := cx+dx, cy+dy
				if nx > 0 && nx < m.Width-1 && ny > 0 && ny < m.Height-1 && m.IsWalkable(nx, ny) {
					return nx, ny
				}
			}
		}
	}
	return cx, cy
}

// carveTrails cuts 2-3 wandering trails from the start point to random
// edge targets.
func (m *Map) carveTrails(g *rng.SplitMix32, startX, startY int) {
	numTrails := 2 + g.RandomInt(0, 2)

	for i := 0; i < numTrails; i++ {
		var tx, ty int
		switch g.RandomInt(0, 4) {
		case 0: // North edge
			tx, ty = borderClamp(g.RandomInt(0, m.Width), m.Width), 1
		case 1: // South edge
			tx, ty = borderClamp(g.RandomInt(0, m.Width), m.Width), m.Height-2
		case 2: // East edge
			tx, ty = m.Width-2, borderClamp(g.RandomInt(0, m.Height), m.Height)
		case 3: // West edge
			tx, ty = 1, borderClamp(g.RandomInt(0, m.Height), m.Height)
		}
		m.carveTrail(g, startX, startY, tx, ty)
	}
}

func borderClamp(v, limit int) int {
	if v < 4 {
		return 4
	}
	if v >= limit-4 {
		return limit - 5
	}
	return v
}

// carveTrail walks from (sx, sy) toward (tx, ty) with random lateral
// drift, laying path over land, bridges over water, and scattering dirt
// alongside.
func (m *Map) carveTrail(g *rng.SplitMix32, sx, sy, tx, ty int) {
	x, y := sx, sy

	for steps := 0; steps < m.Width*m.Height; steps++ {
		if x == tx && y == ty {
			break
		}

		// Primary direction toward the target, biased to the longer axis
		dx, dy := 0, 0
		distX := tx - x
		distY := ty - y

		if abs(distX) > abs(distY) {
			dx = sign(distX)
			if g.Random() < 0.3 {
				dy = sign(distY)
				if dy == 0 {
					dy = g.RandomInt(0, 2)*2 - 1
				}
				dx = 0
			}
		} else {
			dy = sign(distY)
			if g.Random() < 0.3 {
				dx = sign(distX)
				if dx == 0 {
					dx = g.RandomInt(0, 2)*2 - 1
				}
				dy = 0
			}
		}

		nx, ny := x+dx, y+dy
		if nx < 1 || nx >= m.Width-1 || ny < 1 || ny >= m.Height-1 {
			continue
		}

		switch current := m.Tiles[ny][nx]; current {
		case Water, ShallowWater:
			m.Tiles[ny][nx] = Bridge
		case Path, Bridge:
			// already carved
		default:
			m.Tiles[ny][nx] = Path

			// Scatter dirt alongside on grass neighbors
			for _, off := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				ax, ay := nx+off[0], ny+off[1]
				if ax >= 1 && ax < m.Width-1 && ay >= 1 && ay < m.Height-1 {
					adj := m.Tiles[ay][ax]
					if (adj == Grass || adj == TallGrass) && g.Random() < 0.4 {
						m.Tiles[ay][ax] = Dirt
					}
				}
			}
		}

		x, y = nx, ny
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// flood marks every walkable tile reachable from (sx, sy) in region and
// returns how many new tiles it marked. Already-marked tiles act as
// part of the region, so re-flooding extends it in place.
func (m *Map) flood(sx, sy int, region [][]bool) int {
	if !m.IsWalkable(sx, sy) || region[sy][sx] {
		return 0
	}

	marked := 1
	region[sy][sx] = true
	stack := []point{{sx, sy}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := p.x+d[0], p.y+d[1]
			if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
				continue
			}
			if region[ny][nx] || !m.IsWalkable(nx, ny) {
				continue
			}
			region[ny][nx] = true
			marked++
			stack = append(stack, point{nx, ny})
		}
	}
	return marked
}

func newRegion(w, h int) [][]bool {
	r := make([][]bool, h)
	for y := range r {
		r[y] = make([]bool, w)
	}
	return r
}

// ensureConnectivity makes every walkable tile reachable from
// (spawnX, spawnY). Tiny isolated pockets are filled in with trees;
// larger islands get a carved corridor to the main region. Regions are
// tracked in grids and scanned row-major so results are deterministic
// per seed.
func (m *Map) ensureConnectivity(g *rng.SplitMix32, spawnX, spawnY int) {
	main := newRegion(m.Width, m.Height)
	m.flood(spawnX, spawnY, main)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if main[y][x] || !m.IsWalkable(x, y) {
				continue
			}

			island := newRegion(m.Width, m.Height)
			size := m.flood(x, y, island)

			if size < fillThreshold {
				// Fill tiny islands with trees, they'd just be confusing
				for iy := 0; iy < m.Height; iy++ {
					for ix := 0; ix < m.Width; ix++ {
						if island[iy][ix] {
							m.Tiles[iy][ix] = Tree
						}
					}
				}
				continue
			}

			m.carveConnection(g, main, island)
			// Re-flood from the island to absorb it and the new corridor
			// into the main region.
			m.flood(x, y, main)
		}
	}
}

// borderPoints collects region tiles adjacent to non-walkable tiles,
// in row-major order.
func (m *Map) borderPoints(region [][]bool) []point {
	var pts []point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !region[y][x] {
				continue
			}
			for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= 0 && nx < m.Width && ny >= 0 && ny < m.Height && !m.IsWalkable(nx, ny) {
					pts = append(pts, point{x, y})
					break
				}
			}
		}
	}
	return pts
}

// samplePoints caps pts at limit via a seeded partial shuffle.
func samplePoints(g *rng.SplitMix32, pts []point, limit int) []point {
	if len(pts) <= limit {
		return pts
	}
	for i := 0; i < limit; i++ {
		j := g.RandomInt(i, len(pts))
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts[:limit]
}

// carveConnection finds the closest pair of border points between the
// island and the main region and carves a walkable corridor between them.
func (m *Map) carveConnection(g *rng.SplitMix32, main, island [][]bool) {
	islandBorder := samplePoints(g, m.borderPoints(island), 200)
	mainBorder := samplePoints(g, m.borderPoints(main), 500)
	if len(islandBorder) == 0 || len(mainBorder) == 0 {
		return
	}

	bestDist := m.Width + m.Height + 1
	var bestIsland, bestMain point
	for _, ip := range islandBorder {
		for _, mp := range mainBorder {
			d := abs(ip.x-mp.x) + abs(ip.y-mp.y)
			if d < bestDist {
				bestDist = d
				bestIsland = ip
				bestMain = mp
			}
		}
	}

	// Carve a straight-ish corridor, preferring the longer axis
	x, y := bestIsland.x, bestIsland.y
	tx, ty := bestMain.x, bestMain.y

	for x != tx || y != ty {
		if abs(tx-x) >= abs(ty-y) {
			x += sign(tx - x)
		} else {
			y += sign(ty - y)
		}

		if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
			continue
		}

		switch current := m.Tiles[y][x]; {
		case current.Walkable():
		case current == Water || current == ShallowWater:
			m.Tiles[y][x] = Bridge
		default:
			m.Tiles[y][x] = Path
		}
	}
}
