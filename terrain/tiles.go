package terrain

// Tile identifies a terrain type in a generated map.
type Tile int

// Tiles of the wilderness legend.
const (
	Grass Tile = iota
	Water
	Tree
	Wall
	Flowers
	Sand
	TallGrass
	Rock
	ShallowWater
	Dirt
	Path
	Bridge

	numTiles
)

var tileNames = [numTiles]string{
	Grass:        "grass",
	Water:        "water",
	Tree:         "tree",
	Wall:         "wall",
	Flowers:      "flowers",
	Sand:         "sand",
	TallGrass:    "tall_grass",
	Rock:         "rock",
	ShallowWater: "shallow_water",
	Dirt:         "dirt",
	Path:         "path",
	Bridge:       "bridge",
}

// String returns the legend name of the tile.
func (t Tile) String() string {
	if t < 0 || t >= numTiles {
		return "unknown"
	}
	return tileNames[t]
}

// Walkable reports whether the tile can be stood on.
func (t Tile) Walkable() bool {
	switch t {
	case Grass, Flowers, Sand, TallGrass, ShallowWater, Dirt, Path, Bridge:
		return true
	}
	return false
}
