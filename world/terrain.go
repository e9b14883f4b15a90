// Package world owns the bounded simulation environment: terrain, weather,
// resources, and the spatial queries agents use to sense their surroundings.
package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Position is a real-valued world coordinate.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to q.
func (p Position) DistanceTo(q Position) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TerrainType classifies one terrain grid cell.
type TerrainType uint8

const (
	TerrainGrass TerrainType = iota
	TerrainForest
	TerrainMountain
	TerrainWater
)

// String returns the terrain name.
func (t TerrainType) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainForest:
		return "forest"
	case TerrainMountain:
		return "mountain"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// Vegetated reports whether plants can grow on this terrain.
func (t TerrainType) Vegetated() bool {
	return t == TerrainGrass || t == TerrainForest
}

// generateTerrain builds a cols×rows terrain grid from normalized simplex
// noise. The bucket thresholds skew toward grassland so founder populations
// have room to spread.
func generateTerrain(cols, rows int, scale float64, seed int64) [][]TerrainType {
	noise := opensimplex.NewNormalized(seed)

	grid := make([][]TerrainType, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]TerrainType, cols)
		for x := 0; x < cols; x++ {
			v := noise.Eval2(float64(x)*scale, float64(y)*scale)
			switch {
			case v < 0.25:
				grid[y][x] = TerrainWater
			case v < 0.60:
				grid[y][x] = TerrainGrass
			case v < 0.85:
				grid[y][x] = TerrainForest
			default:
				grid[y][x] = TerrainMountain
			}
		}
	}
	return grid
}
