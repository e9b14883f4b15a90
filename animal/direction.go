package animal

import (
	"math"
	"math/rand"

	"github.com/netzer-git/Organizm/world"
)

// Direction is a 9-way compass facing (8 octants plus none).
type Direction uint8

const (
	DirNone Direction = iota
	DirEast
	DirNortheast
	DirNorth
	DirNorthwest
	DirWest
	DirSouthwest
	DirSouth
	DirSoutheast
)

const invSqrt2 = 0.7071067811865476

// directionVectors are unit vectors so speed is direction-independent.
var directionVectors = [...][2]float64{
	DirNone:      {0, 0},
	DirEast:      {1, 0},
	DirNortheast: {invSqrt2, invSqrt2},
	DirNorth:     {0, 1},
	DirNorthwest: {-invSqrt2, invSqrt2},
	DirWest:      {-1, 0},
	DirSouthwest: {-invSqrt2, -invSqrt2},
	DirSouth:     {0, -1},
	DirSoutheast: {invSqrt2, -invSqrt2},
}

var directionNames = [...]string{
	DirNone:      "none",
	DirEast:      "east",
	DirNortheast: "northeast",
	DirNorth:     "north",
	DirNorthwest: "northwest",
	DirWest:      "west",
	DirSouthwest: "southwest",
	DirSouth:     "south",
	DirSoutheast: "southeast",
}

// octantOrder maps an atan2 octant index (counter-clockwise from east) to
// its compass direction.
var octantOrder = [8]Direction{
	DirEast, DirNortheast, DirNorth, DirNorthwest,
	DirWest, DirSouthwest, DirSouth, DirSoutheast,
}

// Vector returns the unit displacement for this direction.
func (d Direction) Vector() (dx, dy float64) {
	v := directionVectors[d]
	return v[0], v[1]
}

// String returns the compass name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// RandomDirection picks one of the 8 compass directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return octantOrder[rng.Intn(8)]
}

// DirectionTo buckets the angle from one position toward another into 8
// compass octants of 45° width, with east centered on 0°. Identical
// positions yield DirNone.
func DirectionTo(from, to world.Position) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return DirNone
	}

	angle := math.Atan2(dy, dx)
	oct := int(math.Round(angle / (math.Pi / 4)))
	oct = ((oct % 8) + 8) % 8
	return octantOrder[oct]
}
