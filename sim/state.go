package sim

import (
	"github.com/google/uuid"

	"github.com/netzer-git/Organizm/animal"
	"github.com/netzer-git/Organizm/world"
)

// Stats are the aggregate population statistics recomputed at every tick
// boundary.
type Stats struct {
	TotalAnimals      int
	HerbivoreCount    int
	CarnivoreCount    int
	PlantsCount       int
	AverageGeneration float64
	HighestGeneration int
}

// AnimalState is a read-only snapshot of one animal.
type AnimalState struct {
	ID         uuid.UUID
	Species    world.Species
	Position   world.Position
	State      animal.ActivityState
	Energy     float64
	Health     float64
	Age        float64
	Generation int
}

// State is a read-only snapshot of the whole simulation, safe to hand to
// renderers and loggers. Mutating it has no effect on the simulation.
type State struct {
	Time      float64
	Running   bool
	TimeScale float64
	Weather   world.Weather
	Animals   []AnimalState
	Resources []world.ResourceInfo
	Stats     Stats
}
