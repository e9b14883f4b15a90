package animal

import (
	"math/rand"

	"github.com/netzer-git/Organizm/traits"
	"github.com/netzer-git/Organizm/world"
)

// Herbivore decision thresholds.
const (
	herbSeekFoodBelow = 40.0
	herbSleepBelow    = 70.0
	herbMateMinEnergy = 50.0
	herbMaturityLow   = 0.1
	herbMaturityHigh  = 0.8
	herbLitterDivisor = 30.0
)

// Herbivore is the grazing species policy: forage when hungry, sleep when
// tired, wander otherwise. Offspring traits use weighted-average mixing.
type Herbivore struct {
	mutationFactor float64
}

// NewHerbivore creates the herbivore policy with the given mutation factor.
func NewHerbivore(mutationFactor float64) *Herbivore {
	return &Herbivore{mutationFactor: mutationFactor}
}

// Species returns the herbivore tag.
func (h *Herbivore) Species() world.Species { return world.SpeciesHerbivore }

// DecideAction implements the idle policy.
func (h *Herbivore) DecideAction(a *Animal, env *world.Environment, rng *rand.Rand) {
	switch {
	case a.Energy() < herbSeekFoodBelow:
		h.seekFood(a, env, rng)
	case a.Energy() < herbSleepBelow:
		a.Sleep(sleepDuration)
	default:
		// Above 80 energy mate-seeking would go here; partners are found
		// by the simulation's interaction pass, so wander until then.
		a.Move(RandomDirection(rng))
	}
}

// seekFood heads for the nearest undepleted plant in perception range,
// eating once within reach. With no plant in sight the animal wanders.
func (h *Herbivore) seekFood(a *Animal, env *world.Environment, rng *rand.Rand) {
	ri, ok := env.NearestResource(a.Position(), a.Traits().Perception, world.ResourcePlant)
	if !ok {
		a.Move(RandomDirection(rng))
		return
	}

	if a.Position().DistanceTo(ri.Pos) < eatRange {
		got := env.ConsumeResource(ri, plantBite)
		if got > 0 {
			a.Eat(got * ri.Type.EnergyValue())
		}
		return
	}

	a.Move(DirectionTo(a.Position(), ri.Pos))
}

// CanMateWith requires the same species, energy ≥ 50 on both sides, and
// both ages inside the [0.1, 0.8]·lifespan maturity window.
func (h *Herbivore) CanMateWith(a, partner *Animal) bool {
	if a.Species() != world.SpeciesHerbivore || partner.Species() != world.SpeciesHerbivore {
		return false
	}
	if a.Energy() < herbMateMinEnergy || partner.Energy() < herbMateMinEnergy {
		return false
	}
	return inMaturityWindow(a, herbMaturityLow, herbMaturityHigh) &&
		inMaturityWindow(partner, herbMaturityLow, herbMaturityHigh)
}

// CreateOffspring builds the litter with weighted-average trait mixing,
// spawned within ±1 unit of the inviting parent.
func (h *Herbivore) CreateOffspring(a, partner *Animal, env *world.Environment, rng *rand.Rand) []*Animal {
	count := litterSize(a, partner, herbLitterDivisor)
	gen := offspringGeneration(a, partner)

	offspring := make([]*Animal, 0, count)
	for i := 0; i < count; i++ {
		tr := traits.Blend(a.Traits(), partner.Traits(), h.mutationFactor, traits.MixWeighted, rng)
		child := NewAnimal(h, offspringPosition(a, env, rng), tr, gen)
		child.SetEnergy(newbornEnergy)
		offspring = append(offspring, child)
	}
	return offspring
}
