package animal

import (
	"math"
	"math/rand"

	"github.com/netzer-git/Organizm/traits"
	"github.com/netzer-git/Organizm/world"
)

// Carnivore decision thresholds.
const (
	carnHuntBelow     = 50.0
	carnSleepBelow    = 70.0
	carnMateMinEnergy = 60.0
	carnMaturityLow   = 0.15
	carnMaturityHigh  = 0.75
	carnLitterDivisor = 40.0

	// HuntCooldown is the minimum time between hunt attempts.
	HuntCooldown = 10.0

	attackRange    = 1.0
	attackFailCost = 10.0
	preyEnergyCap  = 50.0
)

// Carnivore is the predator policy: hunt herbivores when hungry and off
// cooldown, sleep when tired, wander otherwise. Offspring traits use
// range mixing with multiplicative mutation, and litters run smaller than
// herbivore ones.
type Carnivore struct {
	mutationFactor float64
}

// NewCarnivore creates the carnivore policy with the given mutation factor.
func NewCarnivore(mutationFactor float64) *Carnivore {
	return &Carnivore{mutationFactor: mutationFactor}
}

// Species returns the carnivore tag.
func (c *Carnivore) Species() world.Species { return world.SpeciesCarnivore }

// DecideAction implements the idle policy.
func (c *Carnivore) DecideAction(a *Animal, env *world.Environment, rng *rand.Rand) {
	switch {
	case a.Energy() < carnHuntBelow && a.huntCooldown <= 0:
		c.hunt(a, env, rng)
	case a.Energy() < carnSleepBelow:
		a.Sleep(sleepDuration)
	default:
		a.Move(RandomDirection(rng))
	}
}

// hunt locates the nearest live herbivore in perception range, attacking it
// when within reach or closing the distance otherwise. The cooldown resets
// on every attempt, successful or not.
func (c *Carnivore) hunt(a *Animal, env *world.Environment, rng *rand.Rand) {
	a.huntCooldown = HuntCooldown

	prey := c.nearestPrey(a, env)
	if prey == nil {
		a.Move(RandomDirection(rng))
		return
	}

	if a.DistanceTo(prey) < attackRange {
		c.Attack(a, prey, rng)
		return
	}

	a.Move(DirectionTo(a.Position(), prey.Position()))
}

// nearestPrey scans the agent snapshot for the closest live herbivore.
func (c *Carnivore) nearestPrey(a *Animal, env *world.Environment) *Animal {
	var best *Animal
	bestDist := math.Inf(1)

	for _, ag := range env.AgentsNear(a.Position(), a.Traits().Perception, a) {
		if !ag.Alive() || ag.Species() != world.SpeciesHerbivore {
			continue
		}
		prey, ok := ag.(*Animal)
		if !ok {
			continue
		}
		if d := a.DistanceTo(prey); d < bestDist {
			bestDist = d
			best = prey
		}
	}
	return best
}

// Attack resolves one predation attempt. Attack power is strength with a
// random bonus; prey defense comes from its speed and remaining energy. A
// successful attack kills the prey instantly and feeds the predator up to
// half the prey's health, capped at 50; a failed one costs the predator 10
// energy and leaves the prey unharmed.
func (c *Carnivore) Attack(a, prey *Animal, rng *rand.Rand) bool {
	if prey == nil || !prey.Alive() {
		return false
	}

	attackPower := a.Traits().Strength * (1 + rng.Float64()*0.5)
	preyDefense := prey.Traits().Speed*0.5 + prey.Energy()*0.01

	if attackPower > preyDefense {
		a.Eat(math.Min(prey.Health()*0.5, preyEnergyCap))
		prey.Kill()
		return true
	}

	a.AddEnergy(-attackFailCost)
	return false
}

// CanMateWith requires the same species, energy ≥ 60 on both sides, and
// both ages inside the [0.15, 0.75]·lifespan maturity window.
func (c *Carnivore) CanMateWith(a, partner *Animal) bool {
	if a.Species() != world.SpeciesCarnivore || partner.Species() != world.SpeciesCarnivore {
		return false
	}
	if a.Energy() < carnMateMinEnergy || partner.Energy() < carnMateMinEnergy {
		return false
	}
	return inMaturityWindow(a, carnMaturityLow, carnMaturityHigh) &&
		inMaturityWindow(partner, carnMaturityLow, carnMaturityHigh)
}

// CreateOffspring builds the litter with range trait mixing, spawned within
// ±1 unit of the inviting parent.
func (c *Carnivore) CreateOffspring(a, partner *Animal, env *world.Environment, rng *rand.Rand) []*Animal {
	count := litterSize(a, partner, carnLitterDivisor)
	gen := offspringGeneration(a, partner)

	offspring := make([]*Animal, 0, count)
	for i := 0; i < count; i++ {
		tr := traits.Blend(a.Traits(), partner.Traits(), c.mutationFactor, traits.MixRange, rng)
		child := NewAnimal(c, offspringPosition(a, env, rng), tr, gen)
		child.SetEnergy(newbornEnergy)
		offspring = append(offspring, child)
	}
	return offspring
}
