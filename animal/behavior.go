package animal

import (
	"math/rand"

	"github.com/netzer-git/Organizm/world"
)

// Behavior is the species decision policy: what an idle animal does, who it
// may mate with, and how its offspring are built. Species form a closed set
// of variants behind this interface.
type Behavior interface {
	Species() world.Species

	// DecideAction runs the per-tick policy for an idle animal.
	DecideAction(a *Animal, env *world.Environment, rng *rand.Rand)

	// CanMateWith reports whether two animals are compatible partners.
	CanMateWith(a, partner *Animal) bool

	// CreateOffspring builds the litter for two mating animals.
	CreateOffspring(a, partner *Animal, env *world.Environment, rng *rand.Rand) []*Animal
}

// inMaturityWindow reports whether the animal's age lies inside the sexual
// maturity window, expressed as fractions of its lifespan.
func inMaturityWindow(a *Animal, low, high float64) bool {
	age := a.Age()
	lifespan := a.Traits().Lifespan
	return age >= low*lifespan && age <= high*lifespan
}

// litterSize computes offspring count from the parents' combined
// reproductive urge: max(1, floor(sum/divisor)).
func litterSize(a, partner *Animal, divisor float64) int {
	n := int((a.Traits().ReproductiveUrge + partner.Traits().ReproductiveUrge) / divisor)
	if n < 1 {
		return 1
	}
	return n
}

// offspringPosition places a child within ±1 unit of the inviting parent,
// clamped into world bounds.
func offspringPosition(parent *Animal, env *world.Environment, rng *rand.Rand) world.Position {
	p := parent.Position()
	return env.BoundPosition(world.Position{
		X: p.X + (2*rng.Float64() - 1),
		Y: p.Y + (2*rng.Float64() - 1),
	})
}

// offspringGeneration applies the generation law.
func offspringGeneration(a, partner *Animal) int {
	g := a.Generation()
	if partner.Generation() > g {
		g = partner.Generation()
	}
	return g + 1
}
