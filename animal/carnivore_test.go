package animal

import (
	"math/rand"
	"testing"

	"github.com/netzer-git/Organizm/traits"
	"github.com/netzer-git/Organizm/world"
)

func carnTraits() traits.Traits {
	return traits.Traits{
		Speed:            12,
		Strength:         15,
		Perception:       30,
		Metabolism:       4,
		ReproductiveUrge: 15,
		Lifespan:         250,
	}
}

func newCarn(pos world.Position) *Animal {
	return NewAnimal(NewCarnivore(0.1), pos, carnTraits(), 1)
}

func TestAttackOverwhelmsWeakPrey(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	c := NewCarnivore(0.1)

	tr := carnTraits()
	tr.Strength = 100
	weak := herbTraits()
	weak.Speed = 1

	// Power is at least 100 against a defense of at most 1.5, so every
	// attempt lands regardless of the random bonus.
	for i := 0; i < 50; i++ {
		predator := NewAnimal(c, world.Position{X: 50, Y: 50}, tr, 1)
		predator.SetEnergy(10)
		prey := NewAnimal(NewHerbivore(0.1), world.Position{X: 50, Y: 50}, weak, 1)
		prey.SetEnergy(0)

		if !c.Attack(predator, prey, rng) {
			t.Fatal("attack on defenseless prey failed")
		}
		if prey.Alive() {
			t.Fatal("prey survived a successful attack")
		}
		if prey.DeathCause() != CausePredation {
			t.Fatalf("prey death cause = %v, want predation", prey.DeathCause())
		}
		if predator.Energy() <= 10 {
			t.Fatalf("predator energy = %v, want gain over 10", predator.Energy())
		}
	}
}

func TestAttackFailureCostsPredator(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	c := NewCarnivore(0.1)

	tr := carnTraits()
	tr.Strength = 0
	predator := NewAnimal(c, world.Position{X: 50, Y: 50}, tr, 1)
	prey := newHerb(world.Position{X: 50, Y: 50})

	if c.Attack(predator, prey, rng) {
		t.Fatal("powerless attack succeeded")
	}
	if !prey.Alive() {
		t.Error("prey died from a failed attack")
	}
	if predator.Energy() != 100-attackFailCost {
		t.Errorf("predator energy = %v, want %v", predator.Energy(), 100-attackFailCost)
	}
}

func TestAttackRefusesDeadPrey(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	c := NewCarnivore(0.1)

	predator := newCarn(world.Position{X: 50, Y: 50})
	prey := newHerb(world.Position{X: 50, Y: 50})
	prey.Kill()

	if c.Attack(predator, prey, rng) {
		t.Error("attack on dead prey succeeded")
	}
}

func TestCarnivoreAttacksPreyWithinReach(t *testing.T) {
	env, rng := newTestEnv(33)
	predator := newCarn(world.Position{X: 50, Y: 50})
	predator.SetEnergy(30)
	prey := newHerb(world.Position{X: 50.5, Y: 50})

	env.SetAgents([]world.Agent{predator, prey})
	predator.Update(1, env, rng)

	// Default strength 15 beats a defense of 6, so the hunt lands.
	if prey.Alive() {
		t.Fatal("prey within attack range survived")
	}
	if predator.State() != StateEating {
		t.Errorf("state = %v, want eating", predator.State())
	}
	if predator.Stats().FoodEaten != 1 {
		t.Errorf("foodEaten = %d, want 1", predator.Stats().FoodEaten)
	}
}

func TestCarnivoreClosesOnDistantPrey(t *testing.T) {
	env, rng := newTestEnv(34)
	predator := newCarn(world.Position{X: 50, Y: 50})
	predator.SetEnergy(30)
	prey := newHerb(world.Position{X: 60, Y: 50})

	env.SetAgents([]world.Agent{predator, prey})
	predator.Update(1, env, rng)

	if predator.State() != StateMoving {
		t.Fatalf("state = %v, want moving", predator.State())
	}
	if predator.Direction() != DirEast {
		t.Errorf("direction = %v, want east", predator.Direction())
	}
	if prey.Alive() != true {
		t.Error("out-of-range prey was attacked")
	}
}

func TestHuntCooldownGatesAttempts(t *testing.T) {
	env, rng := newTestEnv(35)
	predator := newCarn(world.Position{X: 50, Y: 50})
	predator.SetEnergy(30)

	// No prey around: the first attempt wanders but still burns the cooldown.
	predator.Update(1, env, rng)
	if predator.State() != StateMoving {
		t.Fatalf("state = %v, want moving", predator.State())
	}

	// Hungry but on cooldown: falls through to sleep.
	predator.Update(1, env, rng)
	if predator.State() != StateSleeping {
		t.Errorf("state = %v, want sleeping while hunt is on cooldown", predator.State())
	}
}

func TestCarnivoreLitterFloorsAtOne(t *testing.T) {
	env, rng := newTestEnv(36)
	c := NewCarnivore(0.1)

	a := newCarn(world.Position{X: 10, Y: 10})
	b := newCarn(world.Position{X: 10, Y: 10})

	// Combined urge 30 over divisor 40 floors at one child.
	offspring := c.CreateOffspring(a, b, env, rng)
	if len(offspring) != 1 {
		t.Fatalf("litter = %d, want 1", len(offspring))
	}
	if offspring[0].Species() != world.SpeciesCarnivore {
		t.Errorf("offspring species = %v, want carnivore", offspring[0].Species())
	}
	if offspring[0].Energy() != newbornEnergy {
		t.Errorf("offspring energy = %v, want %v", offspring[0].Energy(), newbornEnergy)
	}
}

func TestCarnivoreMatingWindow(t *testing.T) {
	a := newCarn(world.Position{X: 10, Y: 10})
	b := newCarn(world.Position{X: 10, Y: 10})
	a.SetEnergy(70)
	b.SetEnergy(70)

	// Lifespan 250: the window spans ages 37.5 through 187.5.
	a.SetAge(100)
	b.SetAge(100)
	if !a.Mate(b) {
		t.Error("mature carnivores refused to mate")
	}

	c := newCarn(world.Position{X: 10, Y: 10})
	d := newCarn(world.Position{X: 10, Y: 10})
	c.SetEnergy(70)
	d.SetEnergy(70)
	c.SetAge(200)
	d.SetAge(100)
	if c.Mate(d) {
		t.Error("carnivore past the maturity window mated")
	}
}
