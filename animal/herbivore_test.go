package animal

import (
	"testing"

	"github.com/netzer-git/Organizm/world"
)

func TestHerbivoreEatsPlantWithinReach(t *testing.T) {
	env, rng := newTestEnv(20)
	a := newHerb(world.Position{X: 50, Y: 50})
	a.SetEnergy(30)

	env.AddResource(world.Position{X: 50.2, Y: 50}, world.ResourcePlant, 20, 0)

	a.Update(1, env, rng)

	if a.State() != StateEating {
		t.Fatalf("state = %v, want eating", a.State())
	}
	if a.Stats().FoodEaten != 1 {
		t.Errorf("foodEaten = %d, want 1", a.Stats().FoodEaten)
	}
	if a.Energy() <= 30 {
		t.Errorf("energy = %v, want gain over 30", a.Energy())
	}
}

func TestHerbivoreMovesTowardDistantPlant(t *testing.T) {
	env, rng := newTestEnv(21)
	a := newHerb(world.Position{X: 50, Y: 50})
	a.SetEnergy(30)

	env.AddResource(world.Position{X: 60, Y: 50}, world.ResourcePlant, 20, 0)

	a.Update(1, env, rng)
	if a.State() != StateMoving {
		t.Fatalf("state = %v, want moving", a.State())
	}
	if a.Direction() != DirEast {
		t.Errorf("direction = %v, want east", a.Direction())
	}

	a.Update(1, env, rng)
	if a.Position().X <= 50 {
		t.Errorf("x = %v, want progress toward plant at x=60", a.Position().X)
	}
}

func TestHerbivoreWandersWithNoPlantInSight(t *testing.T) {
	env, rng := newTestEnv(22)
	a := newHerb(world.Position{X: 50, Y: 50})
	a.SetEnergy(30)

	a.Update(1, env, rng)

	if a.State() != StateMoving {
		t.Errorf("state = %v, want moving", a.State())
	}
}

func TestHerbivoreSleepsWhenTired(t *testing.T) {
	env, rng := newTestEnv(23)
	a := newHerb(world.Position{X: 50, Y: 50})
	a.SetEnergy(60)

	a.Update(1, env, rng)

	if a.State() != StateSleeping {
		t.Errorf("state = %v, want sleeping", a.State())
	}
}

func TestHerbivoreWandersWhenSated(t *testing.T) {
	env, rng := newTestEnv(24)
	a := newHerb(world.Position{X: 50, Y: 50})

	a.Update(1, env, rng)

	if a.State() != StateMoving {
		t.Errorf("state = %v, want moving", a.State())
	}
}

func TestHerbivoreRejectsCarnivorePartner(t *testing.T) {
	herb := newHerb(world.Position{X: 10, Y: 10})
	carn := NewAnimal(NewCarnivore(0.1), world.Position{X: 10, Y: 10}, herbTraits(), 1)

	herb.SetAge(50)
	carn.SetAge(50)

	if herb.Mate(carn) {
		t.Error("herbivore mated across species")
	}
}

func TestHerbivoreLitterScalesWithUrge(t *testing.T) {
	env, rng := newTestEnv(25)
	h := NewHerbivore(0.1)

	tr := herbTraits()
	tr.ReproductiveUrge = 45
	a := NewAnimal(h, world.Position{X: 10, Y: 10}, tr, 1)
	b := NewAnimal(h, world.Position{X: 10, Y: 10}, tr, 1)

	// Combined urge 90 over divisor 30 gives a litter of 3.
	if got := len(h.CreateOffspring(a, b, env, rng)); got != 3 {
		t.Errorf("litter = %d, want 3", got)
	}

	tr.ReproductiveUrge = 10
	a = NewAnimal(h, world.Position{X: 10, Y: 10}, tr, 1)
	b = NewAnimal(h, world.Position{X: 10, Y: 10}, tr, 1)

	// Combined urge 20 floors at one child.
	if got := len(h.CreateOffspring(a, b, env, rng)); got != 1 {
		t.Errorf("litter = %d, want 1", got)
	}
}
