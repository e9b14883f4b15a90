// Package animal implements the agent state machine and the species
// behavior policies that drive it.
package animal

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/netzer-git/Organizm/traits"
	"github.com/netzer-git/Organizm/world"
)

// ActivityState is the agent's current activity.
type ActivityState uint8

const (
	StateIdle ActivityState = iota
	StateMoving
	StateEating
	StateSleeping
	StateMating
	StateDead // terminal
)

// String returns the state name.
func (s ActivityState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateEating:
		return "eating"
	case StateSleeping:
		return "sleeping"
	case StateMating:
		return "mating"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DeathCause records why an animal died. Informational only.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseStarvation
	CauseOldAge
	CausePredation
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseStarvation:
		return "starvation"
	case CauseOldAge:
		return "old-age"
	case CausePredation:
		return "predation"
	default:
		return "none"
	}
}

// Stats are per-animal lifetime counters, monotonically non-decreasing and
// mutated only by the owning animal.
type Stats struct {
	Generation       int
	Children         int
	FoodEaten        int
	DistanceTraveled float64
	TimeAlive        float64
}

// Vital bounds and state-specific metabolic factors.
const (
	maxEnergy = 100.0
	maxHealth = 100.0

	moveCostFactor      = 0.2 // × speed × dt while moving
	matingCost          = 10.0
	idleCostFactor      = 0.1 // × metabolism × dt while idle
	sleepRecoveryFactor = 1.5 // × metabolism × dt regained while sleeping

	sleepDuration = 5.0 // advisory; recovery accrues per tick
	eatRange      = 1.0
	plantBite     = 5.0

	newbornEnergy = 50.0
)

// Animal is one simulated agent. Its lifecycle is owned by the simulation's
// collection; it holds no reference to the environment — the environment is
// passed into every call that needs it.
type Animal struct {
	id       uuid.UUID
	behavior Behavior

	pos   world.Position
	dir   Direction
	state ActivityState

	age    float64
	energy float64
	health float64

	traits traits.Traits
	stats  Stats

	alive      bool
	deathCause DeathCause

	sleepRemaining float64
	huntCooldown   float64
}

// NewAnimal creates a live, idle animal with full vitals.
func NewAnimal(behavior Behavior, pos world.Position, tr traits.Traits, generation int) *Animal {
	if generation < 1 {
		generation = 1
	}
	return &Animal{
		id:       uuid.New(),
		behavior: behavior,
		pos:      pos,
		dir:      DirNone,
		state:    StateIdle,
		energy:   maxEnergy,
		health:   maxHealth,
		traits:   tr,
		stats:    Stats{Generation: generation},
		alive:    true,
	}
}

// ID returns the animal's identity.
func (a *Animal) ID() uuid.UUID { return a.id }

// Position returns the current world position.
func (a *Animal) Position() world.Position { return a.pos }

// Alive reports the liveness flag.
func (a *Animal) Alive() bool { return a.alive }

// Species returns the behavior policy's species tag.
func (a *Animal) Species() world.Species { return a.behavior.Species() }

// State returns the current activity state.
func (a *Animal) State() ActivityState { return a.state }

// Direction returns the current facing.
func (a *Animal) Direction() Direction { return a.dir }

// Energy returns the current energy in [0, 100].
func (a *Animal) Energy() float64 { return a.energy }

// Health returns the current health in [0, 100].
func (a *Animal) Health() float64 { return a.health }

// Age returns the animal's age in simulation time units.
func (a *Animal) Age() float64 { return a.age }

// Traits returns the heritable traits.
func (a *Animal) Traits() traits.Traits { return a.traits }

// Stats returns the lifetime counters.
func (a *Animal) Stats() Stats { return a.stats }

// Generation returns the animal's generation (founders are 1).
func (a *Animal) Generation() int { return a.stats.Generation }

// DeathCause returns why the animal died, or CauseNone while alive.
func (a *Animal) DeathCause() DeathCause { return a.deathCause }

// SetEnergy stores energy clamped into [0, 100].
func (a *Animal) SetEnergy(v float64) { a.energy = clamp(v, 0, maxEnergy) }

// AddEnergy adjusts energy by delta, clamped into [0, 100].
func (a *Animal) AddEnergy(delta float64) { a.SetEnergy(a.energy + delta) }

// SetHealth stores health clamped into [0, 100].
func (a *Animal) SetHealth(v float64) { a.health = clamp(v, 0, maxHealth) }

// SetAge overrides the animal's age.
func (a *Animal) SetAge(v float64) {
	if v < 0 {
		v = 0
	}
	a.age = v
}

// SetPosition moves the animal without movement cost or distance tracking.
func (a *Animal) SetPosition(p world.Position) { a.pos = p }

// Update advances the animal by dt: aging, metabolism, the death check, the
// current activity, and — once idle — the species decision policy.
func (a *Animal) Update(dt float64, env *world.Environment, rng *rand.Rand) {
	if a.state == StateDead || dt <= 0 {
		return
	}

	a.age += dt
	a.stats.TimeAlive += dt
	a.applyMetabolism(dt)

	// Death is checked before any behavior runs this tick.
	if a.age >= a.traits.Lifespan {
		a.die(CauseOldAge)
		return
	}
	if a.energy <= 0 {
		a.die(CauseStarvation)
		return
	}

	if a.huntCooldown > 0 {
		a.huntCooldown -= dt
	}

	switch a.state {
	case StateMoving:
		a.advance(dt, env)
	case StateSleeping:
		a.sleepRemaining -= dt
		if a.sleepRemaining <= 0 {
			a.state = StateIdle
		}
	case StateEating, StateMating:
		// Single-tick activities; mating resolution happens in the
		// simulation's interaction pass.
		a.state = StateIdle
	}

	if a.state == StateIdle {
		a.behavior.DecideAction(a, env, rng)
	}
}

// applyMetabolism drains the baseline metabolic cost plus the current
// state's adjustment. Sleeping recovers energy instead.
func (a *Animal) applyMetabolism(dt float64) {
	drain := a.traits.Metabolism * dt
	switch a.state {
	case StateMoving:
		drain += moveCostFactor * a.traits.Speed * dt
	case StateMating:
		drain += matingCost * dt
	case StateIdle:
		drain += idleCostFactor * a.traits.Metabolism * dt
	case StateSleeping:
		drain -= sleepRecoveryFactor * a.traits.Metabolism * dt
	}
	a.SetEnergy(a.energy - drain)
}

// advance applies one movement step in the facing direction, clamped into
// world bounds, then returns to idle.
func (a *Animal) advance(dt float64, env *world.Environment) {
	dx, dy := a.dir.Vector()
	step := a.traits.Speed * dt
	next := env.BoundPosition(world.Position{X: a.pos.X + dx*step, Y: a.pos.Y + dy*step})
	a.stats.DistanceTraveled += a.pos.DistanceTo(next)
	a.pos = next
	a.state = StateIdle
}

// Move turns the animal and starts a movement step.
func (a *Animal) Move(d Direction) {
	if a.state == StateDead || d == DirNone {
		return
	}
	a.dir = d
	a.state = StateMoving
}

// Sleep puts the animal to sleep for the given duration.
func (a *Animal) Sleep(duration float64) {
	if a.state == StateDead || duration <= 0 {
		return
	}
	a.sleepRemaining = duration
	a.state = StateSleeping
}

// Eat credits consumed food energy and counts the meal.
func (a *Animal) Eat(energyGain float64) {
	if a.state == StateDead || energyGain <= 0 {
		return
	}
	a.AddEnergy(energyGain)
	a.stats.FoodEaten++
	a.state = StateEating
}

// Mate attempts the transition into MATING with the given partner. The
// compatibility check is the species policy's. Mating may interrupt any
// live activity except an ongoing mating.
func (a *Animal) Mate(partner *Animal) bool {
	if a.state == StateDead || a.state == StateMating {
		return false
	}
	if partner == nil || !partner.alive {
		return false
	}
	if !a.behavior.CanMateWith(a, partner) {
		return false
	}
	a.state = StateMating
	return true
}

// Reproduce builds the litter for two animals that both reached MATING.
// Each parent's children counter increments exactly once per call, and
// both parents return to idle.
func (a *Animal) Reproduce(partner *Animal, env *world.Environment, rng *rand.Rand) []*Animal {
	if partner == nil || a.state != StateMating || partner.state != StateMating {
		return nil
	}

	offspring := a.behavior.CreateOffspring(a, partner, env, rng)

	a.stats.Children++
	partner.stats.Children++
	a.state = StateIdle
	partner.state = StateIdle

	return offspring
}

// Kill clears the liveness flag immediately. Used by predation.
func (a *Animal) Kill() {
	if a.state != StateDead {
		a.die(CausePredation)
	}
}

// DistanceTo returns the Euclidean distance to another animal.
func (a *Animal) DistanceTo(other *Animal) float64 {
	return a.pos.DistanceTo(other.pos)
}

func (a *Animal) die(cause DeathCause) {
	a.state = StateDead
	a.alive = false
	a.deathCause = cause
	slog.Debug("animal died",
		"id", a.id.String(),
		"species", a.Species().String(),
		"cause", cause.String(),
		"age", a.age,
		"generation", a.stats.Generation,
	)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
