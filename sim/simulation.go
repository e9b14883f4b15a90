// Package sim owns the environment and the canonical animal collection and
// advances the ecosystem one tick at a time: environment update, per-animal
// updates, pairwise mating resolution, dead removal, periodic resource
// spawning, and statistics aggregation.
package sim

import (
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/netzer-git/Organizm/animal"
	"github.com/netzer-git/Organizm/config"
	"github.com/netzer-git/Organizm/telemetry"
	"github.com/netzer-git/Organizm/traits"
	"github.com/netzer-git/Organizm/world"
)

// Interaction and time-scale constants.
const (
	matingRange     = 2.0
	matingMinEnergy = 50.0

	minTimeScale = 0.1
	maxTimeScale = 10.0

	spawnBatchMin = 2
	spawnBatchMax = 4
)

// Simulation is the tick orchestrator. It is single-threaded: all mutation
// happens synchronously inside Update, and no partial state is observable
// outside a completed tick.
type Simulation struct {
	cfg *config.Config
	env *world.Environment
	rng *rand.Rand

	animals []*animal.Animal

	herbivore *animal.Herbivore
	carnivore *animal.Carnivore

	time      float64
	running   bool
	timeScale float64

	stats Stats

	collector *telemetry.Collector
}

// NewSimulation builds the environment and seeds the founder populations and
// initial resources from config. The simulation starts paused.
func NewSimulation(cfg *config.Config, rng *rand.Rand) *Simulation {
	s := &Simulation{rng: rng}
	s.rebuild(cfg)
	return s
}

// rebuild discards all state and reseeds from a fresh config.
func (s *Simulation) rebuild(cfg *config.Config) {
	s.cfg = cfg
	s.env = world.NewEnvironment(cfg.Environment, s.rng)
	s.herbivore = animal.NewHerbivore(cfg.Genetics.MutationFactor)
	s.carnivore = animal.NewCarnivore(cfg.Genetics.MutationFactor)
	s.animals = nil
	s.time = 0
	s.running = false
	s.timeScale = clampTimeScale(cfg.Simulation.TimeScale)

	s.seedResources()
	s.seedAnimals()
	s.recomputeStats()

	slog.Info("simulation seeded",
		"herbivores", s.stats.HerbivoreCount,
		"carnivores", s.stats.CarnivoreCount,
		"plants", s.stats.PlantsCount,
		"width", cfg.Environment.Width,
		"height", cfg.Environment.Height,
	)
}

func (s *Simulation) seedResources() {
	for i := 0; i < s.cfg.Population.InitialPlants; i++ {
		pos := s.env.RandomPosition(world.TerrainType.Vegetated)
		s.env.AddResource(pos, world.ResourcePlant, s.plantAmount(), s.plantRegen())
	}
	for i := 0; i < s.cfg.Population.InitialWaterSources; i++ {
		pos := s.env.RandomPosition(func(tt world.TerrainType) bool { return tt == world.TerrainWater })
		// Regenerating, so never removed even when drunk dry.
		s.env.AddResource(pos, world.ResourceWater, 50, 1)
	}
}

func (s *Simulation) seedAnimals() {
	landOnly := func(tt world.TerrainType) bool { return tt != world.TerrainWater }
	jitter := s.cfg.Genetics.TraitJitter

	for i := 0; i < s.cfg.Population.InitialHerbivores; i++ {
		tr := traits.Jitter(founderTraits(s.cfg.Herbivore), jitter, s.rng)
		s.animals = append(s.animals, animal.NewAnimal(s.herbivore, s.env.RandomPosition(landOnly), tr, 1))
	}
	for i := 0; i < s.cfg.Population.InitialCarnivores; i++ {
		tr := traits.Jitter(founderTraits(s.cfg.Carnivore), jitter, s.rng)
		s.animals = append(s.animals, animal.NewAnimal(s.carnivore, s.env.RandomPosition(landOnly), tr, 1))
	}
}

// founderTraits converts a config baseline into a trait set.
func founderTraits(tc config.TraitConfig) traits.Traits {
	return traits.Traits{
		Speed:            tc.Speed,
		Strength:         tc.Strength,
		Perception:       tc.Perception,
		Metabolism:       tc.Metabolism,
		ReproductiveUrge: tc.ReproductiveUrge,
		Lifespan:         tc.Lifespan,
	}
}

func (s *Simulation) plantAmount() float64 { return 10 + s.rng.Float64()*20 }
func (s *Simulation) plantRegen() float64  { return s.rng.Float64() * 0.5 }

// Start resumes tick processing.
func (s *Simulation) Start() { s.running = true }

// Pause halts tick processing; Update becomes a no-op.
func (s *Simulation) Pause() { s.running = false }

// Reset discards all animals and resources and rebuilds from the given
// config. The simulation comes back paused.
func (s *Simulation) Reset(cfg *config.Config) {
	s.rebuild(cfg)
}

// SetTimeScale clamps and stores the time multiplier.
func (s *Simulation) SetTimeScale(scale float64) {
	s.timeScale = clampTimeScale(scale)
}

// TimeScale returns the current time multiplier.
func (s *Simulation) TimeScale() float64 { return s.timeScale }

// Time returns the accumulated simulation time.
func (s *Simulation) Time() float64 { return s.time }

// Running reports whether ticks are being processed.
func (s *Simulation) Running() bool { return s.running }

// SetCollector attaches an optional telemetry collector that receives birth
// and death events as they happen.
func (s *Simulation) SetCollector(c *telemetry.Collector) { s.collector = c }

// Update advances one tick by the caller-supplied wall-clock delta, scaled
// by the time multiplier. No-op while paused.
func (s *Simulation) Update(realDt float64) {
	if !s.running || realDt <= 0 {
		return
	}

	dt := realDt * s.timeScale
	prev := s.time
	s.time += dt

	// Refresh the environment's agent snapshot before anyone senses.
	s.env.SetAgents(s.agentSnapshot())
	s.env.Update(dt)

	for _, a := range s.animals {
		if a.Alive() {
			a.Update(dt, s.env, s.rng)
		}
	}

	newborns := s.resolveMating()
	s.removeDead()

	// Offspring join after the pass that created them; they never mate or
	// die in their birth tick.
	for _, nb := range newborns {
		if s.collector != nil {
			s.collector.RecordBirth(nb.Species())
		}
		s.animals = append(s.animals, nb)
	}

	s.spawnResources(prev)
	s.recomputeStats()
}

func (s *Simulation) agentSnapshot() []world.Agent {
	agents := make([]world.Agent, 0, len(s.animals))
	for _, a := range s.animals {
		agents = append(agents, a)
	}
	return agents
}

// resolveMating runs the pairwise interaction pass: for every unordered pair
// of live animals close enough and energetic enough, both are invited to
// mate; a pair that mutually lands in MATING reproduces at once.
func (s *Simulation) resolveMating() []*animal.Animal {
	var newborns []*animal.Animal

	for i := 0; i < len(s.animals); i++ {
		a := s.animals[i]
		if !a.Alive() {
			continue
		}
		for j := i + 1; j < len(s.animals); j++ {
			b := s.animals[j]
			if !b.Alive() {
				continue
			}
			if a.DistanceTo(b) >= matingRange {
				continue
			}
			if a.Energy() <= matingMinEnergy || b.Energy() <= matingMinEnergy {
				continue
			}

			a.Mate(b)
			b.Mate(a)
			if a.State() == animal.StateMating && b.State() == animal.StateMating {
				newborns = append(newborns, a.Reproduce(b, s.env, s.rng)...)
			}
		}
	}
	return newborns
}

// removeDead drops every animal whose liveness flag is cleared, keeping the
// survivors' relative order stable.
func (s *Simulation) removeDead() {
	live := s.animals[:0]
	for _, a := range s.animals {
		if a.Alive() {
			live = append(live, a)
			continue
		}
		if s.collector != nil {
			s.collector.RecordDeath(a.Species(), a.DeathCause())
		}
	}
	// Clear the tail so dropped animals can be collected.
	for i := len(live); i < len(s.animals); i++ {
		s.animals[i] = nil
	}
	s.animals = live
}

// spawnResources adds a small batch of plants every time simulation time
// crosses a spawn-interval boundary.
func (s *Simulation) spawnResources(prev float64) {
	interval := s.cfg.Simulation.ResourceSpawnInterval
	if interval <= 0 {
		return
	}
	if math.Floor(s.time/interval) <= math.Floor(prev/interval) {
		return
	}

	n := spawnBatchMin + s.rng.Intn(spawnBatchMax-spawnBatchMin+1)
	for i := 0; i < n; i++ {
		pos := s.env.RandomPosition(world.TerrainType.Vegetated)
		s.env.AddResource(pos, world.ResourcePlant, s.plantAmount(), s.plantRegen())
	}
	slog.Debug("plants spawned", "count", n, "time", s.time)
}

func (s *Simulation) recomputeStats() {
	var herbs, carns int
	generations := make([]float64, 0, len(s.animals))

	for _, a := range s.animals {
		if a.Species() == world.SpeciesHerbivore {
			herbs++
		} else {
			carns++
		}
		generations = append(generations, float64(a.Generation()))
	}

	st := Stats{
		TotalAnimals:   len(s.animals),
		HerbivoreCount: herbs,
		CarnivoreCount: carns,
		PlantsCount:    s.env.ResourceCount(world.ResourcePlant),
	}
	if len(generations) > 0 {
		st.AverageGeneration = stat.Mean(generations, nil)
		st.HighestGeneration = int(floats.Max(generations))
	}
	s.stats = st
}

// Stats returns the aggregates from the last completed tick.
func (s *Simulation) Stats() Stats { return s.stats }

// Environment exposes the world for read-only spatial queries.
func (s *Simulation) Environment() *world.Environment { return s.env }

// Animals returns the live collection. Callers must not mutate it.
func (s *Simulation) Animals() []*animal.Animal { return s.animals }

// AddAnimal introduces an animal into the collection. It participates from
// the next Update onward.
func (s *Simulation) AddAnimal(a *animal.Animal) {
	if a == nil || !a.Alive() {
		return
	}
	s.animals = append(s.animals, a)
	s.recomputeStats()
}

// GetState builds a read-only snapshot for renderers and loggers.
func (s *Simulation) GetState() State {
	animals := make([]AnimalState, 0, len(s.animals))
	for _, a := range s.animals {
		animals = append(animals, AnimalState{
			ID:         a.ID(),
			Species:    a.Species(),
			Position:   a.Position(),
			State:      a.State(),
			Energy:     a.Energy(),
			Health:     a.Health(),
			Age:        a.Age(),
			Generation: a.Generation(),
		})
	}

	return State{
		Time:      s.time,
		Running:   s.running,
		TimeScale: s.timeScale,
		Weather:   s.env.Weather(),
		Animals:   animals,
		Resources: s.env.Resources(),
		Stats:     s.stats,
	}
}

// FlushTelemetry emits a window-stats record once the collector's window has
// elapsed. Returns false when no collector is attached or the window is
// still open.
func (s *Simulation) FlushTelemetry() (telemetry.WindowStats, bool) {
	if s.collector == nil || !s.collector.ShouldFlush(s.time) {
		return telemetry.WindowStats{}, false
	}

	var herbEnergies, carnEnergies []float64
	for _, a := range s.animals {
		if a.Species() == world.SpeciesHerbivore {
			herbEnergies = append(herbEnergies, a.Energy())
		} else {
			carnEnergies = append(carnEnergies, a.Energy())
		}
	}

	ws := s.collector.Flush(
		s.time,
		herbEnergies, carnEnergies,
		s.stats.PlantsCount,
		s.stats.AverageGeneration,
		s.stats.HighestGeneration,
	)
	ws.Weather = s.env.Weather().String()
	return ws, true
}

func clampTimeScale(scale float64) float64 {
	return math.Min(math.Max(scale, minTimeScale), maxTimeScale)
}
