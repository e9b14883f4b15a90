package telemetry

import (
	"github.com/netzer-git/Organizm/animal"
	"github.com/netzer-git/Organizm/world"
)

// Collector accumulates birth and death events within simulation-time
// windows and produces WindowStats.
type Collector struct {
	windowDuration float64
	windowStart    float64

	// Event counters for current window
	herbBirths int
	carnBirths int
	herbDeaths int
	carnDeaths int

	deathsStarvation int
	deathsOldAge     int
	deathsPredation  int
}

// NewCollector creates a stats collector. windowDuration is how long each
// stats window lasts in simulation-time units; values below 1 are raised
// to 1.
func NewCollector(windowDuration float64) *Collector {
	if windowDuration < 1 {
		windowDuration = 1
	}
	return &Collector{windowDuration: windowDuration}
}

// RecordBirth records a birth event.
func (c *Collector) RecordBirth(sp world.Species) {
	if sp == world.SpeciesHerbivore {
		c.herbBirths++
	} else {
		c.carnBirths++
	}
}

// RecordDeath records a death event with its cause.
func (c *Collector) RecordDeath(sp world.Species, cause animal.DeathCause) {
	if sp == world.SpeciesHerbivore {
		c.herbDeaths++
	} else {
		c.carnDeaths++
	}

	switch cause {
	case animal.CauseStarvation:
		c.deathsStarvation++
	case animal.CauseOldAge:
		c.deathsOldAge++
	case animal.CausePredation:
		c.deathsPredation++
	}
}

// ShouldFlush reports whether the current window has elapsed.
func (c *Collector) ShouldFlush(simTime float64) bool {
	return simTime-c.windowStart >= c.windowDuration
}

// Flush produces a WindowStats and resets counters for the next window.
// Population counts derive from the energy samples; generation aggregates
// are supplied by the caller.
func (c *Collector) Flush(
	simTime float64,
	herbEnergies, carnEnergies []float64,
	plantCount int,
	avgGeneration float64,
	maxGeneration int,
) WindowStats {
	herbMean, herbP10, herbP50, herbP90 := ComputeEnergyStats(herbEnergies)
	carnMean, carnP10, carnP50, carnP90 := ComputeEnergyStats(carnEnergies)

	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   simTime,

		HerbivoreCount: len(herbEnergies),
		CarnivoreCount: len(carnEnergies),
		PlantCount:     plantCount,

		HerbivoreBirths: c.herbBirths,
		CarnivoreBirths: c.carnBirths,
		HerbivoreDeaths: c.herbDeaths,
		CarnivoreDeaths: c.carnDeaths,

		DeathsStarvation: c.deathsStarvation,
		DeathsOldAge:     c.deathsOldAge,
		DeathsPredation:  c.deathsPredation,

		HerbEnergyMean: herbMean,
		HerbEnergyP10:  herbP10,
		HerbEnergyP50:  herbP50,
		HerbEnergyP90:  herbP90,

		CarnEnergyMean: carnMean,
		CarnEnergyP10:  carnP10,
		CarnEnergyP50:  carnP50,
		CarnEnergyP90:  carnP90,

		AverageGeneration: avgGeneration,
		HighestGeneration: maxGeneration,
	}

	// Reset for next window
	c.windowStart = simTime
	c.herbBirths = 0
	c.carnBirths = 0
	c.herbDeaths = 0
	c.carnDeaths = 0
	c.deathsStarvation = 0
	c.deathsOldAge = 0
	c.deathsPredation = 0

	return stats
}

// WindowDuration returns the window length in simulation-time units.
func (c *Collector) WindowDuration() float64 {
	return c.windowDuration
}
