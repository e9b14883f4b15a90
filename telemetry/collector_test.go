package telemetry

import (
	"testing"

	"github.com/netzer-git/Organizm/animal"
	"github.com/netzer-git/Organizm/world"
)

func TestCollectorWindowFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(5) {
		t.Error("flush requested before the window elapsed")
	}
	if !c.ShouldFlush(10) {
		t.Error("flush not requested at the window boundary")
	}

	c.RecordBirth(world.SpeciesHerbivore)
	c.RecordBirth(world.SpeciesHerbivore)
	c.RecordBirth(world.SpeciesCarnivore)
	c.RecordDeath(world.SpeciesHerbivore, animal.CausePredation)
	c.RecordDeath(world.SpeciesCarnivore, animal.CauseStarvation)
	c.RecordDeath(world.SpeciesHerbivore, animal.CauseOldAge)

	stats := c.Flush(10, []float64{40, 60}, []float64{80}, 7, 1.5, 2)

	if stats.HerbivoreBirths != 2 || stats.CarnivoreBirths != 1 {
		t.Errorf("births = (%d, %d), want (2, 1)", stats.HerbivoreBirths, stats.CarnivoreBirths)
	}
	if stats.HerbivoreDeaths != 2 || stats.CarnivoreDeaths != 1 {
		t.Errorf("deaths = (%d, %d), want (2, 1)", stats.HerbivoreDeaths, stats.CarnivoreDeaths)
	}
	if stats.DeathsPredation != 1 || stats.DeathsStarvation != 1 || stats.DeathsOldAge != 1 {
		t.Errorf("death causes = (%d, %d, %d), want one each",
			stats.DeathsPredation, stats.DeathsStarvation, stats.DeathsOldAge)
	}
	if stats.HerbivoreCount != 2 || stats.CarnivoreCount != 1 || stats.PlantCount != 7 {
		t.Errorf("counts = (%d, %d, %d), want (2, 1, 7)",
			stats.HerbivoreCount, stats.CarnivoreCount, stats.PlantCount)
	}
	if stats.HerbEnergyMean != 50 {
		t.Errorf("herb energy mean = %v, want 50", stats.HerbEnergyMean)
	}

	// Counters reset; the next window starts where this one ended.
	if c.ShouldFlush(15) {
		t.Error("flush requested 5 units into a fresh 10-unit window")
	}
	next := c.Flush(20, nil, nil, 0, 0, 0)
	if next.HerbivoreBirths != 0 || next.HerbivoreDeaths != 0 {
		t.Error("counters survived a flush")
	}
	if next.WindowStart != 10 {
		t.Errorf("window start = %v, want 10", next.WindowStart)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0)
	if c.WindowDuration() != 1 {
		t.Errorf("window duration = %v, want raised to 1", c.WindowDuration())
	}
}
