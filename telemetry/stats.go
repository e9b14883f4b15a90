// Package telemetry aggregates per-window simulation statistics and writes
// them to structured experiment output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one simulation-time window.
type WindowStats struct {
	WindowStart float64 `csv:"window_start"`
	WindowEnd   float64 `csv:"window_end"`

	// Population counts at window end
	HerbivoreCount int `csv:"herbivores"`
	CarnivoreCount int `csv:"carnivores"`
	PlantCount     int `csv:"plants"`

	// Events during window
	HerbivoreBirths int `csv:"herbivore_births"`
	CarnivoreBirths int `csv:"carnivore_births"`
	HerbivoreDeaths int `csv:"herbivore_deaths"`
	CarnivoreDeaths int `csv:"carnivore_deaths"`

	// Death causes during window
	DeathsStarvation int `csv:"deaths_starvation"`
	DeathsOldAge     int `csv:"deaths_old_age"`
	DeathsPredation  int `csv:"deaths_predation"`

	// Energy distribution (sampled at window end)
	HerbEnergyMean float64 `csv:"herb_energy_mean"`
	HerbEnergyP10  float64 `csv:"herb_energy_p10"`
	HerbEnergyP50  float64 `csv:"herb_energy_p50"`
	HerbEnergyP90  float64 `csv:"herb_energy_p90"`

	CarnEnergyMean float64 `csv:"carn_energy_mean"`
	CarnEnergyP10  float64 `csv:"carn_energy_p10"`
	CarnEnergyP50  float64 `csv:"carn_energy_p50"`
	CarnEnergyP90  float64 `csv:"carn_energy_p90"`

	// Generation spread
	AverageGeneration float64 `csv:"avg_generation"`
	HighestGeneration int     `csv:"max_generation"`

	// World state at window end
	Weather string `csv:"weather"`
}

// ComputeEnergyStats calculates mean and percentiles from energy values.
func ComputeEnergyStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStart),
		slog.Float64("window_end", s.WindowEnd),
		slog.Int("herbivores", s.HerbivoreCount),
		slog.Int("carnivores", s.CarnivoreCount),
		slog.Int("plants", s.PlantCount),
		slog.Int("herbivore_births", s.HerbivoreBirths),
		slog.Int("carnivore_births", s.CarnivoreBirths),
		slog.Int("herbivore_deaths", s.HerbivoreDeaths),
		slog.Int("carnivore_deaths", s.CarnivoreDeaths),
		slog.Int("deaths_starvation", s.DeathsStarvation),
		slog.Int("deaths_old_age", s.DeathsOldAge),
		slog.Int("deaths_predation", s.DeathsPredation),
		slog.Float64("herb_energy_mean", s.HerbEnergyMean),
		slog.Float64("herb_energy_p10", s.HerbEnergyP10),
		slog.Float64("herb_energy_p50", s.HerbEnergyP50),
		slog.Float64("herb_energy_p90", s.HerbEnergyP90),
		slog.Float64("carn_energy_mean", s.CarnEnergyMean),
		slog.Float64("carn_energy_p10", s.CarnEnergyP10),
		slog.Float64("carn_energy_p50", s.CarnEnergyP50),
		slog.Float64("carn_energy_p90", s.CarnEnergyP90),
		slog.Float64("avg_generation", s.AverageGeneration),
		slog.Int("max_generation", s.HighestGeneration),
		slog.String("weather", s.Weather),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
