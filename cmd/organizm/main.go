package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/netzer-git/Organizm/config"
	"github.com/netzer-git/Organizm/sim"
	"github.com/netzer-git/Organizm/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 1000, "Stop after N ticks (0 = unlimited)")
	tickDelta := flag.Float64("dt", 1.0, "Wall-clock delta per tick")
	timeScale := flag.Float64("time-scale", 0, "Time multiplier (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window in simulation-time units (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	windowDuration := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		windowDuration = *statsWindow
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	s := sim.NewSimulation(cfg, rng)
	s.SetCollector(telemetry.NewCollector(windowDuration))
	if *timeScale > 0 {
		s.SetTimeScale(*timeScale)
	}
	s.Start()

	slog.Info("starting simulation",
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"dt", *tickDelta,
		"time_scale", s.TimeScale(),
		"stats_window", windowDuration,
		"output_dir", out.Dir(),
	)

	start := time.Now()
	ticks := 0
	for {
		s.Update(*tickDelta)
		ticks++

		if ws, ok := s.FlushTelemetry(); ok {
			if *logStats {
				ws.LogStats()
			}
			if err := out.WriteTelemetry(ws); err != nil {
				slog.Error("failed to write telemetry", "error", err)
				os.Exit(1)
			}
		}

		if s.Stats().TotalAnimals == 0 {
			slog.Info("population extinct", "tick", ticks, "sim_time", s.Time())
			break
		}
		if *maxTicks > 0 && ticks >= *maxTicks {
			slog.Info("max ticks reached", "tick", ticks)
			break
		}
	}

	st := s.Stats()
	slog.Info("simulation finished",
		"ticks", humanize.Comma(int64(ticks)),
		"sim_time", s.Time(),
		"elapsed", humanize.RelTime(start, time.Now(), "", ""),
		"herbivores", st.HerbivoreCount,
		"carnivores", st.CarnivoreCount,
		"plants", st.PlantsCount,
		"avg_generation", st.AverageGeneration,
		"max_generation", st.HighestGeneration,
	)
}
