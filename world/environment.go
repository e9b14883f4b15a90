package world

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/netzer-git/Organizm/config"
)

// boundEpsilon keeps clamped positions strictly inside the last grid cell.
const boundEpsilon = 0.001

// randomPositionAttempts bounds the rejection sampling in RandomPosition.
const randomPositionAttempts = 100

// spatialCellSize is the agent grid cell size in world units.
const spatialCellSize = 8.0

// ResourceInfo is a read-only view of one resource, returned by queries.
// Mutation goes through Environment.ConsumeResource.
type ResourceInfo struct {
	entity ecs.Entity

	ID     uuid.UUID
	Pos    Position
	Type   ResourceType
	Amount float64
}

// Environment owns the bounded world: the terrain grid, the live resource
// collection, weather state, and spatial lookups. Resources live in an ECS
// world; agents are a transient per-tick snapshot owned by the simulation.
type Environment struct {
	width  float64
	height float64

	terrain [][]TerrainType

	weather         Weather
	weatherTimer    float64
	weatherInterval float64

	world     *ecs.World
	resMapper *ecs.Map2[Position, Resource]
	resFilter *ecs.Filter2[Position, Resource]
	resMap    *ecs.Map1[Resource]

	agents *SpatialGrid

	rng *rand.Rand
}

// NewEnvironment builds a world from config, generating terrain from the
// rng's stream so a seeded run is fully reproducible.
func NewEnvironment(cfg config.EnvironmentConfig, rng *rand.Rand) *Environment {
	w := ecs.NewWorld()

	cols := int(math.Ceil(cfg.Width))
	rows := int(math.Ceil(cfg.Height))

	env := &Environment{
		width:           cfg.Width,
		height:          cfg.Height,
		terrain:         generateTerrain(cols, rows, cfg.TerrainScale, rng.Int63()),
		weather:         ParseWeather(cfg.InitialWeather),
		weatherInterval: cfg.WeatherChangeInterval,
		world:           w,
		resMapper:       ecs.NewMap2[Position, Resource](w),
		resFilter:       ecs.NewFilter2[Position, Resource](w),
		resMap:          ecs.NewMap1[Resource](w),
		agents:          NewSpatialGrid(cfg.Width, cfg.Height, spatialCellSize),
		rng:             rng,
	}
	return env
}

// Width returns the world width.
func (e *Environment) Width() float64 { return e.width }

// Height returns the world height.
func (e *Environment) Height() float64 { return e.height }

// Weather returns the current weather.
func (e *Environment) Weather() Weather { return e.weather }

// TerrainAt classifies the terrain under a position. Out-of-bounds
// positions classify as water, the impassable sentinel, never an error.
func (e *Environment) TerrainAt(p Position) TerrainType {
	if p.X < 0 || p.Y < 0 || p.X >= e.width || p.Y >= e.height {
		return TerrainWater
	}
	row := int(p.Y)
	col := int(p.X)
	if row >= len(e.terrain) || col >= len(e.terrain[row]) {
		return TerrainWater
	}
	return e.terrain[row][col]
}

// RandomPosition draws a uniform random position, rejection-sampling up to
// 100 attempts to satisfy the terrain filter. Falls back to an unfiltered
// position when no attempt matches; the filter is best-effort.
func (e *Environment) RandomPosition(filter func(TerrainType) bool) Position {
	for i := 0; i < randomPositionAttempts; i++ {
		p := Position{X: e.rng.Float64() * e.width, Y: e.rng.Float64() * e.height}
		if filter == nil || filter(e.TerrainAt(p)) {
			return p
		}
	}
	return Position{X: e.rng.Float64() * e.width, Y: e.rng.Float64() * e.height}
}

// BoundPosition clamps a position into [0, dimension − ε] on each axis.
func (e *Environment) BoundPosition(p Position) Position {
	p.X = clampAxis(p.X, e.width)
	p.Y = clampAxis(p.Y, e.height)
	return p
}

func clampAxis(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit-boundEpsilon {
		return limit - boundEpsilon
	}
	return v
}

// Update advances weather and resources by dt.
func (e *Environment) Update(dt float64) {
	e.updateWeather(dt)
	e.updateResources(dt)
}

// updateWeather accumulates the change timer and redraws the weather
// uniformly at random once the interval elapses. The redraw may repeat the
// current value.
func (e *Environment) updateWeather(dt float64) {
	if e.weatherInterval <= 0 {
		return
	}
	e.weatherTimer += dt
	if e.weatherTimer >= e.weatherInterval {
		e.weatherTimer = 0
		old := e.weather
		e.weather = Weather(e.rng.Intn(weatherCount))
		if e.weather != old {
			slog.Debug("weather changed", "from", old.String(), "to", e.weather.String())
		}
	}
}

// updateResources regenerates every resource and removes the ones that are
// depleted with no way back.
func (e *Environment) updateResources(dt float64) {
	var gone []ecs.Entity

	query := e.resFilter.Query()
	for query.Next() {
		_, res := query.Get()
		res.Regenerate(dt)
		if res.Depleted() && res.RegenRate == 0 {
			gone = append(gone, query.Entity())
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, ent := range gone {
		e.resMapper.Remove(ent)
	}
}

// AddResource creates a resource and returns its ID.
func (e *Environment) AddResource(p Position, rt ResourceType, amount, regenRate float64) uuid.UUID {
	if amount < 0 {
		amount = 0
	}
	if regenRate < 0 {
		regenRate = 0
	}
	pos := e.BoundPosition(p)
	res := Resource{ID: uuid.New(), Type: rt, Amount: amount, RegenRate: regenRate}
	e.resMapper.NewEntity(&pos, &res)
	return res.ID
}

// NearestResource finds the closest undepleted resource of the given type
// within radius of from. The scan is linear over the resource collection.
func (e *Environment) NearestResource(from Position, radius float64, rt ResourceType) (ResourceInfo, bool) {
	best := ResourceInfo{}
	bestDist := radius
	found := false

	query := e.resFilter.Query()
	for query.Next() {
		pos, res := query.Get()
		if res.Type != rt || res.Depleted() {
			continue
		}
		d := from.DistanceTo(*pos)
		if d <= bestDist {
			bestDist = d
			best = ResourceInfo{entity: query.Entity(), ID: res.ID, Pos: *pos, Type: res.Type, Amount: res.Amount}
			found = true
		}
	}
	return best, found
}

// ConsumeResource takes up to want units from the referenced resource and
// returns the amount actually consumed. A stale reference yields zero.
func (e *Environment) ConsumeResource(ri ResourceInfo, want float64) float64 {
	res := e.resMap.Get(ri.entity)
	if res == nil || res.ID != ri.ID {
		return 0
	}
	got := res.Consume(want)
	if got > 0 && res.Depleted() {
		slog.Debug("resource depleted", "type", res.Type.String(), "id", res.ID.String())
	}
	return got
}

// ResourceCount returns the number of undepleted resources of a type.
func (e *Environment) ResourceCount(rt ResourceType) int {
	count := 0
	query := e.resFilter.Query()
	for query.Next() {
		_, res := query.Get()
		if res.Type == rt && !res.Depleted() {
			count++
		}
	}
	return count
}

// Resources returns a snapshot of every live resource.
func (e *Environment) Resources() []ResourceInfo {
	var out []ResourceInfo
	query := e.resFilter.Query()
	for query.Next() {
		pos, res := query.Get()
		out = append(out, ResourceInfo{entity: query.Entity(), ID: res.ID, Pos: *pos, Type: res.Type, Amount: res.Amount})
	}
	return out
}

// SetAgents replaces the transient agent snapshot used by spatial queries.
// Dead agents are skipped; the simulation calls this before agent updates.
func (e *Environment) SetAgents(agents []Agent) {
	e.agents.Clear()
	for _, a := range agents {
		if a.Alive() {
			e.agents.Insert(a)
		}
	}
}

// AgentsNear returns the live agents within radius of p, excluding the
// querying agent itself.
func (e *Environment) AgentsNear(p Position, radius float64, exclude Agent) []Agent {
	return e.agents.QueryRadius(p.X, p.Y, radius, exclude)
}
