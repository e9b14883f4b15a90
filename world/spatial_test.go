package world

import (
	"testing"

	"github.com/google/uuid"
)

type stubAgent struct {
	id      uuid.UUID
	pos     Position
	alive   bool
	species Species
}

func (s *stubAgent) ID() uuid.UUID       { return s.id }
func (s *stubAgent) Position() Position  { return s.pos }
func (s *stubAgent) Alive() bool         { return s.alive }
func (s *stubAgent) Species() Species    { return s.species }

func newStub(x, y float64) *stubAgent {
	return &stubAgent{id: uuid.New(), pos: Position{X: x, Y: y}, alive: true}
}

func TestSpatialGridQueryRadius(t *testing.T) {
	grid := NewSpatialGrid(100, 100, 8)

	center := newStub(50, 50)
	close1 := newStub(52, 50)
	close2 := newStub(50, 47)
	edge := newStub(55, 50)  // exactly on the radius
	far := newStub(80, 80)

	for _, a := range []*stubAgent{center, close1, close2, edge, far} {
		grid.Insert(a)
	}

	got := grid.QueryRadius(50, 50, 5, center)
	if len(got) != 3 {
		t.Fatalf("found %d agents, want 3", len(got))
	}
	for _, a := range got {
		if a.ID() == center.ID() {
			t.Error("query returned the excluded agent")
		}
		if a.ID() == far.ID() {
			t.Error("query returned an agent outside the radius")
		}
	}
}

func TestSpatialGridCornerQueriesClamp(t *testing.T) {
	grid := NewSpatialGrid(100, 100, 8)

	corner := newStub(0.5, 0.5)
	opposite := newStub(99.5, 99.5)
	grid.Insert(corner)
	grid.Insert(opposite)

	// The world is bounded: a corner query must not wrap around and see
	// the opposite corner.
	got := grid.QueryRadius(0, 0, 10, nil)
	if len(got) != 1 || got[0].ID() != corner.ID() {
		t.Fatalf("corner query returned %d agents, want just the corner one", len(got))
	}
}

func TestSpatialGridClear(t *testing.T) {
	grid := NewSpatialGrid(100, 100, 8)
	grid.Insert(newStub(10, 10))
	grid.Clear()

	if got := grid.QueryRadius(10, 10, 50, nil); len(got) != 0 {
		t.Errorf("cleared grid returned %d agents", len(got))
	}
}
