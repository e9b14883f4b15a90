package world

import "github.com/google/uuid"

// Species tags the trophic role of an agent.
type Species uint8

const (
	SpeciesHerbivore Species = iota
	SpeciesCarnivore
)

// String returns the species name.
func (s Species) String() string {
	switch s {
	case SpeciesHerbivore:
		return "herbivore"
	case SpeciesCarnivore:
		return "carnivore"
	default:
		return "unknown"
	}
}

// Agent is the read-only view the Environment keeps of a live animal.
// The Environment never owns agent lifecycle; the simulation refreshes
// this snapshot every tick before agents run.
type Agent interface {
	ID() uuid.UUID
	Position() Position
	Alive() bool
	Species() Species
}
