package world

import "github.com/google/uuid"

// ResourceType classifies a depletable environmental resource.
type ResourceType uint8

const (
	ResourcePlant ResourceType = iota
	ResourceWater
	ResourceSmallPrey
	ResourceLargePrey
)

// String returns the resource type name.
func (rt ResourceType) String() string {
	switch rt {
	case ResourcePlant:
		return "plant"
	case ResourceWater:
		return "water"
	case ResourceSmallPrey:
		return "small-prey"
	case ResourceLargePrey:
		return "large-prey"
	default:
		return "unknown"
	}
}

// EnergyValue is the energy an animal gains per unit consumed.
func (rt ResourceType) EnergyValue() float64 {
	switch rt {
	case ResourcePlant:
		return 10
	case ResourceWater:
		return 2
	case ResourceSmallPrey:
		return 15
	case ResourceLargePrey:
		return 25
	default:
		return 0
	}
}

// Resource is a depletable, regenerating environmental item.
// Owned by the Environment; removed once depleted with no regeneration.
type Resource struct {
	ID        uuid.UUID
	Type      ResourceType
	Amount    float64
	RegenRate float64
}

// Depleted reports whether the resource has nothing left to consume.
func (r *Resource) Depleted() bool {
	return r.Amount <= 0
}

// Consume removes up to want units and returns the amount actually taken.
// Requests beyond availability are truncated; consuming a depleted
// resource yields zero.
func (r *Resource) Consume(want float64) float64 {
	if want <= 0 || r.Depleted() {
		return 0
	}
	got := want
	if got > r.Amount {
		got = r.Amount
	}
	r.Amount -= got
	return got
}

// Regenerate grows the resource by its regeneration rate over dt.
func (r *Resource) Regenerate(dt float64) {
	if r.RegenRate > 0 {
		r.Amount += r.RegenRate * dt
	}
}
