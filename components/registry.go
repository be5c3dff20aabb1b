package components

import (
	"github.com/yohamta/donburi"
)

// RegistryData maps stable ids to live entities. Removing an id frees the
// slot, so a late event for it resolves to nothing instead of a dangling entry.
type RegistryData struct {
	nextID      uint64
	Agents      map[uint64]donburi.Entity
	Projectiles map[uint64]donburi.Entity
}

var Registry = donburi.NewComponentType[RegistryData]()

func NewRegistry() RegistryData {
	return RegistryData{
		Agents:      make(map[uint64]donburi.Entity),
		Projectiles: make(map[uint64]donburi.Entity),
	}
}

// NextID issues a fresh id. Ids are never reused within a world.
func (r *RegistryData) NextID() uint64 {
	r.nextID++
	return r.nextID
}

// Agent resolves an agent id to its live entry.
func (r *RegistryData) Agent(w donburi.World, id uint64) (*donburi.Entry, bool) {
	return lookup(w, r.Agents, id)
}

// Projectile resolves a projectile id to its live entry.
func (r *RegistryData) Projectile(w donburi.World, id uint64) (*donburi.Entry, bool) {
	return lookup(w, r.Projectiles, id)
}

func lookup(w donburi.World, m map[uint64]donburi.Entity, id uint64) (*donburi.Entry, bool) {
	ent, ok := m[id]
	if !ok {
		return nil, false
	}
	if !w.Valid(ent) {
		delete(m, id)
		return nil, false
	}
	return w.Entry(ent), true
}
