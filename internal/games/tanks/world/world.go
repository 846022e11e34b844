// Package world holds the tank arena simulation: an explicitly owned entity
// registry, the wall/tank/projectile variants, and their collision rules.
//
// Update ordering: World.Update snapshots the member list before iterating.
// A member destroyed earlier in the same pass is skipped, and queries made by
// later members no longer see it. Members spawned during the pass are first
// updated on the next tick.
package world

// Kind tags an entity variant.
type Kind int

const (
	KindWall Kind = iota
	KindTank
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindTank:
		return "tank"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is implemented by Wall, Tank and Projectile.
type Entity interface {
	Kind() Kind
	Update(w *World, dt float64)
	base() *Body
}

// Handle is a stable reference to a registry slot. The zero Handle never
// refers to a live entity, and a Handle goes stale once its entity is destroyed.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never assigned.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	gen uint32
	ent Entity
}

// World is the registry of all live simulation entities.
// It is not safe for concurrent use; the simulation is single-threaded.
type World struct {
	slots []slot
	free  []uint32
	order []Handle // live members in insertion order
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// Spawn registers e and marks it alive. Spawning an entity that is already
// alive returns its existing handle.
func (w *World) Spawn(e Entity) Handle {
	b := e.base()
	if b.alive {
		return b.handle
	}

	var h Handle
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		h = Handle{index: idx, gen: w.slots[idx].gen}
		w.slots[idx].ent = e
	} else {
		h = Handle{index: uint32(len(w.slots)), gen: 1} //nolint:gosec // slot count stays far below 2^32
		w.slots = append(w.slots, slot{gen: 1, ent: e})
	}

	b.handle = h
	b.alive = true
	w.order = append(w.order, h)
	return h
}

// Destroy removes the entity behind h and marks it dead.
// Stale, zero and unknown handles are a no-op and return false.
func (w *World) Destroy(h Handle) bool {
	e, ok := w.Get(h)
	if !ok {
		return false
	}

	e.base().alive = false
	w.release(h.index)

	for i, member := range w.order {
		if member == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// DestroyAll clears every member. No per-entity side effects run (shells in
// flight are not refunded); all outstanding handles become stale.
func (w *World) DestroyAll() {
	for i := range w.slots {
		if w.slots[i].ent == nil {
			continue
		}
		w.slots[i].ent.base().alive = false
		w.release(uint32(i)) //nolint:gosec // bounded by slot count
	}
	w.order = w.order[:0]
}

// release empties a slot and bumps its generation so old handles go stale.
func (w *World) release(idx uint32) {
	s := &w.slots[idx]
	s.ent = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	w.free = append(w.free, idx)
}

// Get returns the live entity behind h.
func (w *World) Get(h Handle) (Entity, bool) {
	if h.IsZero() || int(h.index) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[h.index]
	if s.gen != h.gen || s.ent == nil {
		return nil, false
	}
	return s.ent, true
}

// Tank returns the live tank behind h.
func (w *World) Tank(h Handle) (*Tank, bool) {
	e, ok := w.Get(h)
	if !ok {
		return nil, false
	}
	t, ok := e.(*Tank)
	return t, ok
}

// Len returns the number of live members.
func (w *World) Len() int {
	return len(w.order)
}

// Each calls fn for every live member in insertion order.
// fn must not spawn or destroy entities.
func (w *World) Each(fn func(Entity)) {
	for _, h := range w.order {
		if e, ok := w.Get(h); ok {
			fn(e)
		}
	}
}

// Update advances every member by dt. See the package doc for ordering.
func (w *World) Update(dt float64) {
	snapshot := make([]Handle, len(w.order))
	copy(snapshot, w.order)

	for _, h := range snapshot {
		e, ok := w.Get(h)
		if !ok {
			continue
		}
		e.Update(w, dt)
	}
}

// AllOf returns a snapshot of live members of variant T in insertion order.
func AllOf[T Entity](w *World) []T {
	var out []T
	for _, h := range w.order {
		e, ok := w.Get(h)
		if !ok {
			continue
		}
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Tanks returns all live tanks.
func (w *World) Tanks() []*Tank {
	return AllOf[*Tank](w)
}

// Walls returns all walls.
func (w *World) Walls() []*Wall {
	return AllOf[*Wall](w)
}

// Projectiles returns all live projectiles.
func (w *World) Projectiles() []*Projectile {
	return AllOf[*Projectile](w)
}
