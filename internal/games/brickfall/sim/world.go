package sim

import "github.com/vovakirdan/brickfall/internal/core"

// EntityID is a stable handle into the world's side tables.
// Zero is never issued.
type EntityID uint32

// Kind tags what an entity is. Each entity has exactly one kind.
type Kind uint8

const (
	KindPaddle Kind = iota + 1
	KindWall
	KindBlock
	KindBall
	KindPowerup
	KindDamageText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindWall:
		return "wall"
	case KindBlock:
		return "block"
	case KindBall:
		return "ball"
	case KindPowerup:
		return "powerup"
	case KindDamageText:
		return "damage_text"
	default:
		return "unknown"
	}
}

type lifecycle uint8

const (
	spawning lifecycle = iota
	live
	despawning
)

type entry struct {
	kind  Kind
	state lifecycle
}

// World is the entity arena. Spawns and despawns requested during a phase
// are buffered and only become visible to Query and Count after Flush.
// Components of a pending spawn may be written right away.
type World struct {
	next     EntityID
	entities map[EntityID]*entry
	byKind   map[Kind][]EntityID // live entities in spawn order

	spawnQueue   []EntityID
	despawnQueue []EntityID

	Pos     *Store[core.Vec2]
	Vel     *Store[core.Vec2]
	Size    *Store[core.Vec2]
	Health  *Store[int]
	Attack  *Store[int]
	Powerup *Store[PowerupClass]
	Fade    *Store[*Timer]
	Damage  *Store[int]
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{}
	w.reset()
	return w
}

func (w *World) reset() {
	w.next = 0
	w.entities = make(map[EntityID]*entry)
	w.byKind = make(map[Kind][]EntityID)
	w.spawnQueue = make([]EntityID, 0, 16)
	w.despawnQueue = make([]EntityID, 0, 16)
	w.Pos = NewStore[core.Vec2]()
	w.Vel = NewStore[core.Vec2]()
	w.Size = NewStore[core.Vec2]()
	w.Health = NewStore[int]()
	w.Attack = NewStore[int]()
	w.Powerup = NewStore[PowerupClass]()
	w.Fade = NewStore[*Timer]()
	w.Damage = NewStore[int]()
}

// Spawn reserves a handle for a new entity of the given kind.
// The entity joins its population at the next Flush.
func (w *World) Spawn(kind Kind) EntityID {
	w.next++
	id := w.next
	w.entities[id] = &entry{kind: kind, state: spawning}
	w.spawnQueue = append(w.spawnQueue, id)
	return id
}

// Despawn queues removal of an entity. Unknown handles and repeated
// requests are ignored.
func (w *World) Despawn(id EntityID) {
	e, ok := w.entities[id]
	if !ok || e.state == despawning {
		return
	}
	e.state = despawning
	w.despawnQueue = append(w.despawnQueue, id)
}

// Flush applies buffered spawns, then buffered despawns.
func (w *World) Flush() {
	for _, id := range w.spawnQueue {
		e := w.entities[id]
		if e.state == spawning {
			e.state = live
		}
		w.byKind[e.kind] = append(w.byKind[e.kind], id)
	}
	w.spawnQueue = w.spawnQueue[:0]

	if len(w.despawnQueue) == 0 {
		return
	}

	gone := make(map[EntityID]struct{}, len(w.despawnQueue))
	for _, id := range w.despawnQueue {
		gone[id] = struct{}{}
	}
	for kind, ids := range w.byKind {
		kept := ids[:0]
		for _, id := range ids {
			if _, drop := gone[id]; !drop {
				kept = append(kept, id)
			}
		}
		w.byKind[kind] = kept
	}
	for _, id := range w.despawnQueue {
		delete(w.entities, id)
	}
	w.Pos.RemoveBatch(w.despawnQueue)
	w.Vel.RemoveBatch(w.despawnQueue)
	w.Size.RemoveBatch(w.despawnQueue)
	w.Health.RemoveBatch(w.despawnQueue)
	w.Attack.RemoveBatch(w.despawnQueue)
	w.Powerup.RemoveBatch(w.despawnQueue)
	w.Fade.RemoveBatch(w.despawnQueue)
	w.Damage.RemoveBatch(w.despawnQueue)
	w.despawnQueue = w.despawnQueue[:0]
}

// Clear drops every entity and pending request.
func (w *World) Clear() {
	w.reset()
}

// KindOf returns the kind of a known entity.
func (w *World) KindOf(id EntityID) (Kind, bool) {
	e, ok := w.entities[id]
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// Alive reports whether id is a flushed entity with no pending despawn.
func (w *World) Alive(id EntityID) bool {
	e, ok := w.entities[id]
	return ok && e.state == live
}

// Query returns the live entities of a kind in spawn order, leaving out
// those already queued for despawn. The slice is a copy.
func (w *World) Query(kind Kind) []EntityID {
	ids := w.byKind[kind]
	out := make([]EntityID, 0, len(ids))
	for _, id := range ids {
		if w.entities[id].state == live {
			out = append(out, id)
		}
	}
	return out
}

// Pending returns entities of a kind spawned since the last Flush.
func (w *World) Pending(kind Kind) []EntityID {
	var out []EntityID
	for _, id := range w.spawnQueue {
		if e := w.entities[id]; e.kind == kind && e.state == spawning {
			out = append(out, id)
		}
	}
	return out
}

// Count returns the size of a flushed population, including entities
// whose despawn is still pending.
func (w *World) Count(kind Kind) int {
	return len(w.byKind[kind])
}

// Single returns the only live entity of a kind. ok is false when the
// population is empty or holds more than one entity.
func (w *World) Single(kind Kind) (id EntityID, n int, ok bool) {
	ids := w.Query(kind)
	if len(ids) != 1 {
		return 0, len(ids), false
	}
	return ids[0], 1, true
}

// Box returns the world-space collision box of an entity.
func (w *World) Box(id EntityID) core.AABB {
	return core.BoxAt(w.Pos.MustGet(id), w.Size.MustGet(id))
}
