package sim

import "github.com/vovakirdan/brickfall/internal/core"

// Impact classifies what a ball collided with.
type Impact int

const (
	ImpactPaddle Impact = iota
	ImpactWall
	ImpactBlock
	ImpactBlockDestroyed
)

// String returns the impact name.
func (i Impact) String() string {
	switch i {
	case ImpactPaddle:
		return "paddle"
	case ImpactWall:
		return "wall"
	case ImpactBlock:
		return "block"
	case ImpactBlockDestroyed:
		return "block_destroyed"
	default:
		return "unknown"
	}
}

// CollisionEvent is emitted for every resolved ball collision.
type CollisionEvent struct {
	Tick   uint64
	Ball   EntityID
	Other  EntityID
	Impact Impact
	Side   core.Side
	Pos    core.Vec2
}

// ExpGain carries experience earned during a tick.
type ExpGain struct {
	Amount int
}

// LevelUp is emitted once per level gained.
type LevelUp struct {
	Tick  uint64
	Level int
}

// queue is a read-once FIFO of plain event records.
type queue[T any] struct {
	items []T
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

// drain returns all queued items and empties the queue.
func (q *queue[T]) drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *queue[T]) len() int {
	return len(q.items)
}

func (q *queue[T]) clear() {
	q.items = nil
}

// TickReport summarizes what happened during one Step.
type TickReport struct {
	Tick     uint64
	Skipped  bool // nothing advanced: round over or waiting on Resume
	Round    RoundState
	Run      RunState
	Finished bool // round reached Won or Lost on this tick

	Collisions      int
	BlocksHit       int
	BlocksDestroyed int
	BallsLost       int
	PowerupsSpawned int
	PowerupsMissed  int
	Pickups         []PowerupClass
	EffectsExpired  int
	Descents        int
	RowsAdded       int
	ExpGained       int
	LevelUps        int
}
