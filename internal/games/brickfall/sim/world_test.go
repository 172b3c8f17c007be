package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickfall/internal/core"
)

func TestWorldSpawnIsDeferred(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(KindBall)
	w.Pos.Set(a, core.V2(1, 2))

	assert.NotZero(t, a)
	assert.Empty(t, w.Query(KindBall))
	assert.Equal(t, 0, w.Count(KindBall))
	assert.False(t, w.Alive(a))
	assert.Equal(t, []EntityID{a}, w.Pending(KindBall))

	w.Flush()
	assert.Equal(t, []EntityID{a}, w.Query(KindBall))
	assert.True(t, w.Alive(a))
	assert.Empty(t, w.Pending(KindBall))

	pos, ok := w.Pos.Get(a)
	require.True(t, ok)
	assert.Equal(t, core.V2(1, 2), pos)
}

func TestWorldDespawnIsDeferred(t *testing.T) {
	w := NewWorld()
	ids := []EntityID{w.Spawn(KindBlock), w.Spawn(KindBlock), w.Spawn(KindBlock)}
	for _, id := range ids {
		w.Health.Set(id, 1)
	}
	w.Flush()

	w.Despawn(ids[1])
	w.Despawn(ids[1])

	assert.False(t, w.Alive(ids[1]))
	assert.Equal(t, 3, w.Count(KindBlock), "count changes only at flush")
	assert.Equal(t, []EntityID{ids[0], ids[2]}, w.Query(KindBlock))
	assert.True(t, w.Health.Has(ids[1]), "components stay readable until flush")

	w.Flush()
	assert.Equal(t, 2, w.Count(KindBlock))
	assert.Equal(t, []EntityID{ids[0], ids[2]}, w.Query(KindBlock), "spawn order kept")
	assert.False(t, w.Health.Has(ids[1]))
	assert.Equal(t, []EntityID{ids[0], ids[2]}, w.Health.Entities())

	_, known := w.KindOf(ids[1])
	assert.False(t, known)
}

func TestWorldSpawnThenDespawnBeforeFlush(t *testing.T) {
	w := NewWorld()
	id := w.Spawn(KindPowerup)
	w.Powerup.Set(id, EnlargeBall)
	w.Despawn(id)
	w.Flush()

	assert.Equal(t, 0, w.Count(KindPowerup))
	assert.False(t, w.Powerup.Has(id))
}

func TestWorldSingle(t *testing.T) {
	w := NewWorld()

	_, n, ok := w.Single(KindPaddle)
	assert.False(t, ok)
	assert.Equal(t, 0, n)

	p := w.Spawn(KindPaddle)
	w.Flush()
	id, n, ok := w.Single(KindPaddle)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, p, id)

	w.Spawn(KindPaddle)
	w.Flush()
	_, n, ok = w.Single(KindPaddle)
	assert.False(t, ok)
	assert.Equal(t, 2, n)
}

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	w.Spawn(KindWall)
	w.Flush()
	w.Spawn(KindBall)

	w.Clear()
	w.Flush()
	assert.Equal(t, 0, w.Count(KindWall))
	assert.Equal(t, 0, w.Count(KindBall))
	assert.Equal(t, 0, w.Pos.Len())
	assert.Equal(t, EntityID(1), w.Spawn(KindBall), "handles restart after clear")
}

func TestStoreRemoveKeepsOrder(t *testing.T) {
	s := NewStore[string]()
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(1, "A")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "A", s.MustGet(1))

	s.Remove(1)
	s.Remove(42)
	assert.Equal(t, []EntityID{3, 2}, s.Entities())

	s.RemoveBatch([]EntityID{3, 9})
	assert.Equal(t, []EntityID{2}, s.Entities())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(2)
	assert.False(t, ok)
}
