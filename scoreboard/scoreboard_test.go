package scoreboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/crunch-time/event"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestResultScoreOrdering(t *testing.T) {
	a := Result{SuccessCount: 2, GameCount: 2}
	b := Result{SuccessCount: 1, GameCount: 9, Duration: time.Hour}
	c := Result{SuccessCount: 1, GameCount: 3}

	assert.Greater(t, a.Score(), b.Score(), "successes dominate")
	assert.Greater(t, b.Score(), c.Score(), "games break ties")
}

func TestRedisStoreSaveAndTop(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Result{ID: "low", SuccessCount: 0, GameCount: 1, Cause: "timeout"}))
	require.NoError(t, store.Save(ctx, Result{ID: "high", SuccessCount: 3, GameCount: 4, Cause: "fired"}))
	require.NoError(t, store.Save(ctx, Result{ID: "mid", SuccessCount: 1, GameCount: 2, Cause: "missed_calls"}))

	top, err := store.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
	assert.Equal(t, "missed_calls", top[1].Cause)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.True(t, mr.Exists(resultKey("low")))
	ttl := mr.TTL(resultKey("low"))
	assert.Equal(t, DefaultTTL, ttl)
}

func TestRedisStoreEmpty(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	_, err := store.Top(ctx, 5)
	assert.ErrorIs(t, err, ErrNoResults)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRedisStorePrunesExpired(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Result{ID: "old", SuccessCount: 5}))
	require.NoError(t, store.Save(ctx, Result{ID: "new", SuccessCount: 1}))

	mr.FastForward(DefaultTTL + time.Second)
	require.NoError(t, store.Save(ctx, Result{ID: "fresh", SuccessCount: 0}))

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "fresh", top[0].ID)

	members, err := mr.ZMembers(keyBoard)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, members)
}

func TestConnectRetriesThenFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Nothing listens on this address
	_, err := Connect(ctx, Options{Addr: "127.0.0.1:1", Retries: 1})
	assert.Error(t, err)
}

func TestConnectSucceeds(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := Connect(context.Background(), Options{Addr: mr.Addr(), Retries: 2})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), Result{ID: "x"}))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Top(ctx, 3)
	assert.ErrorIs(t, err, ErrNoResults)

	require.NoError(t, store.Save(ctx, Result{ID: "a", SuccessCount: 1}))
	require.NoError(t, store.Save(ctx, Result{ID: "b", SuccessCount: 2}))

	top, err := store.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "b", top[0].ID)

	n, _ := store.Count(ctx)
	assert.Equal(t, int64(2), n)
}

func TestRecorderSavesGameLost(t *testing.T) {
	store, _ := setupTestRedis(t)
	started := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	rec := NewRecorder(store, SessionInfo{SessionID: "sess", Seed: 42, Scene: "office", Started: started})
	rec.now = func() time.Time { return started.Add(95 * time.Second) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go rec.Run(ctx)

	queue := event.NewEventQueue()
	router := event.NewRouter(queue)
	router.Register(rec)
	queue.Push(event.GameEvent{Type: event.EventIterationStarted})
	queue.Push(event.GameEvent{Type: event.EventGameLost, Payload: &event.GameLostPayload{
		Cause: "timeout", GameCount: 3, SuccessCount: 2, Completion: 0.4,
	}})
	router.DispatchAll()

	select {
	case res := <-rec.Saved():
		assert.Equal(t, "sess", res.SessionID)
		assert.Equal(t, int64(42), res.Seed)
		assert.Equal(t, 95*time.Second, res.Duration)
		assert.NotEmpty(t, res.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("result was not saved")
	}

	top, err := store.Top(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, top[0].SuccessCount)
	assert.Equal(t, "timeout", top[0].Cause)
}

func TestRecorderIgnoresMalformedPayload(t *testing.T) {
	rec := NewRecorder(NewMemoryStore(), SessionInfo{})
	rec.HandleEvent(event.GameEvent{Type: event.EventGameLost, Payload: "lost"})

	assert.Len(t, rec.pending, 0)
}

func TestTopLines(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.Empty(t, TopLines(ctx, store, 5))

	require.NoError(t, store.Save(ctx, Result{ID: "a", SuccessCount: 2, GameCount: 3, Duration: 61500 * time.Millisecond, Cause: "fired"}))
	lines := TopLines(ctx, store, 5)
	require.Len(t, lines, 1)
	assert.Equal(t, "1. 2 wins / 3 games  1m1s  (fired)", lines[0])
}
