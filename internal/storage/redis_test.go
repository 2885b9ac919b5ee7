package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/chronicle-engine/pkg/chronicle"
	"github.com/jwebster45206/chronicle-engine/pkg/timeline"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	store, err := NewRedisStorage("redis://"+mr.Addr(), ttl, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		mr.Close()
	})
	return store, mr
}

func sampleSequence() timeline.Sequence {
	return timeline.NewSequence([]timeline.Event{
		{Date: "2201.02.03", Definition: "timeline_new_colony", Payload: timeline.KeyValueMap(map[string]string{"colony_name": "新港"})},
		{Date: "2200.01.01", Definition: "timeline_encountered_leviathan", Payload: timeline.NumberList(0, 39)},
	})
}

func TestRedisStorage_SessionRoundTrip(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	s := NewSession("save.sav", sampleSequence())
	require.NoError(t, store.SaveSession(ctx, s))

	assert.True(t, mr.Exists("session:"+s.ID.String()))
	assert.Equal(t, time.Hour, mr.TTL("session:"+s.ID.String()))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, "save.sav", loaded.SourceName)
	require.Len(t, loaded.Events, 2)
	assert.Equal(t, "2200.01.01", loaded.Events[0].Date)
	assert.Equal(t, []int{0, 39}, loaded.Events[0].Payload.Numbers)
	v, ok := loaded.Events[1].Field("colony_name")
	assert.True(t, ok)
	assert.Equal(t, "新港", v)
}

func TestRedisStorage_LoadMissing(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_Overrides(t *testing.T) {
	store, mr := setupTestRedis(t, 30*time.Minute)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.UpdateOverrides(ctx, id, map[string]string{
		"colony_0_2200.01.01":   " 新港 ",
		chronicle.EmpireNameKey: "人类联邦",
	}))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:"+id.String()+":overrides"))

	got, err := store.LoadOverrides(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chronicle.Overrides{
		"colony_0_2200.01.01":   "新港",
		chronicle.EmpireNameKey: "人类联邦",
	}, got)

	require.NoError(t, store.UpdateOverrides(ctx, id, map[string]string{
		chronicle.EmpireNameKey: "  ",
		"leviathan_0 39":        "堡垒",
	}))
	got, err = store.LoadOverrides(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, chronicle.Overrides{
		"colony_0_2200.01.01": "新港",
		"leviathan_0 39":      "堡垒",
	}, got)
}

func TestRedisStorage_DeleteSession(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	s := NewSession("", sampleSequence())
	require.NoError(t, store.SaveSession(ctx, s))
	require.NoError(t, store.UpdateOverrides(ctx, s.ID, map[string]string{"k": "v"}))

	require.NoError(t, store.DeleteSession(ctx, s.ID))
	assert.False(t, mr.Exists("session:"+s.ID.String()))
	assert.False(t, mr.Exists("session:"+s.ID.String()+":overrides"))
}

func TestRedisStorage_Expiry(t *testing.T) {
	store, mr := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	s := NewSession("", sampleSequence())
	require.NoError(t, store.SaveSession(ctx, s))
	mr.FastForward(2 * time.Minute)

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestNewRedisStorage_BadURL(t *testing.T) {
	_, err := NewRedisStorage("not a url", time.Hour, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
