package stores

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/data/db"
)

func newPostStore(t *testing.T) *PostStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err, "Open")
	t.Cleanup(func() { _ = database.Close() })
	return NewPostStore(database)
}

func samplePost(id string, created time.Time, tags ...string) upload.Post {
	return upload.Post{
		ID:          id,
		SessionID:   "session-" + id,
		FileName:    id + ".png",
		FilePath:    "/pics/" + id + ".png",
		Scale:       75,
		Effect:      effect.Sepia,
		Intensity:   30,
		Hashtags:    tags,
		Description: "post " + id,
		CreatedAt:   created,
	}
}

func TestPostStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := newPostStore(t)

		post := samplePost("a", time.Now(), "#cat", "#кот")
		require.NoError(t, store.Save(ctx, post, ""))

		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, upload.DestinationLocal, got.Destination)
		assert.Equal(t, post.SessionID, got.SessionID)
		assert.Equal(t, 75, got.Scale)
		assert.Equal(t, effect.Sepia, got.Effect)
		assert.InDelta(t, 30, got.Intensity, 0.001)
		assert.Equal(t, []string{"#cat", "#кот"}, got.Hashtags)
		assert.Equal(t, post.CreatedAt.UnixNano(), got.CreatedAt.UnixNano())
	})

	t.Run("get missing", func(t *testing.T) {
		store := newPostStore(t)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, upload.ErrNotFound)
	})

	t.Run("list newest first with limit", func(t *testing.T) {
		store := newPostStore(t)

		base := time.Now()
		for i, id := range []string{"first", "second", "third"} {
			require.NoError(t, store.Save(ctx, samplePost(id, base.Add(time.Duration(i)*time.Second)), "https://example.com"))
		}

		items, err := store.List(ctx, upload.ListOptions{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "third", items[0].ID)
		assert.Equal(t, "first", items[2].ID)
		assert.Equal(t, "https://example.com", items[0].Destination)
		assert.Empty(t, items[0].Hashtags)

		limited, err := store.List(ctx, upload.ListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("list by hashtag", func(t *testing.T) {
		store := newPostStore(t)

		now := time.Now()
		require.NoError(t, store.Save(ctx, samplePost("a", now, "#cat", "#sun"), ""))
		require.NoError(t, store.Save(ctx, samplePost("b", now, "#dog"), ""))
		require.NoError(t, store.Save(ctx, samplePost("c", now, "#catnip"), ""))

		items, err := store.List(ctx, upload.ListOptions{Hashtag: "#CAT"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].ID)
	})

	t.Run("count and delete", func(t *testing.T) {
		store := newPostStore(t)

		require.NoError(t, store.Save(ctx, samplePost("a", time.Now()), ""))
		require.NoError(t, store.Save(ctx, samplePost("b", time.Now()), ""))

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		require.NoError(t, store.Delete(ctx, "a"))
		assert.ErrorIs(t, store.Delete(ctx, "a"), upload.ErrNotFound)

		n, err = store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("duplicate id", func(t *testing.T) {
		store := newPostStore(t)

		require.NoError(t, store.Save(ctx, samplePost("a", time.Now()), ""))
		assert.Error(t, store.Save(ctx, samplePost("a", time.Now()), ""))
	})
}

func TestOpenDB_RecoversFromCorruption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, db.FileName)
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 512), 0o644))

	database, err := OpenDB(dir, db.DefaultOpenOptions(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	backups, err := filepath.Glob(path + ".corrupt.*")
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestErrorClassifiers(t *testing.T) {
	assert.False(t, IsCorruptionError(nil))
	assert.False(t, IsBusyError(nil))
	assert.False(t, IsCorruptionError(assert.AnError))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
}

func TestBusyDelay(t *testing.T) {
	for attempt := range saveAttempts {
		base := busyBackoff * time.Duration(attempt+1)
		for range 20 {
			d := busyDelay(attempt)
			assert.GreaterOrEqual(t, d, base)
			assert.LessOrEqual(t, d, base+busyJitterMillis*time.Millisecond)
		}
	}
}
