package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(t.TempDir(), DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func appliedList(t *testing.T, database *DB) []int {
	t.Helper()
	rows, err := database.Conn().QueryContext(context.Background(), "SELECT version FROM schema_migrations ORDER BY version")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var versions []int
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	require.NoError(t, rows.Err())
	return versions
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "posts", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
	for _, m := range migrations {
		assert.NotEmpty(t, m.UpSQL)
		assert.NotEmpty(t, m.DownSQL)
	}
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		in      string
		version int
		name    string
		up      bool
		wantErr bool
	}{
		{in: "0001_posts.up.sql", version: 1, name: "posts", up: true},
		{in: "0012_add_thing.down.sql", version: 12, name: "add_thing"},
		{in: "0001_posts.sql", wantErr: true},
		{in: "posts.up.sql", wantErr: true},
		{in: "0000_zero.up.sql", wantErr: true},
		{in: "abc_name.up.sql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			version, name, up, err := parseFilename(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.up, up)
		})
	}
}

func TestOpen_AppliesMigrations(t *testing.T) {
	database := openTestDB(t)

	assert.Equal(t, []int{1, 2}, appliedList(t, database))

	_, err := database.Conn().ExecContext(context.Background(), "SELECT destination FROM posts LIMIT 0")
	require.NoError(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()

	first, err := Open(dir, DefaultOpenOptions())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(dir, DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	assert.Equal(t, []int{1, 2}, appliedList(t, second))
}

func TestMigrateDown(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, MigrateDown(ctx, database.Conn(), 1))
	assert.Equal(t, []int{1}, appliedList(t, database))

	_, err := database.Conn().ExecContext(ctx, "SELECT destination FROM posts LIMIT 0")
	require.Error(t, err)

	require.Error(t, MigrateDown(ctx, database.Conn(), 5))
	require.Error(t, MigrateDown(ctx, database.Conn(), 0))
}

func TestQueries_Posts(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	q := database.Queries()

	for i, tags := range []string{"#cat #sun", "#dog", "#cat"} {
		err := q.InsertPost(ctx, Post{
			ID:          string(rune('a' + i)),
			SessionID:   "s",
			FileName:    "f.png",
			FilePath:    "/f.png",
			Scale:       100,
			Effect:      "none",
			Hashtags:    tags,
			Destination: "local",
			CreatedAt:   int64(i),
		})
		require.NoError(t, err)
	}

	n, err := q.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	all, err := q.ListPosts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	cats, err := q.ListPostsByHashtag(ctx, "#cat", 10)
	require.NoError(t, err)
	require.Len(t, cats, 2)

	sun, err := q.ListPostsByHashtag(ctx, "#su", 10)
	require.NoError(t, err)
	assert.Empty(t, sun, "partial tags do not match")

	deleted, err := q.DeletePost(ctx, "b")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = q.DeletePost(ctx, "b")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestWithTx_Rollback(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	err := database.WithTx(ctx, func(q *Queries) error {
		if err := q.InsertPost(ctx, Post{ID: "x", SessionID: "s", FileName: "f", FilePath: "f", Effect: "none", Destination: "local"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := database.Queries().CountPosts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
