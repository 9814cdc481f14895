package commands

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/upload"
)

func seedPosts(t *testing.T, app *App) {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	posts := []upload.Post{
		{ID: "aaaa1111-0000", FileName: "sea.png", Scale: 100, Hashtags: []string{"#sea"}, CreatedAt: base},
		{ID: "bbbb2222-0000", FileName: "sun.jpg", Scale: 50, Effect: effect.Sepia, Intensity: 30, Hashtags: []string{"#sun", "#sea"}, CreatedAt: base.Add(time.Hour)},
		{ID: "cccc3333-0000", FileName: "city.jpg", Scale: 75, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, p := range posts {
		require.NoError(t, app.Posts.Save(context.Background(), p, ""))
	}
}

func TestHistoryCmd_JSON(t *testing.T) {
	flags := testFlags(t)
	app := testApp(t, flags)
	seedPosts(t, app)

	out, err := runCmd(t, NewHistoryCmd(flags, app), "history", "--json")
	require.NoError(t, err)

	var infos []postInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "cccc3333-0000", infos[0].ID, "newest first")
	assert.Equal(t, "sepia", infos[1].Effect)
	assert.Equal(t, "30", infos[1].Level)
	assert.Equal(t, upload.DestinationLocal, infos[1].Destination)
}

func TestHistoryCmd_Tag(t *testing.T) {
	flags := testFlags(t)
	app := testApp(t, flags)
	seedPosts(t, app)

	out, err := runCmd(t, NewHistoryCmd(flags, app), "history", "--tag", "SEA", "--json")
	require.NoError(t, err)

	var infos []postInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Contains(t, info.Hashtags, "#sea")
	}

	_, err = runCmd(t, NewHistoryCmd(flags, app), "history", "--tag", "#no spaces")
	require.Error(t, err)
}

func TestHistoryCmd_Table(t *testing.T) {
	flags := testFlags(t)
	app := testApp(t, flags)
	seedPosts(t, app)

	out, err := runCmd(t, NewHistoryCmd(flags, app), "history", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "cccc3333")
	assert.Contains(t, out, "sepia 30")
	assert.NotContains(t, out, "aaaa1111")
}

func TestHistoryCmd_Rm(t *testing.T) {
	flags := testFlags(t)
	app := testApp(t, flags)
	seedPosts(t, app)

	out, err := runCmd(t, NewHistoryCmd(flags, app), "history", "rm", "bbbb")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted bbbb2222-0000")

	_, err = app.Posts.Get(context.Background(), "bbbb2222-0000")
	require.ErrorIs(t, err, upload.ErrNotFound)

	_, err = runCmd(t, NewHistoryCmd(flags, app), "history", "rm", "zzzz")
	require.ErrorContains(t, err, "not found")
}
