package imagefind

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultExts = []string{".jpg", ".jpeg", ".png"}

func touch(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func rels(images []Image) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.Rel
	}
	return out
}

func TestPattern(t *testing.T) {
	tests := []struct {
		name      string
		exts      []string
		recursive bool
		want      string
	}{
		{name: "defaults", exts: defaultExts, recursive: true, want: "**/*.{jpg,jpeg,png}"},
		{name: "single", exts: []string{"PNG"}, want: "*.png"},
		{name: "duplicates and blanks", exts: []string{".png", "", ".PNG", " .gif "}, want: "*.{png,gif}"},
		{name: "meta characters dropped", exts: []string{".p{n}g", ".jpg"}, want: "*.jpg"},
		{name: "empty", exts: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pattern(tt.exts, tt.recursive))
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"a.png",
		"b.JPG",
		"notes.txt",
		"nested/c.jpeg",
		"nested/deeper/d.png",
		".hidden/e.png",
		".f.png",
	)

	t.Run("top level only", func(t *testing.T) {
		images, err := Find(context.Background(), root, defaultExts, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.JPG"}, rels(images))
		assert.Equal(t, filepath.Join(root, "a.png"), images[0].Path)
		assert.Equal(t, int64(1), images[0].Size)
	})

	t.Run("recursive", func(t *testing.T) {
		images, err := Find(context.Background(), root, defaultExts, Options{Recursive: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.JPG", "nested/c.jpeg", "nested/deeper/d.png"}, rels(images))
	})

	t.Run("hidden included", func(t *testing.T) {
		images, err := Find(context.Background(), root, defaultExts, Options{Recursive: true, Hidden: true})
		require.NoError(t, err)
		assert.Contains(t, rels(images), ".hidden/e.png")
		assert.Contains(t, rels(images), ".f.png")
	})

	t.Run("limit", func(t *testing.T) {
		images, err := Find(context.Background(), root, defaultExts, Options{Recursive: true, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("not a directory", func(t *testing.T) {
		_, err := Find(context.Background(), filepath.Join(root, "a.png"), defaultExts, Options{})
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Find(ctx, root, defaultExts, Options{Recursive: true})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFindAll(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	touch(t, first, "one.png")
	touch(t, second, "two.jpg", "three.jpeg")

	results, err := FindAll(context.Background(), []string{first, second}, defaultExts, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, first, results[0].Root)
	assert.Equal(t, []string{"one.png"}, rels(results[0].Images))
	assert.Equal(t, []string{"three.jpeg", "two.jpg"}, rels(results[1].Images))

	_, err = FindAll(context.Background(), []string{first, filepath.Join(first, "missing")}, defaultExts, Options{})
	require.Error(t, err)
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("dir/Photo.PNG", defaultExts, true))
	assert.False(t, Match("dir/photo.png", defaultExts, false))
	assert.True(t, Match("photo.jpeg", defaultExts, false))
	assert.False(t, Match("photo.gif", defaultExts, false))
	assert.False(t, Match("photo.png", nil, false))
}
