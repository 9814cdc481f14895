// Package imagefind locates candidate images for an upload.
package imagefind

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// Image is a file whose extension is in the allow-list.
type Image struct {
	Path    string // root joined with Rel
	Rel     string // slash separated, relative to the searched root
	Size    int64
	ModTime time.Time
}

// Options controls a search.
type Options struct {
	Recursive bool
	Hidden    bool // include dot files and dot directories
	Limit     int  // stop after this many images per root, 0 for no limit
}

// metaChars cannot appear in an extension inside a brace alternation.
const metaChars = `*?[]{},\/`

// Pattern builds the glob matching exts, e.g. "**/*.{jpg,png}".
func Pattern(exts []string, recursive bool) string {
	names := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
		if ext == "" || strings.ContainsAny(ext, metaChars) || slices.Contains(names, ext) {
			continue
		}
		names = append(names, ext)
	}

	prefix := ""
	if recursive {
		prefix = "**/"
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return prefix + "*." + names[0]
	default:
		return prefix + "*.{" + strings.Join(names, ",") + "}"
	}
}

// Find lists the images under root, sorted by relative path.
func Find(ctx context.Context, root string, exts []string, opts Options) ([]Image, error) {
	pattern := Pattern(exts, opts.Recursive)
	if pattern == "" {
		return nil, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	globOpts := []doublestar.GlobOption{doublestar.WithFilesOnly(), doublestar.WithCaseInsensitive()}
	if !opts.Hidden {
		globOpts = append(globOpts, doublestar.WithNoHidden())
	}

	var images []Image
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(rel string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		fi, err := d.Info()
		if err != nil {
			return nil // removed while walking
		}

		images = append(images, Image{
			Path:    filepath.Join(root, filepath.FromSlash(rel)),
			Rel:     rel,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})

		if opts.Limit > 0 && len(images) >= opts.Limit {
			return fs.SkipAll
		}
		return nil
	}, globOpts...)
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return nil, fmt.Errorf("search %s: %w", root, err)
	}

	slices.SortFunc(images, func(a, b Image) int { return strings.Compare(a.Rel, b.Rel) })
	return images, nil
}

// Match reports whether the slash separated path rel is matched by the glob
// for exts, ignoring case.
func Match(rel string, exts []string, recursive bool) bool {
	pattern := Pattern(exts, recursive)
	if pattern == "" {
		return false
	}
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(rel))
	return err == nil && ok
}

// Result is the outcome of searching one root.
type Result struct {
	Root   string
	Images []Image
}

// FindAll searches every root concurrently. Results keep the order of roots.
func FindAll(ctx context.Context, roots []string, exts []string, opts Options) ([]Result, error) {
	results := make([]Result, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, root := range roots {
		g.Go(func() error {
			images, err := Find(ctx, root, exts, opts)
			if err != nil {
				return err
			}
			results[i] = Result{Root: root, Images: images}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
