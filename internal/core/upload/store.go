package upload

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when a post does not exist.
var ErrNotFound = errors.New("post not found")

// DestinationLocal marks posts kept only in the local store.
const DestinationLocal = "local"

// Record is a stored post and where it was delivered.
type Record struct {
	Post
	Destination string
}

// ListOptions filters Store.List.
type ListOptions struct {
	Hashtag string // exact tag including '#', empty for all posts
	Limit   int
}

// Store persists submitted posts.
type Store interface {
	Save(ctx context.Context, post Post, destination string) error
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}
