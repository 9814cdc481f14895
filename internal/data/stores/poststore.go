package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/data/db"
	"github.com/colonyops/pixpost/pkg/utils"
)

const (
	defaultListLimit = 50
	saveAttempts     = 3
	busyBackoff      = 50 * time.Millisecond
	busyJitterMillis = 25
)

// PostStore implements upload.Store using SQLite.
type PostStore struct {
	db *db.DB
}

var _ upload.Store = (*PostStore)(nil)

// NewPostStore creates a new SQLite-backed post store.
func NewPostStore(db *db.DB) *PostStore {
	return &PostStore{db: db}
}

// Save persists a post together with the destination it was delivered to.
func (s *PostStore) Save(ctx context.Context, post upload.Post, destination string) error {
	if destination == "" {
		destination = upload.DestinationLocal
	}

	row := db.Post{
		ID:          post.ID,
		SessionID:   post.SessionID,
		FileName:    post.FileName,
		FilePath:    post.FilePath,
		Scale:       int64(post.Scale),
		Effect:      post.Effect.String(),
		Intensity:   post.Intensity,
		Hashtags:    strings.Join(post.Hashtags, " "),
		Description: post.Description,
		Destination: destination,
		CreatedAt:   post.CreatedAt.UnixNano(),
	}

	var err error
	for attempt := range saveAttempts {
		err = s.db.Queries().InsertPost(ctx, row)
		if !IsBusyError(err) {
			break
		}
		if attempt < saveAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(busyDelay(attempt)):
			}
		}
	}
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// Get returns a post by ID. Returns upload.ErrNotFound if not found.
func (s *PostStore) Get(ctx context.Context, id string) (upload.Record, error) {
	row, err := s.db.Queries().GetPost(ctx, id)
	if IsNotFoundError(err) {
		return upload.Record{}, upload.ErrNotFound
	}
	if err != nil {
		return upload.Record{}, fmt.Errorf("get post: %w", err)
	}
	return rowToRecord(row), nil
}

// List returns posts newest first.
func (s *PostStore) List(ctx context.Context, opts upload.ListOptions) ([]upload.Record, error) {
	limit := int64(opts.Limit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	var (
		rows []db.Post
		err  error
	)
	if opts.Hashtag != "" {
		rows, err = s.db.Queries().ListPostsByHashtag(ctx, strings.ToLower(opts.Hashtag), limit)
	} else {
		rows, err = s.db.Queries().ListPosts(ctx, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	result := make([]upload.Record, 0, len(rows))
	for _, row := range rows {
		result = append(result, rowToRecord(row))
	}
	return result, nil
}

// Count returns the total number of posts.
func (s *PostStore) Count(ctx context.Context) (int64, error) {
	n, err := s.db.Queries().CountPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// Delete removes a post. Returns upload.ErrNotFound if it does not exist.
func (s *PostStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.db.Queries().DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if !deleted {
		return upload.ErrNotFound
	}
	return nil
}

func rowToRecord(row db.Post) upload.Record {
	fx, err := effect.Parse(row.Effect)
	if err != nil {
		fx = effect.None
	}

	var tags []string
	if row.Hashtags != "" {
		tags = strings.Split(row.Hashtags, " ")
	}

	return upload.Record{
		Post: upload.Post{
			ID:          row.ID,
			SessionID:   row.SessionID,
			FileName:    row.FileName,
			FilePath:    row.FilePath,
			Scale:       int(row.Scale),
			Effect:      fx,
			Intensity:   row.Intensity,
			Hashtags:    tags,
			Description: row.Description,
			CreatedAt:   time.Unix(0, row.CreatedAt),
		},
		Destination: row.Destination,
	}
}

// busyDelay grows linearly with attempt; the jitter keeps concurrent writers
// from retrying in lockstep.
func busyDelay(attempt int) time.Duration {
	jitter := time.Duration(utils.RandomIntInRange(0, busyJitterMillis)) * time.Millisecond
	return busyBackoff*time.Duration(attempt+1) + jitter
}
