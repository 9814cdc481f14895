package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/upload"
)

// Local keeps posts in the local store only.
type Local struct {
	store upload.Store
	log   zerolog.Logger
}

var _ upload.Submitter = (*Local)(nil)

// NewLocal creates a submitter backed by store.
func NewLocal(store upload.Store) *Local {
	return &Local{store: store, log: logging.Component("submit.local")}
}

func (l *Local) Submit(ctx context.Context, post upload.Post) error {
	if err := l.store.Save(ctx, post, upload.DestinationLocal); err != nil {
		return fmt.Errorf("store post: %w", err)
	}
	l.log.Debug().Ctx(ctx).Str("post_id", post.ID).Msg("post stored")
	return nil
}

// Recording forwards posts to Next and records every delivered post in Store
// under Destination. A failed record is logged but does not fail the
// submission, since the post has already been delivered.
type Recording struct {
	Next        upload.Submitter
	Store       upload.Store
	Destination string
}

var _ upload.Submitter = (*Recording)(nil)

func (r *Recording) Submit(ctx context.Context, post upload.Post) error {
	if err := r.Next.Submit(ctx, post); err != nil {
		return err
	}

	if err := r.Store.Save(ctx, post, r.Destination); err != nil {
		log := logging.Component("submit")
		log.Warn().Ctx(ctx).Err(err).Str("post_id", post.ID).Msg("record delivered post")
	}
	return nil
}

// New picks the submitter for the configured endpoint. An empty endpoint
// stores posts locally; otherwise posts are sent over HTTP and recorded.
func New(endpoint string, timeout time.Duration, store upload.Store) upload.Submitter {
	if endpoint == "" {
		return NewLocal(store)
	}
	return &Recording{
		Next:        NewHTTP(endpoint, timeout),
		Store:       store,
		Destination: endpoint,
	}
}
