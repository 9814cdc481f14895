package upload

import (
	"context"
	"time"

	"github.com/colonyops/pixpost/internal/core/effect"
)

// File is the image chosen in the file picker.
type File struct {
	Name string
	Path string
	Size int64
}

// Post is the field bundle handed to a Submitter.
type Post struct {
	ID          string
	SessionID   string
	FileName    string
	FilePath    string
	Scale       int
	Effect      effect.Effect
	Intensity   float64
	Hashtags    []string
	Description string
	CreatedAt   time.Time
}

// EffectLevel returns the intensity formatted with the precision of the
// effect's step, or an empty string when no effect is active.
func (p Post) EffectLevel() string {
	if p.Effect == effect.None {
		return ""
	}
	return p.Effect.Spec().FormatValue(p.Intensity)
}

// Submitter delivers a post. Implementations must honor ctx cancellation.
type Submitter interface {
	Submit(ctx context.Context, post Post) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, post Post) error

func (f SubmitterFunc) Submit(ctx context.Context, post Post) error {
	return f(ctx, post)
}
