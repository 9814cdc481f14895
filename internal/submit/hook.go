package submit

import (
	"context"
	"strconv"
	"strings"

	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/pkg/executil"
	"github.com/colonyops/pixpost/pkg/tmpl"
)

// hookData is the template data of an on_success command.
type hookData struct {
	ID          string
	File        string
	Path        string
	Scale       int
	Effect      string
	Level       string
	Hashtags    []string
	Description string
}

// Hook runs a shell command after Next delivered a post. The command is a
// template rendered with the post fields; the same fields are exported as
// PIXPOST_* environment variables. Hook failures are logged and do not fail
// the submission.
type Hook struct {
	Next    upload.Submitter
	Command string
	Run     executil.Runner
}

var _ upload.Submitter = (*Hook)(nil)

// NewHook wraps next with a shell hook.
func NewHook(next upload.Submitter, command string) *Hook {
	return &Hook{Next: next, Command: command, Run: executil.RunSh}
}

func (h *Hook) Submit(ctx context.Context, post upload.Post) error {
	if err := h.Next.Submit(ctx, post); err != nil {
		return err
	}

	log := logging.Component("submit.hook").With().Str("post_id", post.ID).Logger()

	cmd, err := tmpl.Render(h.Command, hookData{
		ID:          post.ID,
		File:        post.FileName,
		Path:        post.FilePath,
		Scale:       post.Scale,
		Effect:      post.Effect.String(),
		Level:       post.EffectLevel(),
		Hashtags:    post.Hashtags,
		Description: post.Description,
	})
	if err != nil {
		log.Warn().Err(err).Msg("render on_success hook")
		return nil
	}

	if err := h.Run(ctx, "", cmd, hookEnv(post)...); err != nil {
		log.Warn().Err(err).Str("cmd", cmd).Msg("on_success hook failed")
		return nil
	}
	log.Debug().Str("cmd", cmd).Msg("on_success hook ran")
	return nil
}

func hookEnv(post upload.Post) []string {
	return []string{
		"PIXPOST_POST_ID=" + post.ID,
		"PIXPOST_FILE=" + post.FileName,
		"PIXPOST_PATH=" + post.FilePath,
		"PIXPOST_SCALE=" + strconv.Itoa(post.Scale),
		"PIXPOST_EFFECT=" + post.Effect.String(),
		"PIXPOST_EFFECT_LEVEL=" + post.EffectLevel(),
		"PIXPOST_HASHTAGS=" + strings.Join(post.Hashtags, " "),
		"PIXPOST_DESCRIPTION=" + post.Description,
	}
}
