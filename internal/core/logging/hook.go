package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts upload_id and file_name from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if id := GetUploadID(ctx); id != "" {
		e.Str("upload_id", id)
	}

	if name := GetFileName(ctx); name != "" {
		e.Str("file_name", name)
	}
}
