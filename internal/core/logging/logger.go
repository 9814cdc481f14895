// Package logging provides zerolog helpers shared across pixpost.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Upload derives a logger tagged with an upload session id.
func Upload(base zerolog.Logger, uploadID string) zerolog.Logger {
	return base.With().Str("upload_id", uploadID).Logger()
}
