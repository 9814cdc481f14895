package commands

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/data/db"
	"github.com/colonyops/pixpost/internal/data/stores"
	"github.com/colonyops/pixpost/internal/submit"
)

// App holds the services shared by commands. It is allocated before the
// command tree is built and filled in by the root Before hook.
type App struct {
	Config    *config.Config
	DB        *db.DB
	Posts     *stores.PostStore
	Submitter upload.Submitter
}

// NewApp opens the post database in cfg.DataDir and selects the submitter,
// wrapped with the on_success hook when one is configured.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	database, err := stores.OpenDB(cfg.DataDir, db.DefaultOpenOptions(), log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	posts := stores.NewPostStore(database)

	submitter := submit.New(cfg.Submit.Endpoint, cfg.Submit.Timeout, posts)
	if cfg.Submit.OnSuccess != "" {
		submitter = submit.NewHook(submitter, cfg.Submit.OnSuccess)
	}

	return &App{
		Config:    cfg,
		DB:        database,
		Posts:     posts,
		Submitter: submitter,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
