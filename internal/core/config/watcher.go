package config

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/pkg/utils"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk and hands the
// freshly validated config to a callback. Invalid edits are logged and
// skipped so the last good config stays active.
type Watcher struct {
	path    string
	dataDir string
	log     zerolog.Logger
	watcher *fsnotify.Watcher
	reload  *utils.Debouncer[string]

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Watch starts watching configPath. The parent directory is watched rather
// than the file itself so editors that replace the file on save are seen.
func Watch(configPath, dataDir string, log zerolog.Logger, onChange func(*Config)) (*Watcher, error) {
	if configPath == "" {
		return nil, errors.New("config path is required")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(configPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    filepath.Clean(configPath),
		dataDir: dataDir,
		log:     log,
		watcher: fw,
		cancel:  cancel,
	}

	w.reload = utils.Debounce(func(path string) {
		cfg, err := Load(path, w.dataDir)
		if err != nil {
			w.log.Warn().Err(err).Str("path", path).Msg("config reload failed, keeping previous config")
			return
		}
		w.log.Info().Str("path", path).Msg("config reloaded")
		onChange(cfg)
	}, reloadDelay)

	w.wg.Add(1)
	go w.run(ctx)

	return w, nil
}

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.cancel()
	w.reload.Stop()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload.Call(w.path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("config watcher error")
		}
	}
}
