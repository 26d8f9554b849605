package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/phanxgames/ranged"
	"go.uber.org/zap"
)

// watchConfig reloads the config file whenever it is written or replaced
// and delivers each valid result on the returned channel. Only the latest
// unread config is kept. The watcher stops and the channel closes when ctx
// is done.
func watchConfig(ctx context.Context, path string, log *zap.Logger) (<-chan ranged.Config, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	out := make(chan ranged.Config, 1)
	go func() {
		defer close(out)
		defer w.Close()

		name := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				log.Debug("config watcher stopped")
				return

			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := ranged.LoadConfig(path)
				if err != nil {
					log.Warn("config reload failed", zap.String("path", path), zap.Error(err))
					continue
				}
				log.Debug("config changed", zap.String("path", path), zap.Stringer("op", event.Op))
				publish(out, cfg)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}

// publish replaces any unread config in out with cfg. out must have a
// buffer of one and a single sender.
func publish(out chan ranged.Config, cfg ranged.Config) {
	select {
	case out <- cfg:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	out <- cfg
}
