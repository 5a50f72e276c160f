package prompts

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the template set whenever the prompts file changes on
// disk. It watches the parent directory because editors commonly replace
// the file via rename. Watch blocks until ctx is done; run it in its own
// goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	if m.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(m.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	m.mu.Lock()
	m.watching = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.watching = false
		m.mu.Unlock()
	}()

	target := filepath.Clean(m.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := m.Reload(); err != nil {
				log.Warn().Err(err).Str("path", m.path).Msg("prompt reload failed, previous set kept")
				continue
			}
			log.Info().Str("path", m.path).Msg("prompts reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("prompt watcher error")
		}
	}
}
