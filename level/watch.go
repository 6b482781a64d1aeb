package level

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch starts a descriptor watcher on the levels directory. Change
// notifications are queued to the frame loop, which re-discovers the
// sequence and reloads the current level if its file changed; all level
// state stays on the frame goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("level watcher: %w", err)
	}
	if err := watcher.Add(m.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", m.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if !strings.HasSuffix(ev.Name, ".json") {
					continue
				}
				name := strings.TrimSuffix(filepath.Base(ev.Name), ".json")
				select {
				case m.reload <- name:
				default:
					// Frame loop is behind; drop the signal
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.log.Warn("level watcher error", "error", err)
			}
		}
	}()

	m.log.Info("watching levels directory", "dir", m.dir)
	return nil
}
