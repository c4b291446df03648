package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadCallback is called after a watcher-driven catalog reload.
type ReloadCallback func()

// Watch starts an fsnotify watcher on the catalog directory and reloads
// the store whenever a seed file actually changes, until ctx is
// cancelled. Rapid event bursts (editors writing temp files, atomic
// renames) are debounced, and a reload only happens when a seed file's
// checksum differs from the last applied state. cb (if non-nil) runs
// after each successful reload.
func Watch(ctx context.Context, store *Store, dir string, logger *slog.Logger, cb ReloadCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("catalog watcher: started", slog.String("dir", dir))

	checksums := seedChecksums(dir)

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("catalog watcher: stopped")
			return nil

		case <-reloadCh:
			current := seedChecksums(dir)
			if sameChecksums(checksums, current) {
				continue
			}
			seed, err := Load(dir)
			if err != nil {
				logger.Warn("catalog watcher: reload failed", slog.String("error", err.Error()))
				continue
			}
			checksums = current
			store.Replace(*seed)
			logger.Info("catalog watcher: catalog reloaded",
				slog.Int("songs", len(seed.Songs)),
				slog.Int("musicians", len(seed.Musicians)))
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isSeedFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher: error", slog.String("error", err.Error()))
		}
	}
}

func isSeedFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range seedFiles {
		if base == name {
			return true
		}
	}
	return strings.HasSuffix(base, ".yaml")
}

// seedChecksums hashes each present seed file so reload can skip event
// bursts that leave the content unchanged.
func seedChecksums(dir string) map[string]string {
	out := make(map[string]string, len(seedFiles))
	for _, name := range seedFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		sum := sha256.Sum256(data)
		out[name] = hex.EncodeToString(sum[:])
	}
	return out
}

func sameChecksums(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
