package preset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const fileExtension = ".tsv"

// Watcher polls a directory and applies every new or modified .tsv file.
// A file that fails is not retried until its modification time changes.
type Watcher struct {
	log          *slog.Logger
	dir          string
	scanInterval time.Duration
	loader       *Loader
	applied      map[string]time.Time
}

func NewWatcher(log *slog.Logger, dir string, scanInterval time.Duration, loader *Loader) *Watcher {
	return &Watcher{
		log:          log,
		dir:          dir,
		scanInterval: scanInterval,
		loader:       loader,
		applied:      make(map[string]time.Time),
	}
}

func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.scan(ctx); err != nil {
				w.log.ErrorContext(ctx, "failed to scan preset directory", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) scan(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", w.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExtension {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.log.ErrorContext(ctx, "failed to stat preset, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if modTime, ok := w.applied[entry.Name()]; ok && modTime.Equal(info.ModTime()) {
			continue
		}
		w.applied[entry.Name()] = info.ModTime()

		if err := w.loader.LoadFile(ctx, filepath.Join(w.dir, entry.Name())); err != nil {
			w.log.ErrorContext(ctx, "failed to apply preset",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		w.log.InfoContext(ctx, "preset file applied", slog.String("filename", entry.Name()))
	}

	return nil
}
