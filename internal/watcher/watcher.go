package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// FileWatcher invokes onChange every time the watched file is written or
// recreated. The producer saves via rename, which fsnotify reports as a
// Create on the target path. Delivery is at-least-once: rapid successive
// writes may collapse into one event, and the consumer catches up on reload.
type FileWatcher struct {
	filePath string
	onChange func()
	logger   zerolog.Logger
}

func New(filePath string, onChange func(), logger zerolog.Logger) *FileWatcher {
	return &FileWatcher{
		filePath: filePath,
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches until ctx is cancelled. The watch is on the parent directory:
// watching the file itself would break when a rename replaces its inode.
func (w *FileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir := filepath.Dir(w.filePath)
	if err := fw.Add(dir); err != nil {
		return err
	}
	w.logger.Info().Str("file", w.filePath).Msg("file watcher started")

	target := filepath.Clean(w.filePath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Info().Str("op", event.Op.String()).Msg("jobs file updated")
			w.onChange()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}
