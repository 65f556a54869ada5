package chord

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// ReloadFunc receives the aliases read after the watched file changed, or
// the error that prevented reading them. A removed file yields no aliases.
type ReloadFunc func(aliases map[Chord][]string, err error)

// WatchAliasFile calls reload each time the alias file at path is written,
// created, replaced or removed, until ctx is done. The parent directory is
// watched so editors that save by renaming a temporary file are seen.
// reload runs on the watcher's goroutine.
func WatchAliasFile(ctx context.Context, path string, reload ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		defer w.Close()
		fs := afero.NewOsFs()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !relevant(ev.Op) {
					continue
				}
				reload(LoadAliasFile(fs, abs))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				reload(nil, err)
			}
		}
	}()
	return nil
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}

// FromAliases returns the default normalizer extended with aliases.
func FromAliases(aliases map[Chord][]string) (*Normalizer, error) {
	n := DefaultNormalizer()
	if err := n.Apply(aliases); err != nil {
		return nil, err
	}
	return n, nil
}
