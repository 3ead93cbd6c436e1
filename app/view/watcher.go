package view

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// OptionsStore holds the mount options in effect. Pages hydrated while the
// options file is being reloaded see either the old or the new options.
type OptionsStore struct {
	path    string
	current atomic.Pointer[Options]
}

// NewOptionsStore loads the options file at path.
func NewOptionsStore(path string) (*OptionsStore, error) {
	opts, err := LoadOptions(path)
	if err != nil {
		return nil, err
	}

	s := &OptionsStore{path: path}
	s.current.Store(opts)
	return s, nil
}

// StaticOptions returns a store that is never reloaded. Nil options mean
// the defaults.
func StaticOptions(opts *Options) *OptionsStore {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &OptionsStore{}
	s.current.Store(opts)
	return s
}

func (s *OptionsStore) Get() *Options {
	return s.current.Load()
}

// Reload re-reads the options file. Invalid files leave the current options
// in place.
func (s *OptionsStore) Reload() error {
	if s.path == "" {
		return nil
	}

	opts, err := LoadOptions(s.path)
	if err != nil {
		return err
	}

	s.current.Store(opts)
	slog.Info("Mount options reloaded",
		"file", s.path,
		"list_target", opts.List.Target,
		"featured_target", opts.Featured.Target,
		"featured_limit", opts.Featured.Limit)
	return nil
}

// Watch reloads the options whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are picked up.
func (s *OptionsStore) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	slog.Debug("Watching mount options", "file", s.path)

	go s.run(ctx, watcher)

	return nil
}

func (s *OptionsStore) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload mount options", "file", s.path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Mount options watcher error", "error", err)
		}
	}
}
