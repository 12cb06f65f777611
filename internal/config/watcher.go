package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes and hands valid configs to
// the game loop through Updates. Invalid files are logged and skipped.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
	wg      sync.WaitGroup
	logger  *log.Logger

	mu     sync.Mutex
	closed bool
}

// NewWatcher watches path. The containing directory is watched so editors
// that replace the file on save are still seen.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates delivers reloaded configs. Only the newest pending config is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			w.logger.Warn("config rejected", "path", w.path, "err", err)
		} else {
			w.logger.Error("config reload failed", "path", w.path, "err", err)
		}
		return
	}

	w.logger.Info("config reloaded", "path", w.path)
	w.publish(cfg)
}

// publish replaces any config the loop has not picked up yet.
func (w *Watcher) publish(cfg *Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
