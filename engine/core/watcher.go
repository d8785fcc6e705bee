package core

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads and applies a config file every time it is written.
type ConfigWatcher struct {
	path     string
	onChange func(*Config)

	mutex    sync.Mutex
	wg       sync.WaitGroup
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	stopped  bool
	errors   chan error
	lastHash uint64
	hashed   bool
}

// NewConfigWatcher prepares a watcher for path. onChange may be nil; it
// runs after the new configuration has been applied.
func NewConfigWatcher(path string, onChange func(*Config)) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ConfigWatcher{
		path:     filepath.Clean(abs),
		onChange: onChange,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		errors:   make(chan error, 8),
	}, nil
}

// Start watches the directory holding the config file, so editors that
// replace the file instead of writing it in place are still seen. Once the
// context passed to Start is done the watcher cannot be started again.
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	if cw.isClosed {
		return ErrConfigClosed
	}
	if cw.stopped {
		return ErrConfigStopped
	}
	if cw.started {
		return nil
	}
	if err := cw.fsnotify.Add(filepath.Dir(cw.path)); err != nil {
		return err
	}
	if data, err := os.ReadFile(cw.path); err == nil {
		cw.changed(data)
	}
	cw.started = true
	cw.wg.Add(1)
	go cw.run(ctx)
	return nil
}

// Errors reports reload failures. Errors are dropped when nobody drains it.
func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	if cw.isClosed {
		cw.mutex.Unlock()
		return ErrConfigClosed
	}
	cw.isClosed = true
	started := cw.started
	close(cw.done)
	cw.mutex.Unlock()

	if !started {
		return cw.fsnotify.Close()
	}
	cw.wg.Wait()
	return nil
}

func (cw *ConfigWatcher) run(ctx context.Context) {
	defer cw.wg.Done()
	defer func() {
		cw.mutex.Lock()
		cw.stopped = true
		cw.mutex.Unlock()
		cw.fsnotify.Close()
	}()

	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case e, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError("config watcher: %s", e)
			cw.report(e)

		case <-ctx.Done():
			return

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	data, err := os.ReadFile(cw.path)
	if err != nil {
		LogError("config reload failed: %s", err)
		cw.report(err)
		return
	}
	if !cw.changed(data) {
		return
	}
	cfg, err := decodeConfig(cw.path, data)
	if err == nil {
		err = cfg.Apply()
	}
	if err != nil {
		LogError("config reload failed: %s", err)
		cw.report(err)
		return
	}
	LogInfo("config reloaded from %s", cw.path)
	if cw.onChange != nil {
		cw.onChange(cfg)
	}
}

// changed reports whether data differs from the content seen last, and
// remembers it. Editors often emit several events for one save.
func (cw *ConfigWatcher) changed(data []byte) bool {
	h := xxhash.Sum64(data)
	if cw.hashed && h == cw.lastHash {
		return false
	}
	cw.lastHash = h
	cw.hashed = true
	return true
}

func (cw *ConfigWatcher) report(err error) {
	select {
	case cw.errors <- err:
	default:
	}
}
