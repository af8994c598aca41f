package file

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// Watch reloads the store whenever the config file changes on disk and then
// calls onChange (which may be nil). It returns a stop function. Used by the
// TUI so edits to config.toml take effect without a restart.
func (s *ConfigStore) Watch(onChange func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace the file on save,
	// which would drop a direct file watch.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("reload config: %v", err)
					continue
				}
				logger.Debug("config reloaded from %s", s.filePath)
				if onChange != nil {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
