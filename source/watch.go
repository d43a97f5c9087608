package source

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path, passes the table to fn, and reloads it every time the
// file is written or replaced until ctx is done. fn runs on the calling
// goroutine. Reload failures are logged and the previous table stays
// current; only a failure of the first load or of the watcher is returned.
func Watch(ctx context.Context, path, sheet string, fn func(Table)) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()
	// Watching the directory keeps working when editors replace the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed watching %q: %w", path, err)
	}
	t, err := loadFile(path, sheet, true)
	if err != nil {
		return err
	}
	fn(t)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			t, err := loadFile(path, sheet, true)
			if err != nil {
				log.Printf("failed reloading %q: %v", path, err)
				continue
			}
			fn(t)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watching %q: %v", path, err)
		}
	}
}
