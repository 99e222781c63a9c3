// Package watch monitors source trees and reformats files as they change.
//
// # Overview
//
// The watcher wraps fsnotify with the filtering a formatter needs:
//   - only files with a registered frontend extension trigger work
//   - hidden files and directories are skipped
//   - rapid save bursts are debounced per file, so an editor writing a
//     file several times in quick succession formats it once
//
// Newly created directories are added to the watch set automatically.
//
// # Usage
//
//	w, err := watch.NewWatcher(&watch.Config{
//	    Path:       ".",
//	    Extensions: []string{".go"},
//	}, logger)
//	if err != nil { ... }
//
//	err = w.Watch(ctx, func(path string) {
//	    result, err := eng.Format(ctx, path, read(path))
//	    ...
//	})
package watch
