// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the config opened from filename, on top of the
// defaults, each time the file is written or created, until ctx is done.
// The directory of the file is watched so that editors that replace the
// file on save are followed. fn is called on the watching goroutine.
func Watch(ctx context.Context, filename string, fn func(c *Config, err error)) error {
	if _, err := FormatForFile(filename); err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Debug("watching rig config", "file", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fn(Open(abs))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("rig config watcher error", "err", err)
		}
	}
}
