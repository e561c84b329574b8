package analyzer

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the service whenever a file in the data directory
// changes, so the next request reloads the lexicon through the lazy guard.
// It blocks until ctx is cancelled.
func (s *Service) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(s.dataDir); err != nil {
		return err
	}
	s.log.Info("watching data directory", zap.String("dir", s.dataDir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.log.Info("data change detected, reload scheduled",
					zap.String("file", ev.Name))
				s.Invalidate()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))
		}
	}
}
