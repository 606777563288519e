package transfer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/otiai10/copy"
	"github.com/rs/zerolog"

	"github.com/ytget/input-collector/internal/model"
	"github.com/ytget/input-collector/internal/platform"
)

// Service handles copy operations
type Service struct {
	mu        sync.RWMutex
	overwrite bool
	onUpdate  func(*model.CopyTask) // callback for UI updates
	log       zerolog.Logger
}

// NewService creates a new copy service
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.CopyTask)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetOverwrite allows replacing files that already exist in the target
func (s *Service) SetOverwrite(overwrite bool) {
	s.mu.Lock()
	s.overwrite = overwrite
	s.mu.Unlock()
}

// CopyAll copies paths into target in list order. Each file lands at
// target/<base name>. The target folder is created when missing.
//
// The first failure stops the batch: the failed task is marked Error, the
// tasks after it Skipped, and a *CopyError naming the source is returned.
// The batch is returned in every case.
func (s *Service) CopyAll(ctx context.Context, paths []string, target string) (*model.CopyBatch, error) {
	batch := model.NewCopyBatch(target)
	for _, path := range paths {
		task := &model.CopyTask{
			Source: path,
			Dest:   filepath.Join(target, filepath.Base(path)),
			Status: model.CopyStatusPending,
		}
		if info, err := os.Stat(path); err == nil {
			task.Size = info.Size()
		}
		batch.Tasks = append(batch.Tasks, task)
	}

	s.log.Info().
		Str("batch", batch.ID).
		Str("target", target).
		Int("files", len(batch.Tasks)).
		Msg("copy started")

	if err := platform.CreateDirectoryIfNotExists(target); err != nil {
		batch.Status = model.CopyStatusError
		batch.FinishedAt = time.Now()
		return batch, fmt.Errorf("create working folder: %w", err)
	}

	batch.Status = model.CopyStatusCopying
	for i, task := range batch.Tasks {
		if err := ctx.Err(); err != nil {
			s.skipRemaining(batch.Tasks[i:])
			return s.finish(batch, model.CopyStatusError), err
		}

		if err := s.copyTask(task); err != nil {
			s.skipRemaining(batch.Tasks[i+1:])
			s.log.Error().Err(err).Str("source", task.Source).Msg("copy failed")
			return s.finish(batch, model.CopyStatusError), &CopyError{Path: task.Source, Dest: task.Dest, Err: err}
		}
	}

	return s.finish(batch, model.CopyStatusCompleted), nil
}

// copyTask copies a single file and publishes its status changes
func (s *Service) copyTask(task *model.CopyTask) error {
	task.Status = model.CopyStatusCopying
	s.notifyUpdate(task)

	err := s.copyFile(task.Source, task.Dest)
	if err != nil {
		task.Status = model.CopyStatusError
		task.Err = err
	} else {
		task.Status = model.CopyStatusCompleted
	}
	s.notifyUpdate(task)
	return err
}

func (s *Service) copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return errors.New("not a regular file")
	}

	s.mu.RLock()
	overwrite := s.overwrite
	s.mu.RUnlock()

	if _, err := os.Lstat(dest); err == nil {
		if !overwrite {
			return ErrDestinationExists
		}
		// Copying a file onto itself truncates it before it is read.
		if destInfo, err := os.Stat(dest); err == nil && os.SameFile(info, destInfo) {
			s.log.Debug().Str("path", src).Msg("file already in working folder")
			return nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return copy.Copy(src, dest, copy.Options{
		PreserveTimes: true,
		Sync:          true,
	})
}

func (s *Service) skipRemaining(tasks []*model.CopyTask) {
	for _, task := range tasks {
		task.Status = model.CopyStatusSkipped
		s.notifyUpdate(task)
	}
}

func (s *Service) finish(batch *model.CopyBatch, status model.CopyStatus) *model.CopyBatch {
	batch.Status = status
	batch.FinishedAt = time.Now()
	s.log.Info().
		Str("batch", batch.ID).
		Str("status", status.String()).
		Int64("bytes", batch.CopiedBytes()).
		Dur("elapsed", batch.FinishedAt.Sub(batch.StartedAt)).
		Msg("copy finished")
	return batch
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.CopyTask) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(task)
	}
}
