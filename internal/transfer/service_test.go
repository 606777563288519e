package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/input-collector/internal/model"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCopyAll_CopiesIntoTarget(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, filepath.Join(src, "a.csv"), "alpha")
	b := writeFile(t, filepath.Join(src, "nested", "b.csv"), "bravo!")
	target := filepath.Join(t.TempDir(), "work", "inputs")

	s := NewService(zerolog.Nop())
	batch, err := s.CopyAll(context.Background(), []string{a, b}, target)
	require.NoError(t, err)

	assert.Equal(t, model.CopyStatusCompleted, batch.Status)
	assert.Equal(t, 1.0, batch.Progress())
	assert.Equal(t, int64(11), batch.CopiedBytes())
	assert.NotEmpty(t, batch.ID)

	got, err := os.ReadFile(filepath.Join(target, "a.csv"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(got))

	got, err = os.ReadFile(filepath.Join(target, "b.csv"))
	require.NoError(t, err)
	assert.Equal(t, "bravo!", string(got))
}

func TestCopyAll_EmptyList(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out")

	batch, err := NewService(zerolog.Nop()).CopyAll(context.Background(), nil, target)
	require.NoError(t, err)
	assert.Equal(t, model.CopyStatusCompleted, batch.Status)
	assert.DirExists(t, target)
}

func TestCopyAll_StopsAtFirstFailure(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, filepath.Join(src, "a.txt"), "a")
	missing := filepath.Join(src, "gone.txt")
	c := writeFile(t, filepath.Join(src, "c.txt"), "c")
	target := t.TempDir()

	s := NewService(zerolog.Nop())
	batch, err := s.CopyAll(context.Background(), []string{a, missing, c}, target)
	require.Error(t, err)

	var copyErr *CopyError
	require.True(t, errors.As(err, &copyErr))
	assert.Equal(t, missing, copyErr.Path)
	assert.Equal(t, missing, FailedPath(err))

	assert.Equal(t, model.CopyStatusError, batch.Status)
	assert.Equal(t, model.CopyStatusCompleted, batch.Tasks[0].Status)
	assert.Equal(t, model.CopyStatusError, batch.Tasks[1].Status)
	assert.Equal(t, model.CopyStatusSkipped, batch.Tasks[2].Status)
	assert.Same(t, batch.Tasks[1], batch.FailedTask())

	assert.FileExists(t, filepath.Join(target, "a.txt"))
	assert.NoFileExists(t, filepath.Join(target, "c.txt"))
}

func TestCopyAll_ExistingDestination(t *testing.T) {
	src := writeFile(t, filepath.Join(t.TempDir(), "data.csv"), "new")
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "data.csv"), "old")

	s := NewService(zerolog.Nop())
	_, err := s.CopyAll(context.Background(), []string{src}, target)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestinationExists)
	assert.Equal(t, src, FailedPath(err))

	got, err := os.ReadFile(filepath.Join(target, "data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	s.SetOverwrite(true)
	_, err = s.CopyAll(context.Background(), []string{src}, target)
	require.NoError(t, err)

	got, err = os.ReadFile(filepath.Join(target, "data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyAll_SourceAlreadyInTarget(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "data.csv"), "important payload")

	s := NewService(zerolog.Nop())
	s.SetOverwrite(true)
	batch, err := s.CopyAll(context.Background(), []string{src}, dir)
	require.NoError(t, err)
	assert.Equal(t, model.CopyStatusCompleted, batch.Tasks[0].Status)

	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "important payload", string(got))

	s.SetOverwrite(false)
	_, err = s.CopyAll(context.Background(), []string{src}, dir)
	assert.ErrorIs(t, err, ErrDestinationExists)
}

func TestCopyAll_DirectoryEntryFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "folder")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, err := NewService(zerolog.Nop()).CopyAll(context.Background(), []string{dir}, t.TempDir())
	require.Error(t, err)
	assert.Equal(t, dir, FailedPath(err))
}

func TestCopyAll_TargetIsAFile(t *testing.T) {
	src := writeFile(t, filepath.Join(t.TempDir(), "a.txt"), "a")
	target := writeFile(t, filepath.Join(t.TempDir(), "blocker"), "x")

	batch, err := NewService(zerolog.Nop()).CopyAll(context.Background(), []string{src}, target)
	require.Error(t, err)
	assert.Empty(t, FailedPath(err))
	assert.Equal(t, model.CopyStatusError, batch.Status)
}

func TestCopyAll_ContextCancelled(t *testing.T) {
	src := writeFile(t, filepath.Join(t.TempDir(), "a.txt"), "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewService(zerolog.Nop()).CopyAll(ctx, []string{src}, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, model.CopyStatusSkipped, batch.Tasks[0].Status)
}

func TestCopyAll_UpdateCallback(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, filepath.Join(src, "a.txt"), "a")
	b := writeFile(t, filepath.Join(src, "b.txt"), "b")

	var mu sync.Mutex
	var events []string
	s := NewService(zerolog.Nop())
	s.SetUpdateCallback(func(task *model.CopyTask) {
		mu.Lock()
		events = append(events, filepath.Base(task.Source)+":"+task.Status.String())
		mu.Unlock()
	})

	_, err := s.CopyAll(context.Background(), []string{a, b}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a.txt:Copying", "a.txt:Completed",
		"b.txt:Copying", "b.txt:Completed",
	}, events)
}

func TestFailedPath_NoCopyError(t *testing.T) {
	assert.Empty(t, FailedPath(nil))
	assert.Empty(t, FailedPath(errors.New("boom")))
}

func TestService_ImplementsCopier(t *testing.T) {
	var _ Copier = NewService(zerolog.Nop())
}
