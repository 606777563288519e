package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopyBatch(t *testing.T) {
	batch := NewCopyBatch("/work")

	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, "/work", batch.Target)
	assert.Equal(t, CopyStatusPending, batch.Status)
	assert.Empty(t, batch.Tasks)
	assert.False(t, batch.StartedAt.IsZero())

	other := NewCopyBatch("/work")
	assert.NotEqual(t, batch.ID, other.ID)
}

func TestCopyBatch_Progress(t *testing.T) {
	batch := NewCopyBatch("/work")
	assert.Equal(t, 0.0, batch.Progress())

	batch.Tasks = []*CopyTask{
		{Source: "a", Size: 10, Status: CopyStatusCompleted},
		{Source: "b", Size: 20, Status: CopyStatusError, Err: errors.New("boom")},
		{Source: "c", Size: 30, Status: CopyStatusSkipped},
		{Source: "d", Size: 40, Status: CopyStatusCompleted},
	}

	assert.InDelta(t, 0.5, batch.Progress(), 1e-9)
	assert.Equal(t, int64(100), batch.TotalBytes())
	assert.Equal(t, int64(50), batch.CopiedBytes())

	failed := batch.FailedTask()
	require.NotNil(t, failed)
	assert.Equal(t, "b", failed.Source)
}

func TestCopyBatch_FailedTaskNone(t *testing.T) {
	batch := NewCopyBatch("/work")
	batch.Tasks = []*CopyTask{{Source: "a", Status: CopyStatusCompleted}}
	assert.Nil(t, batch.FailedTask())
}
