package model

import (
	"time"

	"github.com/google/uuid"
)

// CopyTask represents copying a single input file into the working folder
type CopyTask struct {
	Source string     // path taken from the input list
	Dest   string     // path inside the working folder
	Size   int64      // source size in bytes, 0 if unknown
	Status CopyStatus // current state
	Err    error      // failure cause when Status is CopyStatusError
}

// CopyBatch groups the tasks of one copy run
type CopyBatch struct {
	ID         string
	Target     string
	Tasks      []*CopyTask
	Status     CopyStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewCopyBatch creates a pending batch for target
func NewCopyBatch(target string) *CopyBatch {
	return &CopyBatch{
		ID:        uuid.NewString(),
		Target:    target,
		Tasks:     make([]*CopyTask, 0),
		Status:    CopyStatusPending,
		StartedAt: time.Now(),
	}
}

// TotalBytes returns the summed size of all tasks
func (b *CopyBatch) TotalBytes() int64 {
	var total int64
	for _, task := range b.Tasks {
		total += task.Size
	}
	return total
}

// CopiedBytes returns the summed size of completed tasks
func (b *CopyBatch) CopiedBytes() int64 {
	var copied int64
	for _, task := range b.Tasks {
		if task.Status == CopyStatusCompleted {
			copied += task.Size
		}
	}
	return copied
}

// Progress returns the completed fraction of the batch by file count (0.0 to 1.0)
func (b *CopyBatch) Progress() float64 {
	if len(b.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, task := range b.Tasks {
		if task.Status == CopyStatusCompleted {
			done++
		}
	}
	return float64(done) / float64(len(b.Tasks))
}

// FailedTask returns the task that stopped the batch, or nil
func (b *CopyBatch) FailedTask() *CopyTask {
	for _, task := range b.Tasks {
		if task.Status == CopyStatusError {
			return task
		}
	}
	return nil
}
