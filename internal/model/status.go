package model

// CopyStatus represents the status of a single file copy or of a whole batch
type CopyStatus string

const (
	// CopyStatusPending means the file is queued but not copied yet
	CopyStatusPending CopyStatus = "Pending"

	// CopyStatusCopying means the copy is in progress
	CopyStatusCopying CopyStatus = "Copying"

	// CopyStatusCompleted means the copy finished successfully
	CopyStatusCompleted CopyStatus = "Completed"

	// CopyStatusError means the copy failed
	CopyStatusError CopyStatus = "Error"

	// CopyStatusSkipped means the batch stopped before reaching this file
	CopyStatusSkipped CopyStatus = "Skipped"
)

// String returns the string representation of CopyStatus
func (cs CopyStatus) String() string {
	return string(cs)
}

// IsActive returns true while the copy is running
func (cs CopyStatus) IsActive() bool {
	return cs == CopyStatusCopying
}

// IsFinished returns true if the status is terminal (completed, error, or skipped)
func (cs CopyStatus) IsFinished() bool {
	return cs == CopyStatusCompleted || cs == CopyStatusError || cs == CopyStatusSkipped
}
