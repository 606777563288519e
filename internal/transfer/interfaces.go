package transfer

import (
	"context"

	"github.com/ytget/input-collector/internal/model"
)

// Copier defines the interface for the copy service.
type Copier interface {
	SetUpdateCallback(func(*model.CopyTask))

	// SetOverwrite allows replacing files that already exist in the target
	SetOverwrite(overwrite bool)

	// CopyAll copies every path into target, stopping at the first failure
	CopyAll(ctx context.Context, paths []string, target string) (*model.CopyBatch, error)
}
