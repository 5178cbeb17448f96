package resumes

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a batch does not exist.
	ErrNotFound = errors.New("batch not found")
	// ErrInvalidInput signals a caller error such as an empty upload set.
	ErrInvalidInput = errors.New("invalid input")
)

// BatchRepo defines storage operations for processed batches.
type BatchRepo interface {
	Create(ctx context.Context, batch Batch) error
	GetByID(ctx context.Context, batchID string) (Batch, error)
}
