package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of BatchRepo. Batches are scoped
// to the process lifetime and are never written to durable storage.
type MemoryRepo struct {
	mu      sync.RWMutex
	batches map[string]Batch
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{batches: make(map[string]Batch)}
}

// Create stores a batch by ID.
func (r *MemoryRepo) Create(ctx context.Context, batch Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[batch.ID] = copyBatch(batch)
	return nil
}

// GetByID returns a copy of the stored batch, so callers cannot mutate
// repository state through the returned records.
func (r *MemoryRepo) GetByID(ctx context.Context, batchID string) (Batch, error) {
	if err := ctx.Err(); err != nil {
		return Batch{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	batch, ok := r.batches[batchID]
	if !ok {
		return Batch{}, ErrNotFound
	}
	return copyBatch(batch), nil
}

func copyBatch(batch Batch) Batch {
	out := batch
	out.Records = make([]Record, len(batch.Records))
	copy(out.Records, batch.Records)
	return out
}
