package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/storage"
)

// DefaultSlot is the storage slot the contact snapshot lives in.
const DefaultSlot = "contacts"

// ContactRepository loads and saves the full ordered contact sequence.
type ContactRepository interface {
	// Load returns the stored sequence; an absent slot yields an empty one.
	Load(ctx context.Context) ([]model.ContactRecord, error)

	// Save replaces the stored sequence with records.
	Save(ctx context.Context, records []model.ContactRecord) error
}

// SnapshotContactRepository keeps the sequence as one JSON array in a storage slot.
type SnapshotContactRepository struct {
	store storage.Storage
	slot  string
}

// NewSnapshotContactRepository creates a repository writing to slot.
// An empty slot name selects DefaultSlot.
func NewSnapshotContactRepository(store storage.Storage, slot string) *SnapshotContactRepository {
	if slot == "" {
		slot = DefaultSlot
	}
	return &SnapshotContactRepository{store: store, slot: slot}
}

// Ensure SnapshotContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*SnapshotContactRepository)(nil)

// Load decodes the snapshot. Undecodable data is reported as ErrCorruptSnapshot
// together with an empty sequence so callers can fail closed.
func (r *SnapshotContactRepository) Load(ctx context.Context) ([]model.ContactRecord, error) {
	data, err := r.store.Read(ctx, r.slot)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.ContactRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []model.ContactRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []model.ContactRecord{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if records == nil {
		records = []model.ContactRecord{}
	}
	return records, nil
}

func (r *SnapshotContactRepository) Save(ctx context.Context, records []model.ContactRecord) error {
	if records == nil {
		records = []model.ContactRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	return r.store.Write(ctx, r.slot, data)
}
