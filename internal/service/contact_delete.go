package service

import (
	"context"
	"slices"
)

// Delete removes the record at pos once confirmer agrees. A declined (or nil)
// confirmer leaves the store untouched and returns false. The confirmer runs
// with the store locked and must not call back into it.
func (s *ContactStore) Delete(ctx context.Context, pos int, confirmer Confirmer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPosition(pos); err != nil {
		return false, err
	}
	if confirmer == nil || !confirmer.Confirm(ctx, DeletePrompt) {
		return false, nil
	}

	prev := s.records
	removed := prev[pos]
	s.records = slices.Delete(slices.Clone(prev), pos, pos+1)
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return false, err
	}

	if ed, ok := s.session.(Editing); ok {
		switch {
		case ed.Position == pos:
			s.logger.Info("edited contact deleted, leaving edit", "id", ed.ID)
			s.cancelLocked()
		case ed.Position > pos:
			s.session = Editing{Position: ed.Position - 1, ID: ed.ID}
		}
	}

	s.logger.Info("contact deleted", "id", removed.ID, "position", pos)
	s.render()
	return true, nil
}
