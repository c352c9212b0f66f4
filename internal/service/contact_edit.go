package service

import (
	"context"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/view"
)

// BeginEdit loads the record at pos into the form and switches the primary
// action to local save. An edit already in progress is abandoned.
func (s *ContactStore) BeginEdit(pos int) (model.ContactRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPosition(pos); err != nil {
		return model.ContactRecord{}, err
	}
	if prev, ok := s.session.(Editing); ok {
		s.logger.Warn("abandoning unsaved edit", "position", prev.Position, "id", prev.ID)
	}

	rec := s.records[pos]
	s.session = Editing{Position: pos, ID: rec.ID}
	s.surface.ShowFields(rec.Fields())
	s.surface.SetMode(view.ModeLocalSave)
	return rec, nil
}

// CommitEdit saves fields over the record being edited, keeping its id and
// emailSent flag and stamping a new date. On validation failure the session
// stays active and nothing is persisted.
func (s *ContactStore) CommitEdit(ctx context.Context, fields model.ContactFields) (model.ContactRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, fields)
}

func (s *ContactStore) commitLocked(ctx context.Context, fields model.ContactFields) (model.ContactRecord, error) {
	ed, ok := s.session.(Editing)
	if !ok {
		return model.ContactRecord{}, ErrNotEditing
	}
	if err := s.Validate(fields); err != nil {
		return model.ContactRecord{}, err
	}

	updated, err := s.replaceLocked(ctx, ed.Position, fields)
	if err != nil {
		return model.ContactRecord{}, err
	}

	s.session = Composing{}
	s.render()
	s.surface.ClearFields()
	s.surface.SetMode(view.ModeForward)
	return updated, nil
}

// EditAt replaces the fields of the record at pos in one step, keeping its id
// and emailSent flag. It neither reads nor changes the edit session and shows
// nothing on the surface except the re-rendered list.
func (s *ContactStore) EditAt(ctx context.Context, pos int, fields model.ContactFields) (model.ContactRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPosition(pos); err != nil {
		return model.ContactRecord{}, err
	}
	if err := fields.Validate(); err != nil {
		return model.ContactRecord{}, err
	}
	updated, err := s.replaceLocked(ctx, pos, fields)
	if err != nil {
		return model.ContactRecord{}, err
	}
	s.render()
	return updated, nil
}

// replaceLocked stamps fields and a new date onto the record at pos and
// persists, restoring the old record if that fails.
func (s *ContactStore) replaceLocked(ctx context.Context, pos int, fields model.ContactFields) (model.ContactRecord, error) {
	prev := s.records[pos]
	updated := prev
	updated.Name = fields.Name
	updated.Email = fields.Email
	updated.Phone = fields.Phone
	updated.Message = fields.Message
	updated.Date = model.FormatDate(s.now())

	s.records[pos] = updated
	if err := s.persist(ctx); err != nil {
		s.records[pos] = prev
		return model.ContactRecord{}, err
	}
	s.logger.Info("contact updated", "id", updated.ID, "position", pos)
	return updated, nil
}

// CancelEdit leaves any edit session, clears the form and restores the
// forward action.
func (s *ContactStore) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *ContactStore) cancelLocked() {
	s.session = Composing{}
	s.surface.ClearFields()
	s.surface.SetMode(view.ModeForward)
}
