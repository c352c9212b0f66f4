package service

import (
	"context"
	"errors"

	"github.com/givers/contacts/internal/model"
)

// CreateFromSubmission stores a new record for a forwarded submission, with
// emailSent set.
// It reports whether the surface may let the submission through to the
// relay endpoint; false with a nil error means validation failed and the
// message is on the surface. The snapshot is persisted before returning.
func (s *ContactStore) CreateFromSubmission(ctx context.Context, fields model.ContactFields) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.createLocked(ctx, fields, true)
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ContactStore) createLocked(ctx context.Context, fields model.ContactFields, forwarded bool) (model.ContactRecord, error) {
	if err := s.Validate(fields); err != nil {
		return model.ContactRecord{}, err
	}

	now := s.now()
	rec := model.ContactRecord{
		ID:        s.nextID(),
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Message:   fields.Message,
		Date:      model.FormatDate(now),
		EmailSent: forwarded,
	}

	s.records = append(s.records, rec)
	if err := s.persist(ctx); err != nil {
		s.records = s.records[:len(s.records)-1]
		return model.ContactRecord{}, err
	}

	s.logger.Info("contact created", "id", rec.ID, "forwarded", forwarded)
	s.render()
	s.surface.ClearFields()
	return rec, nil
}

// Submit decides what the form's submit does. While composing it creates a
// record and allows forwarding when valid. While editing it commits the edit
// locally and never forwards. Validation failures are reported in the
// decision, not as an error. forward says whether the surface will send an
// allowed submission on to the relay; it becomes the new record's emailSent.
func (s *ContactStore) Submit(ctx context.Context, fields model.ContactFields, forward bool) (SubmitDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		rec     model.ContactRecord
		err     error
		outcome Outcome
	)
	switch s.session.(type) {
	case Editing:
		rec, err = s.commitLocked(ctx, fields)
		outcome = OutcomeUpdated
	default:
		rec, err = s.createLocked(ctx, fields, forward)
		outcome = OutcomeCreated
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return SubmitDecision{Outcome: OutcomeRejected, Rejection: verr}, nil
	}
	if err != nil {
		return SubmitDecision{Outcome: OutcomeRejected}, err
	}
	return SubmitDecision{
		AllowForward: outcome == OutcomeCreated,
		Outcome:      outcome,
		Record:       rec,
	}, nil
}
