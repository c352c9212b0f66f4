package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/repository"
	"github.com/givers/contacts/internal/view"
)

// ContactStore owns the ordered contact records, the edit session and the
// durable snapshot. Every mutation persists the whole sequence before it
// returns; if persisting fails the in-memory sequence is rolled back.
type ContactStore struct {
	mu      sync.Mutex
	repo    repository.ContactRepository
	surface Surface
	now     func() time.Time
	logger  *slog.Logger

	records []model.ContactRecord
	session SessionState
}

// Option configures a ContactStore.
type Option func(*ContactStore)

// WithClock overrides time.Now for ids and dates.
func WithClock(now func() time.Time) Option {
	return func(s *ContactStore) { s.now = now }
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *ContactStore) { s.logger = l }
}

// NewContactStore creates an empty store. Call Load before use.
// A nil surface discards all surface updates.
func NewContactStore(repo repository.ContactRepository, surface Surface, opts ...Option) *ContactStore {
	if surface == nil {
		surface = nopSurface{}
	}
	s := &ContactStore{
		repo:    repo,
		surface: surface,
		now:     time.Now,
		logger:  slog.Default(),
		records: []model.ContactRecord{},
		session: Composing{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the snapshot and renders it. A corrupt snapshot is logged and
// treated as empty.
func (s *ContactStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptSnapshot):
		s.logger.Warn("contact snapshot unreadable, starting empty", "error", err)
		records = []model.ContactRecord{}
	case err != nil:
		return fmt.Errorf("load contacts: %w", err)
	}

	s.records = records
	s.session = Composing{}
	s.logger.Debug("contacts loaded", "count", len(records))
	s.render()
	return nil
}

// Validate checks fields and shows the failure message on the surface.
func (s *ContactStore) Validate(fields model.ContactFields) error {
	if err := fields.Validate(); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			s.surface.ShowMessage(verr.Message)
		}
		return err
	}
	return nil
}

// Records returns a copy of the full sequence.
func (s *ContactStore) Records() []model.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Len returns the number of stored records.
func (s *ContactStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Session returns the current edit session state.
func (s *ContactStore) Session() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Filter returns the records whose name or email contains term, ignoring
// case. An empty term returns every record. The store is not modified.
func (s *ContactStore) Filter(term string) []model.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterLocked(term)
}

// Search filters by term and renders the result.
func (s *ContactStore) Search(term string) []model.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	shown := s.filterLocked(term)
	s.surface.Render(view.Project(s.records, shown), term)
	return shown
}

// View returns the projection of the records matching term without
// touching the surface.
func (s *ContactStore) View(term string) view.ListView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Project(s.records, s.filterLocked(term))
}

func (s *ContactStore) filterLocked(term string) []model.ContactRecord {
	if term == "" {
		return slices.Clone(s.records)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]model.ContactRecord, 0, len(s.records))
	for _, rec := range s.records {
		if strings.Contains(fold.String(rec.Name), needle) || strings.Contains(fold.String(rec.Email), needle) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *ContactStore) render() {
	s.surface.Render(view.Project(s.records, s.records), "")
}

func (s *ContactStore) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.records); err != nil {
		return fmt.Errorf("persist contacts: %w", err)
	}
	return nil
}

func (s *ContactStore) checkPosition(pos int) error {
	if pos < 0 || pos >= len(s.records) {
		s.logger.Error("contact position out of range", "position", pos, "len", len(s.records))
		return fmt.Errorf("%w: %d (have %d)", ErrPositionOutOfRange, pos, len(s.records))
	}
	return nil
}

// nextID returns the creation timestamp in milliseconds, bumped past the
// largest existing id so ids stay distinct.
func (s *ContactStore) nextID() int64 {
	id := s.now().UnixMilli()
	for _, rec := range s.records {
		if rec.ID >= id {
			id = rec.ID + 1
		}
	}
	return id
}
