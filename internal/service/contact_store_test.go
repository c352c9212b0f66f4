package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/repository"
	"github.com/givers/contacts/internal/storage"
	"github.com/givers/contacts/internal/view"
)

// ---------------------------------------------------------------------------
// mockContactRepository: in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	stored   []model.ContactRecord
	saves    int
	loadFunc func(ctx context.Context) ([]model.ContactRecord, error)
	saveErr  error
}

func (m *mockContactRepository) Load(ctx context.Context) ([]model.ContactRecord, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	out := make([]model.ContactRecord, len(m.stored))
	copy(out, m.stored)
	return out, nil
}

func (m *mockContactRepository) Save(ctx context.Context, records []model.ContactRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.stored = make([]model.ContactRecord, len(records))
	copy(m.stored, records)
	return nil
}

var (
	alice = model.ContactRecord{ID: 100, Name: "Alice", Email: "alice@example.com", Phone: "555-0101", Message: "Hello", Date: "1/1/2026", EmailSent: true}
	bob   = model.ContactRecord{ID: 200, Name: "bob", Email: "bob@example.org", Phone: "555-0102", Message: "Hey", Date: "1/2/2026", EmailSent: true}
	carol = model.ContactRecord{ID: 300, Name: "Carol", Email: "carol@example.net", Phone: "555-0103", Message: "Yo", Date: "1/3/2026"}
)

var fixedNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func valid(name string) model.ContactFields {
	return model.ContactFields{Name: name, Email: "x@y.com", Phone: "555", Message: "hi"}
}

func newTestStore(t *testing.T, records ...model.ContactRecord) (*ContactStore, *mockContactRepository, *view.FormState) {
	t.Helper()
	repo := &mockContactRepository{stored: records}
	surface := view.NewFormState()
	s := NewContactStore(repo, surface,
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, s.Load(context.Background()))
	return s, repo, surface
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestContactStore_Load_RendersFullSequence(t *testing.T) {
	s, _, surface := newTestStore(t, alice, bob)

	assert.Equal(t, []model.ContactRecord{alice, bob}, s.Records())
	pv := surface.Snapshot()
	require.Len(t, pv.List.Cards, 2)
	assert.Equal(t, "Alice", pv.List.Cards[0].Name)
}

func TestContactStore_Load_EmptyRendersPlaceholder(t *testing.T) {
	s, _, surface := newTestStore(t)

	assert.Equal(t, 0, s.Len())
	assert.True(t, surface.Snapshot().List.Empty)
}

func TestContactStore_Load_CorruptSnapshotFailsClosed(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.Write(ctx, repository.DefaultSlot, []byte("{{{")))

	s := NewContactStore(repository.NewSnapshotContactRepository(mem, ""), nil,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, s.Load(ctx))
	assert.Empty(t, s.Records())
}

func TestContactStore_Load_StorageError(t *testing.T) {
	repo := &mockContactRepository{loadFunc: func(context.Context) ([]model.ContactRecord, error) {
		return nil, errors.New("disk gone")
	}}
	s := NewContactStore(repo, nil)
	assert.Error(t, s.Load(context.Background()))
}

func TestContactStore_PersistReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSnapshotContactRepository(storage.NewMemoryStorage(), "")
	s := NewContactStore(repo, nil, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, s.Load(ctx))

	for _, name := range []string{"Ann", "Ben", "Cy"} {
		ok, err := s.CreateFromSubmission(ctx, valid(name))
		require.NoError(t, err)
		require.True(t, ok)
	}
	_, err := s.BeginEdit(1)
	require.NoError(t, err)
	_, err = s.CommitEdit(ctx, valid("Benjamin"))
	require.NoError(t, err)

	reloaded := NewContactStore(repo, nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, s.Records(), reloaded.Records())
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestContactStore_Validate_ShowsMessage(t *testing.T) {
	s, _, surface := newTestStore(t)

	err := s.Validate(model.ContactFields{Name: "Al", Email: "a@b", Phone: "555", Message: "hi"})
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email", surface.Snapshot().Form.Message)

	assert.NoError(t, s.Validate(model.ContactFields{Name: "Al", Email: "a@b.com", Phone: "555", Message: "hi"}))
}

// ---------------------------------------------------------------------------
// CreateFromSubmission
// ---------------------------------------------------------------------------

func TestContactStore_Create_AppendsForwardedRecord(t *testing.T) {
	s, repo, _ := newTestStore(t, alice)

	ok, err := s.CreateFromSubmission(context.Background(), valid("Dan"))
	require.NoError(t, err)
	assert.True(t, ok)

	records := s.Records()
	require.Len(t, records, 2)
	created := records[1]
	assert.Equal(t, "Dan", created.Name)
	assert.True(t, created.EmailSent)
	assert.Equal(t, fixedNow.UnixMilli(), created.ID)
	assert.Equal(t, "10/17/2026", created.Date)
	assert.Equal(t, records, repo.stored, "snapshot must match memory after create")
}

func TestContactStore_Create_RejectsInvalid(t *testing.T) {
	s, repo, surface := newTestStore(t, alice)

	ok, err := s.CreateFromSubmission(context.Background(), model.ContactFields{Email: "a@b.com", Phone: "555", Message: "hi"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, repo.saves)
	assert.Equal(t, "Please enter a name", surface.Snapshot().Form.Message)
}

func TestContactStore_Create_UniqueIDsUnderFrozenClock(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		ok, err := s.CreateFromSubmission(ctx, valid("N"))
		require.NoError(t, err)
		require.True(t, ok)
	}
	for _, rec := range s.Records() {
		assert.False(t, seen[rec.ID], "duplicate id %d", rec.ID)
		seen[rec.ID] = true
	}
}

func TestContactStore_Create_RollsBackOnPersistFailure(t *testing.T) {
	s, repo, _ := newTestStore(t, alice)
	repo.saveErr = errors.New("quota exceeded")

	ok, err := s.CreateFromSubmission(context.Background(), valid("Dan"))
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, []model.ContactRecord{alice}, s.Records())
}

// ---------------------------------------------------------------------------
// Edit session
// ---------------------------------------------------------------------------

func TestContactStore_BeginEdit_LoadsForm(t *testing.T) {
	s, _, surface := newTestStore(t, alice, bob)

	rec, err := s.BeginEdit(1)
	require.NoError(t, err)
	assert.Equal(t, bob, rec)
	assert.Equal(t, Editing{Position: 1, ID: bob.ID}, s.Session())
	assert.Equal(t, view.ModeLocalSave, surface.Mode())
	assert.Equal(t, bob.Fields(), surface.Fields())
}

func TestContactStore_BeginEdit_OutOfRange(t *testing.T) {
	s, _, _ := newTestStore(t, alice)

	for _, pos := range []int{-1, 1, 42} {
		_, err := s.BeginEdit(pos)
		assert.ErrorIs(t, err, ErrPositionOutOfRange)
	}
	assert.Equal(t, Composing{}, s.Session())
}

func TestContactStore_CommitEdit_ReplacesOnlyTarget(t *testing.T) {
	s, repo, surface := newTestStore(t, alice, bob, carol)
	ctx := context.Background()

	_, err := s.BeginEdit(1)
	require.NoError(t, err)
	fields := model.ContactFields{Name: "Robert", Email: "rob@example.org", Phone: "555-9999", Message: "Updated"}
	updated, err := s.CommitEdit(ctx, fields)
	require.NoError(t, err)

	records := s.Records()
	assert.Equal(t, alice, records[0])
	assert.Equal(t, carol, records[2])
	assert.Equal(t, bob.ID, records[1].ID)
	assert.Equal(t, bob.EmailSent, records[1].EmailSent)
	assert.Equal(t, "Robert", records[1].Name)
	assert.Equal(t, "10/17/2026", records[1].Date)
	assert.Equal(t, updated, records[1])
	assert.Equal(t, records, repo.stored)

	assert.Equal(t, Composing{}, s.Session())
	assert.Equal(t, view.ModeForward, surface.Mode())
	assert.True(t, surface.Fields().IsZero())
}

func TestContactStore_CommitEdit_PreservesUnsentFlag(t *testing.T) {
	s, _, _ := newTestStore(t, carol)
	_, err := s.BeginEdit(0)
	require.NoError(t, err)

	updated, err := s.CommitEdit(context.Background(), valid("Caroline"))
	require.NoError(t, err)
	assert.False(t, updated.EmailSent)
}

func TestContactStore_CommitEdit_InvalidKeepsSession(t *testing.T) {
	s, repo, surface := newTestStore(t, alice)
	_, err := s.BeginEdit(0)
	require.NoError(t, err)

	_, err = s.CommitEdit(context.Background(), model.ContactFields{Name: "Al", Email: "al@x.io", Phone: "", Message: "m"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)

	assert.Equal(t, Editing{Position: 0, ID: alice.ID}, s.Session())
	assert.Equal(t, 0, repo.saves)
	assert.Equal(t, []model.ContactRecord{alice}, s.Records())
	assert.Equal(t, view.ModeLocalSave, surface.Mode())
}

func TestContactStore_CommitEdit_NotEditing(t *testing.T) {
	s, _, _ := newTestStore(t, alice)

	_, err := s.CommitEdit(context.Background(), valid("X"))
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestContactStore_CommitEdit_RollsBackOnPersistFailure(t *testing.T) {
	s, repo, _ := newTestStore(t, alice)
	_, err := s.BeginEdit(0)
	require.NoError(t, err)
	repo.saveErr = errors.New("disk full")

	_, err = s.CommitEdit(context.Background(), valid("Changed"))
	assert.Error(t, err)
	assert.Equal(t, []model.ContactRecord{alice}, s.Records())
	assert.Equal(t, Editing{Position: 0, ID: alice.ID}, s.Session())
}

func TestContactStore_SecondBeginEditAbandonsFirst(t *testing.T) {
	s, repo, surface := newTestStore(t, alice, bob)

	_, err := s.BeginEdit(0)
	require.NoError(t, err)
	_, err = s.BeginEdit(1)
	require.NoError(t, err)

	assert.Equal(t, Editing{Position: 1, ID: bob.ID}, s.Session())
	assert.Equal(t, bob.Fields(), surface.Fields())
	assert.Equal(t, 0, repo.saves)
	assert.Equal(t, []model.ContactRecord{alice, bob}, s.Records())
}

func TestContactStore_CancelEdit(t *testing.T) {
	s, _, surface := newTestStore(t, alice)
	_, err := s.BeginEdit(0)
	require.NoError(t, err)

	s.CancelEdit()
	assert.Equal(t, Composing{}, s.Session())
	assert.Equal(t, view.ModeForward, surface.Mode())
	assert.True(t, surface.Fields().IsZero())
	assert.Equal(t, []model.ContactRecord{alice}, s.Records())
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestContactStore_Delete_Declined(t *testing.T) {
	s, repo, _ := newTestStore(t, alice, bob)

	var asked string
	deleted, err := s.Delete(context.Background(), 0, ConfirmFunc(func(_ context.Context, prompt string) bool {
		asked = prompt
		return false
	}))
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, DeletePrompt, asked)
	assert.Equal(t, []model.ContactRecord{alice, bob}, s.Records())
	assert.Equal(t, 0, repo.saves)
}

func TestContactStore_Delete_NilConfirmerDeclines(t *testing.T) {
	s, _, _ := newTestStore(t, alice)

	deleted, err := s.Delete(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, s.Len())
}

func TestContactStore_Delete_Confirmed(t *testing.T) {
	s, repo, _ := newTestStore(t, alice, bob, carol)

	deleted, err := s.Delete(context.Background(), 0, Always(true))
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []model.ContactRecord{bob, carol}, s.Records())
	assert.Equal(t, s.Records(), repo.stored)

	_, err = s.BeginEdit(0)
	require.NoError(t, err)
	assert.Equal(t, Editing{Position: 0, ID: bob.ID}, s.Session(), "later records shift down by one")
}

func TestContactStore_Delete_OutOfRange(t *testing.T) {
	s, _, _ := newTestStore(t, alice)

	_, err := s.Delete(context.Background(), 3, Always(true))
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	assert.Equal(t, 1, s.Len())
}

func TestContactStore_Delete_RollsBackOnPersistFailure(t *testing.T) {
	s, repo, _ := newTestStore(t, alice, bob)
	repo.saveErr = errors.New("io")

	deleted, err := s.Delete(context.Background(), 1, Always(true))
	assert.Error(t, err)
	assert.False(t, deleted)
	assert.Equal(t, []model.ContactRecord{alice, bob}, s.Records())
}

func TestContactStore_Delete_AdjustsEditSession(t *testing.T) {
	ctx := context.Background()

	t.Run("earlier record shifts session", func(t *testing.T) {
		s, _, _ := newTestStore(t, alice, bob, carol)
		_, err := s.BeginEdit(2)
		require.NoError(t, err)

		_, err = s.Delete(ctx, 0, Always(true))
		require.NoError(t, err)
		assert.Equal(t, Editing{Position: 1, ID: carol.ID}, s.Session())

		updated, err := s.CommitEdit(ctx, valid("Caz"))
		require.NoError(t, err)
		assert.Equal(t, carol.ID, updated.ID)
		assert.Equal(t, "Caz", s.Records()[1].Name)
	})

	t.Run("edited record deleted cancels session", func(t *testing.T) {
		s, _, surface := newTestStore(t, alice, bob)
		_, err := s.BeginEdit(1)
		require.NoError(t, err)

		_, err = s.Delete(ctx, 1, Always(true))
		require.NoError(t, err)
		assert.Equal(t, Composing{}, s.Session())
		assert.Equal(t, view.ModeForward, surface.Mode())
	})

	t.Run("later record leaves session alone", func(t *testing.T) {
		s, _, _ := newTestStore(t, alice, bob)
		_, err := s.BeginEdit(0)
		require.NoError(t, err)

		_, err = s.Delete(ctx, 1, Always(true))
		require.NoError(t, err)
		assert.Equal(t, Editing{Position: 0, ID: alice.ID}, s.Session())
	})
}

// ---------------------------------------------------------------------------
// Filter / Search
// ---------------------------------------------------------------------------

func TestContactStore_Filter(t *testing.T) {
	s, _, _ := newTestStore(t, alice, bob, carol)

	assert.Equal(t, []model.ContactRecord{alice}, s.Filter("AL"))
	assert.Equal(t, []model.ContactRecord{alice, bob, carol}, s.Filter(""))
	assert.Equal(t, []model.ContactRecord{bob}, s.Filter("EXAMPLE.ORG"))
	assert.Len(t, s.Filter("example."), 3)
	assert.Empty(t, s.Filter("zzz"))
	assert.Equal(t, []model.ContactRecord{alice, bob, carol}, s.Records(), "filter must not mutate")
}

func TestContactStore_Filter_UnicodeFold(t *testing.T) {
	s, _, _ := newTestStore(t, model.ContactRecord{ID: 1, Name: "Jürgen Straße", Email: "j@x.de"})

	assert.Len(t, s.Filter("JÜRGEN"), 1)
	assert.Len(t, s.Filter("STRAßE"), 1)
	assert.Len(t, s.Filter("J@X.DE"), 1)
}

func TestContactStore_Search_RendersStorePositions(t *testing.T) {
	s, _, surface := newTestStore(t, alice, bob, carol)

	shown := s.Search("carol")
	require.Len(t, shown, 1)

	pv := surface.Snapshot()
	assert.Equal(t, "carol", pv.Search)
	require.Len(t, pv.List.Cards, 1)
	assert.Equal(t, 2, pv.List.Cards[0].Position)

	_, err := s.BeginEdit(pv.List.Cards[0].Position)
	require.NoError(t, err)
	assert.Equal(t, carol.Fields(), surface.Fields())
}

func TestContactStore_Search_NoMatchShowsPlaceholder(t *testing.T) {
	s, _, surface := newTestStore(t, alice)

	s.Search("nobody")
	assert.True(t, surface.Snapshot().List.Empty)
}

// ---------------------------------------------------------------------------
// Submit decision
// ---------------------------------------------------------------------------

func TestContactStore_Submit_ComposingForwards(t *testing.T) {
	s, _, _ := newTestStore(t)

	d, err := s.Submit(context.Background(), valid("Eve"), true)
	require.NoError(t, err)
	assert.True(t, d.AllowForward)
	assert.Equal(t, OutcomeCreated, d.Outcome)
	assert.Equal(t, "Eve", d.Record.Name)
	assert.Equal(t, 1, s.Len())
}

func TestContactStore_Submit_ComposingInvalidSuppressed(t *testing.T) {
	s, _, surface := newTestStore(t)

	d, err := s.Submit(context.Background(), model.ContactFields{Name: "Eve"}, true)
	require.NoError(t, err)
	assert.False(t, d.AllowForward)
	assert.Equal(t, OutcomeRejected, d.Outcome)
	require.NotNil(t, d.Rejection)
	assert.Equal(t, "email", d.Rejection.Field)
	assert.Equal(t, 0, s.Len())
	assert.NotEmpty(t, surface.Snapshot().Form.Message)
}

func TestContactStore_Submit_EditingNeverForwards(t *testing.T) {
	s, _, _ := newTestStore(t, alice)
	ctx := context.Background()
	_, err := s.BeginEdit(0)
	require.NoError(t, err)

	d, err := s.Submit(ctx, model.ContactFields{Name: "Al"}, true)
	require.NoError(t, err)
	assert.False(t, d.AllowForward)
	assert.Equal(t, OutcomeRejected, d.Outcome)
	assert.IsType(t, Editing{}, s.Session(), "failed commit keeps the session")

	d, err = s.Submit(ctx, valid("Alicia"), true)
	require.NoError(t, err)
	assert.False(t, d.AllowForward)
	assert.Equal(t, OutcomeUpdated, d.Outcome)
	assert.Equal(t, alice.ID, d.Record.ID)
	assert.Equal(t, Composing{}, s.Session())
	assert.Equal(t, 1, s.Len())
}

func TestContactStore_Submit_PersistError(t *testing.T) {
	s, repo, _ := newTestStore(t)
	repo.saveErr = errors.New("io")

	d, err := s.Submit(context.Background(), valid("Eve"), true)
	assert.Error(t, err)
	assert.False(t, d.AllowForward)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
}

func TestContactStore_View_DoesNotRender(t *testing.T) {
	s, _, surface := newTestStore(t, alice, bob)
	s.Search("bob")

	lv := s.View("ali")
	require.Len(t, lv.Cards, 1)
	assert.Equal(t, 0, lv.Cards[0].Position)
	assert.Equal(t, "bob", surface.Snapshot().List.Cards[0].Name, "View must leave the surface alone")
}

func TestContactStore_Submit_NotForwardedStoresUnsent(t *testing.T) {
	s, repo, _ := newTestStore(t)

	d, err := s.Submit(context.Background(), valid("Eve"), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, d.Outcome)
	assert.False(t, d.Record.EmailSent)
	require.Len(t, repo.stored, 1)
	assert.False(t, repo.stored[0].EmailSent)

	d, err = s.Submit(context.Background(), valid("Fay"), true)
	require.NoError(t, err)
	assert.True(t, d.Record.EmailSent)
}

func TestContactStore_Create_ClearsEarlierRejectedInput(t *testing.T) {
	s, _, surface := newTestStore(t)
	rejected := model.ContactFields{Name: "Eve", Email: "typo@nowhere", Phone: "1", Message: "m"}
	surface.ShowFields(rejected)

	_, err := s.Submit(context.Background(), rejected, true)
	require.NoError(t, err)
	assert.Equal(t, rejected, surface.Fields())

	_, err = s.Submit(context.Background(), valid("Eve"), true)
	require.NoError(t, err)
	assert.True(t, surface.Fields().IsZero())
}

// ---------------------------------------------------------------------------
// EditAt
// ---------------------------------------------------------------------------

func TestContactStore_EditAt_ReplacesOnlyTarget(t *testing.T) {
	s, repo, _ := newTestStore(t, alice, bob, carol)

	rec, err := s.EditAt(context.Background(), 2, valid("Caroline"))
	require.NoError(t, err)
	assert.Equal(t, carol.ID, rec.ID)
	assert.False(t, rec.EmailSent)
	assert.Equal(t, "10/17/2026", rec.Date)

	got := s.Records()
	assert.Equal(t, []model.ContactRecord{alice, bob, rec}, got)
	assert.Equal(t, got, repo.stored)
}

func TestContactStore_EditAt_LeavesSessionAlone(t *testing.T) {
	s, _, surface := newTestStore(t, alice, bob)
	_, err := s.BeginEdit(1)
	require.NoError(t, err)

	_, err = s.EditAt(context.Background(), 0, valid("Ali"))
	require.NoError(t, err)
	assert.Equal(t, Editing{Position: 1, ID: bob.ID}, s.Session())
	assert.Equal(t, bob.Fields(), surface.Fields())
}

func TestContactStore_EditAt_Rejects(t *testing.T) {
	s, repo, surface := newTestStore(t, alice)

	_, err := s.EditAt(context.Background(), 0, model.ContactFields{Name: "x"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, surface.Snapshot().Form.Message, "API edits do not write to the shared form")

	_, err = s.EditAt(context.Background(), 3, valid("x"))
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	repo.saveErr = errors.New("disk full")
	_, err = s.EditAt(context.Background(), 0, valid("x"))
	assert.Error(t, err)
	assert.Equal(t, alice, s.Records()[0])
}

func TestContactStore_EditAt_UnaffectedByConcurrentBeginEdit(t *testing.T) {
	s, _, _ := newTestStore(t, alice, bob)
	ctx := context.Background()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_, _ = s.BeginEdit(1)
			}
		}
	}()

	for i := 0; i < 500; i++ {
		_, err := s.EditAt(ctx, 0, valid("Zed"))
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	got := s.Records()
	assert.Equal(t, "Zed", got[0].Name)
	assert.Equal(t, bob, got[1])
}
