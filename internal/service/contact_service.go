package service

import (
	"context"
	"errors"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/view"
)

var (
	// ErrPositionOutOfRange is returned when an edit or delete names a position
	// outside the store. Surfaces only hand out valid positions, so this
	// indicates a stale or forged request.
	ErrPositionOutOfRange = errors.New("contact position out of range")

	// ErrNotEditing is returned by CommitEdit when no edit session is active.
	ErrNotEditing = errors.New("no edit in progress")
)

// DeletePrompt is the question put to the Confirmer before a delete.
const DeletePrompt = "Are you sure you want to delete this contact?"

// Surface is the form the contact store drives: four inputs, a primary
// action whose mode follows the edit session, a message line and the list.
type Surface interface {
	ShowFields(fields model.ContactFields)
	ClearFields()
	SetMode(mode view.Mode)
	ShowMessage(msg string)
	Render(list view.ListView, search string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Always answers every prompt with answer.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return answer })
}

// SessionState is either Composing or Editing.
type SessionState interface {
	isSessionState()
}

// Composing means no edit is in progress; submit creates and forwards.
type Composing struct{}

// Editing means the record at Position (with ID) is loaded in the form;
// submit saves locally and is never forwarded.
type Editing struct {
	Position int
	ID       int64
}

func (Composing) isSessionState() {}
func (Editing) isSessionState()   {}

// Outcome says what a submit did.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeCreated
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "rejected"
	}
}

// SubmitDecision tells the surface whether to let the form's default action
// (posting to the relay endpoint) go ahead.
type SubmitDecision struct {
	AllowForward bool
	Outcome      Outcome
	// Rejection is set when validation failed.
	Rejection *model.ValidationError
	// Record is the created or updated record.
	Record model.ContactRecord
}

type nopSurface struct{}

func (nopSurface) ShowFields(model.ContactFields) {}
func (nopSurface) ClearFields()                   {}
func (nopSurface) SetMode(view.Mode)              {}
func (nopSurface) ShowMessage(string)             {}
func (nopSurface) Render(view.ListView, string)   {}

// ContactService is the contact store as the surfaces see it.
type ContactService interface {
	Load(ctx context.Context) error
	Records() []model.ContactRecord
	Session() SessionState
	Filter(term string) []model.ContactRecord
	Search(term string) []model.ContactRecord
	View(term string) view.ListView
	BeginEdit(pos int) (model.ContactRecord, error)
	CommitEdit(ctx context.Context, fields model.ContactFields) (model.ContactRecord, error)
	CancelEdit()
	CreateFromSubmission(ctx context.Context, fields model.ContactFields) (bool, error)
	Submit(ctx context.Context, fields model.ContactFields, forward bool) (SubmitDecision, error)
	EditAt(ctx context.Context, pos int, fields model.ContactFields) (model.ContactRecord, error)
	Delete(ctx context.Context, pos int, confirmer Confirmer) (bool, error)
}

// Ensure ContactStore implements ContactService at compile time.
var _ ContactService = (*ContactStore)(nil)
