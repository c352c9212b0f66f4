package view

import (
	"sync"

	"github.com/givers/contacts/internal/model"
)

// Mode is the semantic of the form's primary action.
type Mode int

const (
	// ModeForward submits the form to the relay endpoint.
	ModeForward Mode = iota
	// ModeLocalSave only saves the edited record locally.
	ModeLocalSave
)

func (m Mode) String() string {
	if m == ModeLocalSave {
		return "local_save"
	}
	return "forward"
}

// FormView describes the contact form as it should be drawn.
type FormView struct {
	Fields       model.ContactFields `json:"fields"`
	Mode         string              `json:"mode"`
	ButtonLabel  string              `json:"buttonLabel"`
	CancelButton bool                `json:"cancelButton"`
	Message      string              `json:"message,omitempty"`
}

// PageView is everything a surface needs to draw the contact section.
type PageView struct {
	Form   FormView `json:"form"`
	List   ListView `json:"list"`
	Search string   `json:"search,omitempty"`
}

// ButtonLabel returns the primary action label for mode.
func ButtonLabel(m Mode) string {
	if m == ModeLocalSave {
		return "Update Message"
	}
	return "Send Message"
}

// FormState records what the contact store asked a surface to show.
// It is safe for concurrent use; the HTTP page and the CLI both draw from it.
type FormState struct {
	mu      sync.Mutex
	fields  model.ContactFields
	mode    Mode
	message string
	list    ListView
	search  string
}

// NewFormState returns an empty form in forward mode.
func NewFormState() *FormState {
	return &FormState{list: ListView{Empty: true, Placeholder: Placeholder}}
}

func (s *FormState) ShowFields(f model.ContactFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = f
}

func (s *FormState) ClearFields() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = model.ContactFields{}
}

func (s *FormState) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *FormState) ShowMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

func (s *FormState) Render(list ListView, search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	s.search = search
}

// Mode returns the current primary action mode.
func (s *FormState) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Fields returns the fields currently in the form.
func (s *FormState) Fields() model.ContactFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// Snapshot returns the page to draw and consumes the pending message.
func (s *FormState) Snapshot() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	pv := PageView{
		Form: FormView{
			Fields:       s.fields,
			Mode:         s.mode.String(),
			ButtonLabel:  ButtonLabel(s.mode),
			CancelButton: s.mode == ModeLocalSave,
			Message:      s.message,
		},
		List:   s.list,
		Search: s.search,
	}
	s.message = ""
	return pv
}
