package handler

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/service"
	"github.com/givers/contacts/internal/view"
)

// Relay forwards accepted submissions to the third-party form relay.
type Relay interface {
	Endpoint() string
	Forward(ctx context.Context, fields model.ContactFields) (string, error)
}

// RelayConfig says how the default submit action reaches the relay.
// Mode is one of config.RelayRedirect, config.RelayProxy, config.RelayOff.
type RelayConfig struct {
	Mode   string
	Client Relay
}

// ContactHandler serves the contact form page and the contact JSON API.
type ContactHandler struct {
	contacts service.ContactService
	form     *view.FormState
	relay    RelayConfig
	tmpl     *template.Template
}

// NewContactHandler creates a ContactHandler. form must be the surface the
// contact store was constructed with.
func NewContactHandler(contacts service.ContactService, form *view.FormState, relay RelayConfig) *ContactHandler {
	if relay.Client == nil {
		relay.Mode = config.RelayOff
	}
	return &ContactHandler{
		contacts: contacts,
		form:     form,
		relay:    relay,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// forwards reports whether accepted submissions leave for the relay.
func (h *ContactHandler) forwards() bool {
	return h.relay.Mode != config.RelayOff
}

// contactRequest is the expected JSON body for POST/PUT /api/contacts.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (req contactRequest) fields() model.ContactFields {
	return model.ContactFields{Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message}
}

type validationResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type submitResponse struct {
	Outcome       string              `json:"outcome"`
	Forward       bool                `json:"forward"`
	RelayEndpoint string              `json:"relay_endpoint,omitempty"`
	SubmissionID  string              `json:"submission_id,omitempty"`
	Record        model.ContactRecord `json:"record"`
}

type listResponse struct {
	Contacts view.ListView `json:"contacts"`
}

// List handles GET /api/contacts. Query param q filters by name or email.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Contacts: h.contacts.View(r.URL.Query().Get("q"))})
}

// Create handles POST /api/contacts. It runs the submit decision; when the
// submission may be forwarded it is proxied to the relay or, in redirect
// mode, the relay endpoint is returned for the client to post to.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	d, err := h.contacts.Submit(r.Context(), req.fields(), h.forwards())
	if err != nil {
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "persist_failed")
		return
	}
	if d.Rejection != nil {
		writeValidation(w, d.Rejection)
		return
	}

	resp := submitResponse{Outcome: d.Outcome.String(), Forward: d.AllowForward, Record: d.Record}
	status := http.StatusOK
	if d.Outcome == service.OutcomeCreated {
		status = http.StatusCreated
	}

	if d.AllowForward {
		switch h.relay.Mode {
		case config.RelayRedirect:
			resp.RelayEndpoint = h.relay.Client.Endpoint()
		case config.RelayProxy:
			id, err := h.relay.Client.Forward(r.Context(), req.fields())
			if err != nil {
				slog.WarnContext(r.Context(), "relay forward failed", "id", d.Record.ID, "error", err)
				writeError(w, http.StatusBadGateway, "relay_failed")
				return
			}
			resp.SubmissionID = id
		default:
			resp.Forward = false
		}
	}

	writeJSON(w, status, resp)
}

// Update handles PUT /api/contacts/{position}: a local edit, never forwarded.
// It does not enter or leave the page's edit session.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	pos, ok := parsePosition(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	rec, err := h.contacts.EditAt(r.Context(), pos, req.fields())
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeValidation(w, verr)
			return
		}
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/contacts/{position}?confirm=true.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pos, ok := parsePosition(w, r)
	if !ok {
		return
	}
	confirmed := r.URL.Query().Get("confirm") == "true"

	deleted, err := h.contacts.Delete(r.Context(), pos, service.Always(confirmed))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusBadRequest, "confirmation_required")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parsePosition(w http.ResponseWriter, r *http.Request) (int, bool) {
	pos, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_position")
		return 0, false
	}
	return pos, true
}

func writeValidation(w http.ResponseWriter, verr *model.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
		Error:   "validation_failed",
		Field:   verr.Field,
		Message: verr.Message,
	})
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPositionOutOfRange):
		writeError(w, http.StatusNotFound, "position_out_of_range")
	case errors.Is(err, service.ErrNotEditing):
		writeError(w, http.StatusConflict, "not_editing")
	default:
		slog.ErrorContext(r.Context(), "contact store failed", "error", err)
		writeError(w, http.StatusInternalServerError, "persist_failed")
	}
}
