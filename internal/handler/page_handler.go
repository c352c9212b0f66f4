package handler

import (
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/service"
	"github.com/givers/contacts/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// Messages shown on the page after a forwarded submission.
const (
	msgSent       = "Thanks! Your message has been sent."
	msgSaved      = "Your message has been saved."
	msgNotSent    = "Your message was saved but could not be sent right now."
	msgSaveFailed = "Your message could not be saved. Please try again."
)

// Notices travel in the redirect URL so each visitor sees only their own.
var notices = map[string]string{
	"sent":   msgSent,
	"saved":  msgSaved,
	"unsent": msgNotSent,
}

type confirmData struct {
	Prompt string
	Card   view.Card
}

// Index handles GET /: the form, the search box and the message list.
func (h *ContactHandler) Index(w http.ResponseWriter, r *http.Request) {
	pv := h.page(r.URL.Query().Get("q"))
	if msg, ok := notices[r.URL.Query().Get("notice")]; ok {
		pv.Form.Message = msg
	}
	h.renderPage(w, r, http.StatusOK, pv)
}

// SubmitForm handles POST /contact from the page form.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	fields := model.ContactFields{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	d, err := h.contacts.Submit(r.Context(), fields, h.forwards())
	if err != nil {
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err)
		pv := h.page("")
		pv.Form.Fields = fields
		pv.Form.Message = msgSaveFailed
		h.renderPage(w, r, http.StatusInternalServerError, pv)
		return
	}
	if d.Rejection != nil {
		// Keep what the visitor typed, in this response only.
		pv := h.page("")
		pv.Form.Fields = fields
		pv.Form.Message = d.Rejection.Message
		h.renderPage(w, r, http.StatusUnprocessableEntity, pv)
		return
	}
	if !d.AllowForward {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch h.relay.Mode {
	case config.RelayRedirect:
		// 307 keeps the method and body, so the browser posts the same form to the relay.
		http.Redirect(w, r, h.relay.Client.Endpoint(), http.StatusTemporaryRedirect)
		return
	case config.RelayProxy:
		notice := "sent"
		if _, err := h.relay.Client.Forward(r.Context(), fields); err != nil {
			slog.WarnContext(r.Context(), "relay forward failed", "id", d.Record.ID, "error", err)
			notice = "unsent"
		}
		http.Redirect(w, r, "/?notice="+notice, http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/?notice=saved", http.StatusSeeOther)
	}
}

// EditForm handles POST /contact/{position}/edit.
func (h *ContactHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := h.contacts.BeginEdit(pos); err != nil {
		h.pageStoreError(w, r, err)
		return
	}
	http.Redirect(w, r, "/#contact-form", http.StatusSeeOther)
}

// CancelForm handles POST /contact/cancel.
func (h *ContactHandler) CancelForm(w http.ResponseWriter, r *http.Request) {
	h.contacts.CancelEdit()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ConfirmDelete handles GET /contact/{position}/delete and asks for confirmation.
func (h *ContactHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	records := h.contacts.Records()
	if pos < 0 || pos >= len(records) {
		http.NotFound(w, r)
		return
	}
	lv := view.Project(records, records[pos:pos+1])

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "confirm.html", confirmData{Prompt: service.DeletePrompt, Card: lv.Cards[0]}); err != nil {
		slog.ErrorContext(r.Context(), "render confirm page", "error", err)
	}
}

// DeleteForm handles POST /contact/{position}/delete. Only confirm=yes deletes.
func (h *ContactHandler) DeleteForm(w http.ResponseWriter, r *http.Request) {
	pos, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	confirmed := r.PostFormValue("confirm") == "yes"
	if _, err := h.contacts.Delete(r.Context(), pos, service.Always(confirmed)); err != nil {
		h.pageStoreError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ContactHandler) pageStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrPositionOutOfRange) {
		http.NotFound(w, r)
		return
	}
	slog.ErrorContext(r.Context(), "contact store failed", "error", err)
	http.Error(w, msgSaveFailed, http.StatusInternalServerError)
}

// page builds one response's view: the shared form state with the list
// filtered by q. It never writes the filter back to the shared state.
func (h *ContactHandler) page(q string) view.PageView {
	pv := h.form.Snapshot()
	pv.List = h.contacts.View(q)
	pv.Search = q
	return pv
}

func (h *ContactHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, pv view.PageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, "page.html", pv); err != nil {
		slog.ErrorContext(r.Context(), "render page", "error", err)
	}
}
