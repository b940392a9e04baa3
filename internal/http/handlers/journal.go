package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/service"
)

type journalEntryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Mood       string `json:"mood"`
	IsLocked   bool   `json:"is_locked"`
	CategoryID *int64 `json:"category_id"`
}

func (in journalEntryRequest) toInput() service.JournalInput {
	return service.JournalInput{
		Title:      in.Title,
		Content:    in.Content,
		Mood:       in.Mood,
		IsLocked:   in.IsLocked,
		CategoryID: in.CategoryID,
	}
}

type unlockRequest struct {
	Password string `json:"password"`
}

func (h *Handlers) JournalEntries(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entries, err := h.svc.JournalEntries(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *Handlers) JournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.JournalEntry(r.Context(), id.UserID, entryID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in journalEntryRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.CreateJournalEntry(r.Context(), id.UserID, in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handlers) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in journalEntryRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.UpdateJournalEntry(r.Context(), id.UserID, entryID, in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteJournalEntry(r.Context(), id.UserID, entryID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Journal entry deleted successfully."})
}

// UnlockJournalEntry отдаёт полный текст заблокированной записи по паролю дневника.
func (h *Handlers) UnlockJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entryID, err := pathID(r, "entryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in unlockRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.UnlockJournalEntry(r.Context(), id.UserID, entryID, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *Handlers) JournalCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.JournalCategories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}
