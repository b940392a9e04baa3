package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

type meditationRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Theme           *string `json:"theme"`
	AudioURL        *string `json:"audio_url"`
	DurationSeconds *int    `json:"duration_seconds"`
}

type resourceRequest struct {
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContactInfo *string `json:"contact_info"`
	Link        *string `json:"link"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// DailyQuote — цитата дня, одна на сутки (UTC).
func (h *Handlers) DailyQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.DailyQuote())
}

func (h *Handlers) EmergencyContacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.EmergencyContacts())
}

func (h *Handlers) EmergencyResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.EmergencyResources())
}

func (h *Handlers) Meditations(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Meditations(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateMeditation(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in meditationRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	m, err := h.svc.CreateMeditation(r.Context(), id.UserID, models.Meditation{
		Title:           deref(in.Title),
		Description:     in.Description,
		Theme:           in.Theme,
		AudioURL:        deref(in.AudioURL),
		DurationSeconds: in.DurationSeconds,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) UpdateMeditation(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	medID, err := pathID(r, "meditationID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in meditationRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	m, err := h.svc.UpdateMeditation(r.Context(), id.UserID, medID, storage.MeditationUpdate{
		Title:           in.Title,
		Description:     in.Description,
		Theme:           in.Theme,
		AudioURL:        in.AudioURL,
		DurationSeconds: in.DurationSeconds,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) DeleteMeditation(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	medID, err := pathID(r, "meditationID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteMeditation(r.Context(), id.UserID, medID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Meditation %d deleted successfully.", medID)})
}

func (h *Handlers) Resources(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Resources(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in resourceRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.CreateResource(r.Context(), id.UserID, models.Resource{
		Category:    deref(in.Category),
		Title:       deref(in.Title),
		Description: in.Description,
		ContactInfo: in.ContactInfo,
		Link:        in.Link,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

func (h *Handlers) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resID, err := pathID(r, "resourceID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in resourceRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.UpdateResource(r.Context(), id.UserID, resID, storage.ResourceUpdate{
		Category:    in.Category,
		Title:       in.Title,
		Description: in.Description,
		ContactInfo: in.ContactInfo,
		Link:        in.Link,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resID, err := pathID(r, "resourceID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteResource(r.Context(), id.UserID, resID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Resource %d deleted successfully.", resID)})
}
