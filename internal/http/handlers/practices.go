package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
)

type sedonaLogRequest struct {
	ReflectionText *string `json:"reflectionText"`
}

// SedonaExercises — GET /sedona/exercises.
func (h *Handlers) SedonaExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"exercises": h.svc.SedonaExercises()})
}

func (h *Handlers) CreateSedonaLog(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in sedonaLogRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	l, err := h.svc.LogSedonaSession(r.Context(), id.UserID, in.ReflectionText)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, l)
}

func (h *Handlers) SedonaLogs(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	logs, err := h.svc.SedonaLogs(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// MusicPlaylists — GET /music/playlist и /music/playlists.
func (h *Handlers) MusicPlaylists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.MusicPlaylists())
}
