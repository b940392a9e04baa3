package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/pribylovaa/mindwell/internal/storage"
)

type moodRequest struct {
	Mood      string  `json:"mood"`
	Note      *string `json:"note"`
	Intensity *int    `json:"intensity"`
}

type waterLogRequest struct {
	AmountML int `json:"amount_ml"`
}

type waterGoalRequest struct {
	GoalML int `json:"goal_ml"`
}

type waterGoalResponse struct {
	Goal int `json:"goal"`
}

type waterLogsResponse struct {
	Logs []models.WaterLogDetail `json:"logs"`
}

type reminderRequest struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Time           string `json:"time"`
	Enabled        *bool  `json:"enabled"`
	FrequencyHours *int   `json:"frequency_hours"`
}

type reminderUpdateRequest struct {
	Title          *string `json:"title"`
	Time           *string `json:"time"`
	Enabled        *bool   `json:"enabled"`
	FrequencyHours *int    `json:"frequency_hours"`
}

type reminderDeletedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func (h *Handlers) LogMood(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in moodRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	entry, err := h.svc.LogMood(r.Context(), id.UserID, in.Mood, in.Note, in.Intensity)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// MoodLogs — GET /moods?start=&end=.
func (h *Handlers) MoodLogs(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	from, err := queryTime(r, "start")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	to, err := queryTime(r, "end")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	logs, err := h.svc.MoodLogs(r.Context(), id.UserID, from, to)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *Handlers) MoodSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.MoodSummary(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// WaterProgress — GET /water/progress?date=YYYY-MM-DD, по умолчанию сегодня (UTC).
func (h *Handlers) WaterProgress(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	day, err := queryDate(r, "date")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	progress, err := h.svc.WaterProgress(r.Context(), id.UserID, day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

func (h *Handlers) WaterLogsDetailed(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	day, err := queryDate(r, "date")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	logs, err := h.svc.WaterLogsDetailed(r.Context(), id.UserID, day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if logs == nil {
		logs = []models.WaterLogDetail{}
	}

	writeJSON(w, http.StatusOK, waterLogsResponse{Logs: logs})
}

func (h *Handlers) LogWater(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in waterLogRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.LogWater(r.Context(), id.UserID, in.AmountML)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

func (h *Handlers) WaterGoal(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	goal, err := h.svc.WaterGoal(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, waterGoalResponse{Goal: goal})
}

func (h *Handlers) SetWaterGoal(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in waterGoalRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	goal, err := h.svc.SetWaterGoal(r.Context(), id.UserID, in.GoalML)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, waterGoalResponse{Goal: goal})
}

// WaterStats — GET /water/stats?start=&end= (YYYY-MM-DD); без границ — последние 30 дней.
func (h *Handlers) WaterStats(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	from, err := queryDate(r, "start")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	to, err := queryDate(r, "end")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	stats, err := h.svc.WaterStats(r.Context(), id.UserID, from, to)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) Reminders(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	grouped, err := h.svc.Reminders(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, grouped)
}

func (h *Handlers) CreateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in reminderRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reminder, err := h.svc.CreateReminder(r.Context(), id.UserID, service.ReminderInput{
		Type:           in.Type,
		Title:          in.Title,
		Time:           in.Time,
		Enabled:        in.Enabled,
		FrequencyHours: in.FrequencyHours,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reminder)
}

func (h *Handlers) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reminderID, err := pathID(r, "reminderID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in reminderUpdateRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	upd := storage.ReminderUpdate{
		Title:          in.Title,
		Time:           in.Time,
		Enabled:        in.Enabled,
		FrequencyHours: in.FrequencyHours,
	}

	reminder, err := h.svc.UpdateReminder(r.Context(), id.UserID, chi.URLParam(r, "type"), reminderID, upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reminder)
}

func (h *Handlers) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	reminderID, err := pathID(r, "reminderID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteReminder(r.Context(), id.UserID, chi.URLParam(r, "type"), reminderID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reminderDeletedResponse{Message: "Reminder deleted successfully", ID: reminderID})
}
