package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// ReminderInput — поля нового напоминания.
type ReminderInput struct {
	Type           string
	Title          string
	Time           string
	Enabled        *bool
	FrequencyHours *int
}

// Reminders возвращает напоминания пользователя, сгруппированные по типу.
// Группа присутствует всегда, даже пустая.
func (s *Service) Reminders(ctx context.Context, userID int64) (map[string][]models.Reminder, error) {
	const op = "service.reminders.Reminders"

	list, err := s.reminders.Reminders(ctx, userID)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	grouped := make(map[string][]models.Reminder, len(models.ReminderTypes))
	for _, t := range models.ReminderTypes {
		grouped[t] = []models.Reminder{}
	}
	for _, r := range list {
		grouped[r.Type] = append(grouped[r.Type], r)
	}

	return grouped, nil
}

func (s *Service) CreateReminder(ctx context.Context, userID int64, in ReminderInput) (*models.Reminder, error) {
	const op = "service.reminders.CreateReminder"

	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if !models.IsReminderType(typ) {
		return nil, wrap(op, ErrInvalidReminderType)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, wrap(op, ErrReminderTitleRequired)
	}

	at, err := parseClock(in.Time)
	if err != nil {
		return nil, wrap(op, err)
	}

	if in.FrequencyHours != nil && *in.FrequencyHours <= 0 {
		return nil, wrap(op, ErrInvalidFrequency)
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	r, err := s.reminders.CreateReminder(ctx, &models.Reminder{
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Time:           at,
		FrequencyHours: in.FrequencyHours,
		Enabled:        enabled,
	})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidValue) {
			return nil, wrap(op, ErrInvalidReminderTime)
		}

		return nil, internalErr(ctx, op, err)
	}

	return r, nil
}

func (s *Service) UpdateReminder(ctx context.Context, userID int64, typ string, id int64, upd storage.ReminderUpdate) (*models.Reminder, error) {
	const op = "service.reminders.UpdateReminder"

	typ = strings.ToLower(strings.TrimSpace(typ))
	if !models.IsReminderType(typ) {
		return nil, wrap(op, ErrInvalidReminderType)
	}
	if upd.Empty() {
		return nil, wrap(op, ErrNoValidFields)
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, wrap(op, ErrReminderTitleRequired)
		}
		upd.Title = &title
	}
	if upd.Time != nil {
		at, err := parseClock(*upd.Time)
		if err != nil {
			return nil, wrap(op, err)
		}
		upd.Time = &at
	}
	if upd.FrequencyHours != nil && *upd.FrequencyHours <= 0 {
		return nil, wrap(op, ErrInvalidFrequency)
	}

	r, err := s.reminders.UpdateReminder(ctx, userID, typ, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, wrap(op, ErrReminderNotFound)
		case errors.Is(err, storage.ErrInvalidValue):
			return nil, wrap(op, ErrInvalidReminderTime)
		}

		return nil, internalErr(ctx, op, err)
	}

	return r, nil
}

func (s *Service) DeleteReminder(ctx context.Context, userID int64, typ string, id int64) error {
	const op = "service.reminders.DeleteReminder"

	typ = strings.ToLower(strings.TrimSpace(typ))
	if !models.IsReminderType(typ) {
		return wrap(op, ErrInvalidReminderType)
	}

	if err := s.reminders.DeleteReminder(ctx, userID, typ, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return wrap(op, ErrReminderNotFound)
		}

		return internalErr(ctx, op, err)
	}

	return nil
}

// parseClock принимает HH:MM или HH:MM:SS и возвращает HH:MM:SS.
func parseClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("15:04:05"), nil
		}
	}

	return "", ErrInvalidReminderTime
}
