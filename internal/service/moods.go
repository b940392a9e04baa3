package service

import (
	"context"
	"strings"
	"time"

	"github.com/pribylovaa/mindwell/internal/models"
)

const defaultMoodIntensity = 3

// LogMood записывает настроение. Интенсивность по умолчанию 3.
func (s *Service) LogMood(ctx context.Context, userID int64, mood string, note *string, intensity *int) (*models.MoodLog, error) {
	const op = "service.moods.LogMood"

	mood = strings.ToLower(strings.TrimSpace(mood))
	if !models.IsMood(mood) {
		return nil, wrap(op, ErrInvalidMood)
	}

	level := defaultMoodIntensity
	if intensity != nil {
		level = *intensity
	}
	if level < 1 || level > 5 {
		return nil, wrap(op, ErrInvalidIntensity)
	}

	if note != nil {
		n := strings.TrimSpace(*note)
		if n == "" {
			note = nil
		} else {
			note = &n
		}
	}

	m, err := s.moods.CreateMoodLog(ctx, &models.MoodLog{
		UserID:    userID,
		Mood:      mood,
		Note:      note,
		Intensity: level,
	})
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return m, nil
}

// MoodLogs возвращает логи пользователя в диапазоне; nil-граница открыта.
func (s *Service) MoodLogs(ctx context.Context, userID int64, from, to *time.Time) ([]models.MoodLog, error) {
	const op = "service.moods.MoodLogs"

	if from != nil && to != nil && to.Before(*from) {
		return nil, wrap(op, ErrInvalidRange)
	}

	logs, err := s.moods.MoodLogs(ctx, userID, from, to)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return logs, nil
}

// MoodSummary — обезличенная сводка по всем пользователям.
func (s *Service) MoodSummary(ctx context.Context) (*models.MoodSummary, error) {
	const op = "service.moods.MoodSummary"

	sum, err := s.moods.MoodSummary(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return sum, nil
}
