package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/pkg/log"
)

var sedonaExercises = []models.SedonaExercise{
	{
		ID:          1,
		Title:       "Basic Releasing",
		Description: "Learn the fundamental releasing technique",
		Duration:    "10 minutes",
		Steps: []string{
			"Focus on an issue you'd like to work on",
			"Allow yourself to feel the emotions around this issue",
			`Ask yourself: "Could I let this feeling go?"`,
			`Ask yourself: "Would I let it go?"`,
			`Ask yourself: "When?"`,
		},
	},
	{
		ID:          2,
		Title:       "Emotional Freedom",
		Description: "Release deep-seated emotional patterns",
		Duration:    "15 minutes",
		Steps: []string{
			"Identify an emotional pattern you'd like to release",
			"Welcome the feelings that arise",
			"Notice your resistance to these feelings",
			"Allow the resistance to be there",
			"Choose to let go of the resistance",
		},
	},
	{
		ID:          3,
		Title:       "Goal Releasing",
		Description: "Release attachments to outcomes",
		Duration:    "12 minutes",
		Steps: []string{
			"Think of a goal you're attached to",
			"Notice the feelings of wanting and attachment",
			"Allow yourself to want what you want",
			"Could you let go of wanting it?",
			"Notice the peace that remains",
		},
	},
}

var playlists = []models.Playlist{
	{
		ID:          1,
		Title:       "Calming Nature Sounds",
		Description: "Soothing sounds of nature to help you relax",
		Tracks: []models.Track{
			{ID: 1, Title: "Forest Stream", Duration: "10:00", URL: "https://example.com/forest-stream.mp3"},
			{ID: 2, Title: "Ocean Waves", Duration: "15:00", URL: "https://example.com/ocean-waves.mp3"},
			{ID: 3, Title: "Peaceful Piano Melody", Duration: "3:45", URL: "https://example.com/peaceful_piano.mp3"},
		},
	},
}

func (s *Service) SedonaExercises() []models.SedonaExercise {
	return sedonaExercises
}

// LogSedonaSession отмечает пройденную сессию. Пустая рефлексия хранится как NULL.
func (s *Service) LogSedonaSession(ctx context.Context, userID int64, reflection *string) (*models.SedonaLog, error) {
	const op = "service.practices.LogSedonaSession"

	if reflection != nil {
		r := strings.TrimSpace(*reflection)
		if r == "" {
			reflection = nil
		} else {
			reflection = &r
		}
	}

	l, err := s.sedona.CreateSedonaLog(ctx, userID, reflection)
	if err != nil {
		return nil, internalErr(ctx, op, err, "user_id", userID)
	}

	log.From(ctx).Info("sedona_session_logged", slog.String("op", op), slog.Int64("user_id", userID))

	return l, nil
}

func (s *Service) SedonaLogs(ctx context.Context, userID int64) ([]models.SedonaLog, error) {
	const op = "service.practices.SedonaLogs"

	logs, err := s.sedona.SedonaLogs(ctx, userID)
	if err != nil {
		return nil, internalErr(ctx, op, err, "user_id", userID)
	}
	if logs == nil {
		logs = []models.SedonaLog{}
	}

	return logs, nil
}

func (s *Service) MusicPlaylists() []models.Playlist {
	return playlists
}
