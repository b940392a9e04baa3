package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/pkg/log"
)

var quotes = []models.Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Peace comes from within. Do not seek it without.", Author: "Buddha"},
	{Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama"},
	{Text: "You yourself, as much as anybody in the entire universe, deserve your love and affection.", Author: "Buddha"},
	{Text: "Every moment is a fresh beginning.", Author: "T.S. Eliot"},
	{Text: "The journey of a thousand miles begins with one step.", Author: "Lao Tzu"},
	{Text: "The mind is everything. What you think you become.", Author: "Buddha"},
	{Text: "In the middle of every difficulty lies opportunity.", Author: "Albert Einstein"},
	{Text: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt"},
}

var emergencyContacts = []models.EmergencyContact{
	{
		Name:        "National Suicide Prevention Lifeline",
		Number:      "988",
		Description: "24/7, free and confidential support",
		Type:        "crisis",
	},
	{
		Name:        "Crisis Text Line",
		Number:      "Text HOME to 741741",
		Description: "24/7 text support with a crisis counselor",
		Type:        "crisis",
	},
	{
		Name:        "SAMHSA's National Helpline",
		Number:      "1-800-662-4357",
		Description: "Treatment referral and information service",
		Type:        "support",
	},
}

var emergencyResources = []models.EmergencyResource{
	{
		Title:   "Coping Strategies",
		Content: "Deep breathing, grounding exercises, and mindfulness techniques",
		Type:    "self-help",
	},
	{
		Title:   "Safety Plan",
		Content: "Steps to take when feeling unsafe or at risk",
		Type:    "planning",
	},
	{
		Title:   "Support Groups",
		Content: "Local and online support groups for mental health",
		Type:    "community",
	},
}

// DailyQuote — цитата дня: quotes[dayOfYear % len] по UTC.
func (s *Service) DailyQuote() models.Quote {
	return quotes[s.clock().YearDay()%len(quotes)]
}

func (s *Service) EmergencyContacts() []models.EmergencyContact {
	return emergencyContacts
}

func (s *Service) EmergencyResources() []models.EmergencyResource {
	return emergencyResources
}

func (s *Service) Meditations(ctx context.Context) ([]models.Meditation, error) {
	const op = "service.content.Meditations"

	list, err := s.content.Meditations(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return list, nil
}

func (s *Service) CreateMeditation(ctx context.Context, actorID int64, m models.Meditation) (*models.Meditation, error) {
	const op = "service.content.CreateMeditation"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}

	m.Title = strings.TrimSpace(m.Title)
	m.AudioURL = strings.TrimSpace(m.AudioURL)
	if m.Title == "" || m.AudioURL == "" {
		return nil, wrap(op, ErrMeditationRequired)
	}
	if m.DurationSeconds != nil && *m.DurationSeconds <= 0 {
		return nil, wrap(op, ErrInvalidDuration)
	}

	out, err := s.content.CreateMeditation(ctx, &m)
	if err != nil {
		return nil, s.contentErr(ctx, op, err, ErrMeditationNotFound, ErrInvalidDuration)
	}

	log.From(ctx).Info("meditation_created", slog.String("op", op), slog.Int64("meditation_id", out.ID))

	return out, nil
}

func (s *Service) UpdateMeditation(ctx context.Context, actorID, id int64, upd storage.MeditationUpdate) (*models.Meditation, error) {
	const op = "service.content.UpdateMeditation"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}
	if upd.Empty() {
		return nil, wrap(op, ErrNoValidFields)
	}
	if blank(upd.Title) || blank(upd.AudioURL) {
		return nil, wrap(op, ErrMeditationRequired)
	}
	if upd.DurationSeconds != nil && *upd.DurationSeconds <= 0 {
		return nil, wrap(op, ErrInvalidDuration)
	}

	out, err := s.content.UpdateMeditation(ctx, id, upd)
	if err != nil {
		return nil, s.contentErr(ctx, op, err, ErrMeditationNotFound, ErrInvalidDuration)
	}

	return out, nil
}

func (s *Service) DeleteMeditation(ctx context.Context, actorID, id int64) error {
	const op = "service.content.DeleteMeditation"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return wrap(op, err)
	}

	if err := s.content.DeleteMeditation(ctx, id); err != nil {
		return s.contentErr(ctx, op, err, ErrMeditationNotFound, nil)
	}

	return nil
}

func (s *Service) Resources(ctx context.Context) ([]models.Resource, error) {
	const op = "service.content.Resources"

	list, err := s.content.Resources(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return list, nil
}

func (s *Service) CreateResource(ctx context.Context, actorID int64, r models.Resource) (*models.Resource, error) {
	const op = "service.content.CreateResource"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}

	r.Category = strings.TrimSpace(r.Category)
	r.Title = strings.TrimSpace(r.Title)
	if r.Category == "" || r.Title == "" {
		return nil, wrap(op, ErrResourceRequired)
	}
	if !models.IsResourceCategory(r.Category) {
		return nil, wrap(op, ErrInvalidResourceCategory)
	}

	out, err := s.content.CreateResource(ctx, &r)
	if err != nil {
		return nil, s.contentErr(ctx, op, err, ErrResourceNotFound, ErrInvalidResourceCategory)
	}

	log.From(ctx).Info("resource_created", slog.String("op", op), slog.Int64("resource_id", out.ID))

	return out, nil
}

func (s *Service) UpdateResource(ctx context.Context, actorID, id int64, upd storage.ResourceUpdate) (*models.Resource, error) {
	const op = "service.content.UpdateResource"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}
	if upd.Empty() {
		return nil, wrap(op, ErrNoValidFields)
	}
	if blank(upd.Title) {
		return nil, wrap(op, ErrResourceRequired)
	}
	if upd.Category != nil {
		c := strings.TrimSpace(*upd.Category)
		if !models.IsResourceCategory(c) {
			return nil, wrap(op, ErrInvalidResourceCategory)
		}
		upd.Category = &c
	}

	out, err := s.content.UpdateResource(ctx, id, upd)
	if err != nil {
		return nil, s.contentErr(ctx, op, err, ErrResourceNotFound, ErrInvalidResourceCategory)
	}

	return out, nil
}

func (s *Service) DeleteResource(ctx context.Context, actorID, id int64) error {
	const op = "service.content.DeleteResource"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return wrap(op, err)
	}

	if err := s.content.DeleteResource(ctx, id); err != nil {
		return s.contentErr(ctx, op, err, ErrResourceNotFound, nil)
	}

	return nil
}

// blank: поле передано, но пустое после обрезки.
func blank(v *string) bool {
	return v != nil && strings.TrimSpace(*v) == ""
}

func (s *Service) contentErr(ctx context.Context, op string, err, notFoundErr, invalidErr error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return wrap(op, notFoundErr)
	case invalidErr != nil && errors.Is(err, storage.ErrInvalidValue):
		return wrap(op, invalidErr)
	}

	return internalErr(ctx, op, err)
}
