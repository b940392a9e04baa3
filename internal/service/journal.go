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

// JournalInput — поля записи дневника при создании и полной правке.
type JournalInput struct {
	Title      string
	Content    string
	Mood       string
	IsLocked   bool
	CategoryID *int64
}

// normalize обрезает поля и приводит неизвестное настроение к neutral.
func (in *JournalInput) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" || in.Content == "" {
		return ErrJournalFieldsRequired
	}

	in.Mood = strings.ToLower(strings.TrimSpace(in.Mood))
	if !models.IsMood(in.Mood) {
		in.Mood = models.MoodNeutral
	}

	return nil
}

// JournalEntries возвращает записи пользователя; текст заблокированных скрыт.
func (s *Service) JournalEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	const op = "service.journal.JournalEntries"

	entries, err := s.journal.JournalEntries(ctx, userID)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	for i := range entries {
		entries[i].Mask()
	}

	return entries, nil
}

func (s *Service) JournalEntry(ctx context.Context, userID, id int64) (*models.JournalEntry, error) {
	const op = "service.journal.JournalEntry"

	entry, err := s.entry(ctx, op, userID, id)
	if err != nil {
		return nil, err
	}

	entry.Mask()

	return entry, nil
}

func (s *Service) CreateJournalEntry(ctx context.Context, userID int64, in JournalInput) (*models.JournalEntry, error) {
	const op = "service.journal.CreateJournalEntry"

	if err := in.normalize(); err != nil {
		return nil, wrap(op, err)
	}

	if err := s.checkLockAllowed(ctx, op, userID, in.IsLocked); err != nil {
		return nil, err
	}

	content := in.Content
	entry, err := s.journal.CreateJournalEntry(ctx, &models.JournalEntry{
		UserID:     userID,
		Title:      in.Title,
		Content:    &content,
		Mood:       in.Mood,
		IsLocked:   in.IsLocked,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, s.journalWriteErr(ctx, op, err)
	}

	return entry, nil
}

func (s *Service) UpdateJournalEntry(ctx context.Context, userID, id int64, in JournalInput) (*models.JournalEntry, error) {
	const op = "service.journal.UpdateJournalEntry"

	if err := in.normalize(); err != nil {
		return nil, wrap(op, err)
	}

	if err := s.checkLockAllowed(ctx, op, userID, in.IsLocked); err != nil {
		return nil, err
	}

	entry, err := s.journal.UpdateJournalEntry(ctx, userID, id, storage.JournalUpdate{
		Title:      in.Title,
		Content:    in.Content,
		Mood:       in.Mood,
		IsLocked:   in.IsLocked,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		return nil, s.journalWriteErr(ctx, op, err)
	}

	return entry, nil
}

func (s *Service) DeleteJournalEntry(ctx context.Context, userID, id int64) error {
	const op = "service.journal.DeleteJournalEntry"

	if err := s.journal.DeleteJournalEntry(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return wrap(op, ErrEntryNotFound)
		}

		return internalErr(ctx, op, err)
	}

	return nil
}

// UnlockJournalEntry возвращает полный текст заблокированной записи
// после проверки пароля дневника.
func (s *Service) UnlockJournalEntry(ctx context.Context, userID, id int64, password string) (*models.JournalEntry, error) {
	const op = "service.journal.UnlockJournalEntry"

	user, err := s.userByID(ctx, op, userID)
	if err != nil {
		return nil, err
	}
	if user.JournalPasswordHash == nil {
		return nil, wrap(op, ErrJournalPasswordNotSet)
	}

	entry, err := s.entry(ctx, op, userID, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsLocked {
		return nil, wrap(op, ErrEntryNotLocked)
	}

	if !checkPassword(*user.JournalPasswordHash, password) {
		log.From(ctx).Warn("journal_unlock_failed",
			slog.String("op", op),
			slog.Int64("user_id", userID),
			slog.Int64("entry_id", id),
		)
		return nil, wrap(op, ErrIncorrectJournalPass)
	}

	return entry, nil
}

func (s *Service) JournalCategories(ctx context.Context) ([]models.JournalCategory, error) {
	const op = "service.journal.JournalCategories"

	cats, err := s.journal.JournalCategories(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return cats, nil
}

func (s *Service) entry(ctx context.Context, op string, userID, id int64) (*models.JournalEntry, error) {
	entry, err := s.journal.JournalEntry(ctx, userID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrEntryNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return entry, nil
}

// checkLockAllowed: заблокировать запись можно только при заданном пароле дневника.
func (s *Service) checkLockAllowed(ctx context.Context, op string, userID int64, locked bool) error {
	if !locked {
		return nil
	}

	user, err := s.userByID(ctx, op, userID)
	if err != nil {
		return err
	}
	if user.JournalPasswordHash == nil {
		return wrap(op, ErrLockNeedsPassword)
	}

	return nil
}

func (s *Service) journalWriteErr(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return wrap(op, ErrEntryNotFound)
	case errors.Is(err, storage.ErrInvalidReference):
		return wrap(op, ErrInvalidCategory)
	}

	return internalErr(ctx, op, err)
}
