package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/pkg/redact"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register создаёт пользователя с ролью user и сразу выдаёт токен.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	const op = "service.auth.Register"

	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return nil, wrap(op, ErrRegisterFieldsRequired)
	}

	if !emailRe.MatchString(email) {
		return nil, wrap(op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, wrap(op, err)
	}

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	emailTaken, usernameTaken, err := s.users.UserTaken(ctx, email, username, 0)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}
	if emailTaken {
		lg.Warn("register_email_taken")
		return nil, wrap(op, ErrEmailTaken)
	}
	if usernameTaken {
		lg.Warn("register_username_taken")
		return nil, wrap(op, ErrUsernameTaken)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if uerr := uniqueErr(err); uerr != nil {
			lg.Warn("register_conflict", slog.String("err", err.Error()))
			return nil, wrap(op, uerr)
		}

		return nil, internalErr(ctx, op, err)
	}

	lg.Info("user_registered", slog.Int64("user_id", user.ID))

	return s.issueToken(ctx, user)
}

// Login проверяет email и пароль и выдаёт токен.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	const op = "service.auth.Login"

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, wrap(op, ErrLoginFieldsRequired)
	}

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login_failed", slog.String("reason", "unknown_email"))
			return nil, wrap(op, ErrInvalidCredentials)
		}

		return nil, internalErr(ctx, op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_failed", slog.String("reason", "bad_password"))
		return nil, wrap(op, ErrInvalidCredentials)
	}

	return s.issueToken(ctx, user)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return ErrWeakPassword
	}

	return nil
}

// uniqueErr переводит нарушение уникальности users в клиентскую ошибку.
func uniqueErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrEmailExists):
		return ErrEmailTaken
	case errors.Is(err, storage.ErrUsernameExists):
		return ErrUsernameTaken
	}

	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	cost := s.cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(b), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
