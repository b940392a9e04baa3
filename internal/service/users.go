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

// Profile возвращает профиль текущего пользователя.
func (s *Service) Profile(ctx context.Context, userID int64) (*models.User, error) {
	const op = "service.users.Profile"

	return s.userByID(ctx, op, userID)
}

// UpdateProfile применяет частичное обновление профиля.
// Ключ аватара меняется только через ConfirmAvatar.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, upd storage.UserUpdate) (*models.User, error) {
	const op = "service.users.UpdateProfile"

	upd.AvatarKey = nil
	if upd.Empty() {
		return nil, wrap(op, ErrNoValidFields)
	}

	var email, username string
	if upd.Username != nil {
		username = strings.TrimSpace(*upd.Username)
		if username == "" {
			return nil, wrap(op, ErrInvalidUsername)
		}
		upd.Username = &username
	}
	if upd.Email != nil {
		email = normalizeEmail(*upd.Email)
		if !emailRe.MatchString(email) {
			return nil, wrap(op, ErrInvalidEmail)
		}
		upd.Email = &email
	}
	if upd.WaterGoalML != nil && *upd.WaterGoalML <= 0 {
		return nil, wrap(op, ErrInvalidGoal)
	}

	if email != "" || username != "" {
		emailTaken, usernameTaken, err := s.users.UserTaken(ctx, email, username, userID)
		if err != nil {
			return nil, internalErr(ctx, op, err)
		}
		if emailTaken {
			return nil, wrap(op, ErrEmailTaken)
		}
		if usernameTaken {
			return nil, wrap(op, ErrUsernameTaken)
		}
	}

	user, err := s.users.UpdateUser(ctx, userID, upd)
	if err != nil {
		return nil, s.userWriteErr(ctx, op, err)
	}

	return user, nil
}

// SetJournalPassword ставит или меняет пароль дневника.
// Смена требует текущего пароля.
func (s *Service) SetJournalPassword(ctx context.Context, userID int64, password, current string) error {
	const op = "service.users.SetJournalPassword"

	if len([]rune(password)) < minPasswordLen {
		return wrap(op, ErrJournalPasswordShort)
	}

	user, err := s.userByID(ctx, op, userID)
	if err != nil {
		return err
	}

	if user.JournalPasswordHash != nil && !checkPassword(*user.JournalPasswordHash, current) {
		log.From(ctx).Warn("journal_password_mismatch", slog.String("op", op), slog.Int64("user_id", userID))
		return wrap(op, ErrCurrentPasswordIncorrect)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return internalErr(ctx, op, err)
	}

	if err := s.users.SetJournalPasswordHash(ctx, userID, &hash); err != nil {
		return s.userWriteErr(ctx, op, err)
	}

	return nil
}

// VerifyJournalPassword сверяет пароль дневника.
func (s *Service) VerifyJournalPassword(ctx context.Context, userID int64, password string) (bool, error) {
	const op = "service.users.VerifyJournalPassword"

	user, err := s.userByID(ctx, op, userID)
	if err != nil {
		return false, err
	}

	if user.JournalPasswordHash == nil {
		return false, wrap(op, ErrJournalPasswordNotSet)
	}

	return checkPassword(*user.JournalPasswordHash, password), nil
}

// RemoveJournalPassword снимает пароль дневника и разблокирует все записи.
func (s *Service) RemoveJournalPassword(ctx context.Context, userID int64, current string) error {
	const op = "service.users.RemoveJournalPassword"

	user, err := s.userByID(ctx, op, userID)
	if err != nil {
		return err
	}

	if user.JournalPasswordHash == nil {
		return wrap(op, ErrJournalPasswordNotSet)
	}
	if !checkPassword(*user.JournalPasswordHash, current) {
		return wrap(op, ErrCurrentPasswordIncorrect)
	}

	if err := s.users.SetJournalPasswordHash(ctx, userID, nil); err != nil {
		return s.userWriteErr(ctx, op, err)
	}

	return nil
}

// AvatarUploadURL выдаёт presigned PUT для загрузки аватара.
func (s *Service) AvatarUploadURL(ctx context.Context, userID int64, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.users.AvatarUploadURL"

	if s.avatars == nil {
		return nil, wrap(op, ErrAvatarsUnavailable)
	}

	info, err := s.avatars.AvatarUploadURL(ctx, userID, strings.TrimSpace(contentType), contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrAvatarRejected) {
			return nil, wrap(op, ErrAvatarRejected)
		}

		return nil, internalErr(ctx, op, err)
	}

	return info, nil
}

// ConfirmAvatar проверяет загруженный объект и записывает его в профиль.
func (s *Service) ConfirmAvatar(ctx context.Context, userID int64, key string) (*models.User, error) {
	const op = "service.users.ConfirmAvatar"

	if s.avatars == nil {
		return nil, wrap(op, ErrAvatarsUnavailable)
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, wrap(op, ErrAvatarRejected)
	}

	url, err := s.avatars.ConfirmAvatarUpload(ctx, userID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAvatarRejected):
			return nil, wrap(op, ErrAvatarRejected)
		case errors.Is(err, storage.ErrAvatarNotUploaded):
			return nil, wrap(op, ErrAvatarNotUploaded)
		}

		return nil, internalErr(ctx, op, err)
	}

	user, err := s.users.UpdateUser(ctx, userID, storage.UserUpdate{ProfileImage: &url, AvatarKey: &key})
	if err != nil {
		return nil, s.userWriteErr(ctx, op, err)
	}

	log.From(ctx).Info("avatar_confirmed", slog.String("op", op), slog.Int64("user_id", userID))

	return user, nil
}

// ListUsers — список пользователей для модераторов.
func (s *Service) ListUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	const op = "service.users.ListUsers"

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return users, nil
}

// DeleteUser удаляет чужой аккаунт. Только admin.
func (s *Service) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	const op = "service.users.DeleteUser"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return wrap(op, err)
	}
	if actorID == targetID {
		return wrap(op, ErrSelfDelete)
	}

	if err := s.users.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return wrap(op, ErrUserNotFound)
		}

		return internalErr(ctx, op, err, "target_id", targetID)
	}

	log.From(ctx).Info("user_deleted", slog.String("op", op), slog.Int64("actor_id", actorID), slog.Int64("target_id", targetID))

	return nil
}

// UserRoles возвращает роли пользователя. Только admin.
func (s *Service) UserRoles(ctx context.Context, actorID, targetID int64) ([]string, error) {
	const op = "service.users.UserRoles"

	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}

	if _, err := s.userByID(ctx, op, targetID); err != nil {
		return nil, err
	}

	return s.rolesOf(ctx, op, targetID)
}

// AssignRole назначает роль и возвращает актуальный набор ролей.
func (s *Service) AssignRole(ctx context.Context, actorID, targetID int64, role string) ([]string, error) {
	const op = "service.users.AssignRole"

	role = strings.ToLower(strings.TrimSpace(role))
	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}
	if !validRole(role) {
		return nil, wrap(op, ErrInvalidRole)
	}

	if _, err := s.userByID(ctx, op, targetID); err != nil {
		return nil, err
	}

	if err := s.roles.AssignRole(ctx, targetID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrInvalidRole)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("role_assigned",
		slog.String("op", op),
		slog.Int64("actor_id", actorID),
		slog.Int64("target_id", targetID),
		slog.String("role", role),
	)

	return s.rolesOf(ctx, op, targetID)
}

// RemoveRole снимает роль. Администратор не может снять admin с себя.
func (s *Service) RemoveRole(ctx context.Context, actorID, targetID int64, role string) ([]string, error) {
	const op = "service.users.RemoveRole"

	role = strings.ToLower(strings.TrimSpace(role))
	if err := s.require(ctx, actorID, CapAdminister, ErrRequiresAdmin); err != nil {
		return nil, wrap(op, err)
	}
	if !validRole(role) {
		return nil, wrap(op, ErrInvalidRole)
	}
	if actorID == targetID && role == models.RoleAdmin {
		return nil, wrap(op, ErrSelfDemote)
	}

	if err := s.roles.RemoveRole(ctx, targetID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrRoleNotAssigned)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("role_removed",
		slog.String("op", op),
		slog.Int64("actor_id", actorID),
		slog.Int64("target_id", targetID),
		slog.String("role", role),
	)

	return s.rolesOf(ctx, op, targetID)
}

// SetBanStatus банит или разбанивает пользователя. Себя менять нельзя.
func (s *Service) SetBanStatus(ctx context.Context, actorID, targetID int64, banned bool) (*models.User, error) {
	const op = "service.users.SetBanStatus"

	if err := s.require(ctx, actorID, CapModerate, ErrRequiresModerator); err != nil {
		return nil, wrap(op, err)
	}
	if actorID == targetID {
		return nil, wrap(op, ErrSelfBan)
	}

	user, err := s.users.SetBanned(ctx, targetID, banned)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrUserNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	log.From(ctx).Info("ban_status_changed",
		slog.String("op", op),
		slog.Int64("actor_id", actorID),
		slog.Int64("target_id", targetID),
		slog.Bool("is_banned", banned),
	)

	return user, nil
}

func (s *Service) userByID(ctx context.Context, op string, id int64) (*models.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrUserNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	return user, nil
}

// userWriteErr переводит ошибки записи в users.
func (s *Service) userWriteErr(ctx context.Context, op string, err error) error {
	if uerr := uniqueErr(err); uerr != nil {
		return wrap(op, uerr)
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return wrap(op, ErrUserNotFound)
	case errors.Is(err, storage.ErrInvalidValue):
		return wrap(op, ErrInvalidProfileData)
	}

	return internalErr(ctx, op, err)
}

func validRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleModerator, models.RoleAdmin:
		return true
	}

	return false
}

func (s *Service) rolesOf(ctx context.Context, op string, userID int64) ([]string, error) {
	roles, err := s.roles.UserRoles(ctx, userID)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return roles, nil
}
