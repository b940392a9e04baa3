package service

import (
	"context"

	"github.com/pribylovaa/mindwell/internal/models"
)

// Capability — право, которое проверяется по user_role_mappings.
type Capability int

const (
	// CapModerate — модерация контента: admin или moderator.
	CapModerate Capability = iota + 1
	// CapAdminister — администрирование: только admin.
	CapAdminister
)

func (c Capability) roles() []string {
	switch c {
	case CapModerate:
		return []string{models.RoleAdmin, models.RoleModerator}
	case CapAdminister:
		return []string{models.RoleAdmin}
	default:
		return nil
	}
}

// Authorize сообщает, есть ли у пользователя право c.
func (s *Service) Authorize(ctx context.Context, userID int64, c Capability) (bool, error) {
	const op = "service.access.Authorize"

	roles := c.roles()
	if len(roles) == 0 {
		return false, nil
	}

	ok, err := s.roles.HasAnyRole(ctx, userID, roles...)
	if err != nil {
		return false, internalErr(ctx, op, err, "user_id", userID)
	}

	return ok, nil
}

// require возвращает denied, если права нет.
func (s *Service) require(ctx context.Context, userID int64, c Capability, denied error) error {
	ok, err := s.Authorize(ctx, userID, c)
	if err != nil {
		return err
	}
	if !ok {
		return denied
	}

	return nil
}

// canModify: владелец или модератор.
func (s *Service) canModify(ctx context.Context, actorID int64, ownerID *int64) (bool, error) {
	if ownerID != nil && *ownerID == actorID {
		return true, nil
	}

	return s.Authorize(ctx, actorID, CapModerate)
}
