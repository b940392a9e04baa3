package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/pribylovaa/mindwell/pkg/log"
)

type accessClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Role     string `json:"role"`
	IsBanned bool   `json:"is_banned"`
	jwt.RegisteredClaims
}

// issueToken подписывает access-токен для пользователя с загруженными ролями.
func (s *Service) issueToken(ctx context.Context, user *models.User) (*models.AuthResult, error) {
	const op = "service.token.issueToken"

	now := s.clock()
	exp := now.Add(s.cfg.TokenTTL)

	claims := accessClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.HasRole(models.RoleAdmin),
		Role:     user.PrimaryRole(),
		IsBanned: user.IsBanned,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.From(ctx).Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AuthResult{Token: signed, ExpiresAt: exp, User: user}, nil
}

// parseToken проверяет подпись, срок, издателя и аудиторию токена.
func (s *Service) parseToken(tokenStr string) (*accessClaims, error) {
	const op = "service.token.parseToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.UserID <= 0 || claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims, nil
}

// Authenticate проверяет токен запроса и возвращает личность.
// Бан и роль администратора берутся из БД, а не из claims.
func (s *Service) Authenticate(ctx context.Context, tokenStr string) (*models.Identity, error) {
	const op = "service.token.Authenticate"

	if tokenStr == "" {
		return nil, wrap(op, ErrTokenRequired)
	}

	lg := log.From(ctx).With("op", op)

	claims, err := s.parseToken(tokenStr)
	if err != nil {
		lg.Warn("token_rejected", slog.String("err", err.Error()))
		return nil, wrap(op, err)
	}

	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, internalErr(ctx, op, err)
		}
		if revoked {
			lg.Warn("token_revoked", slog.Int64("user_id", claims.UserID))
			return nil, wrap(op, ErrInvalidToken)
		}
	}

	user, err := s.users.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrInvalidToken)
		}

		return nil, internalErr(ctx, op, err)
	}

	if user.IsBanned {
		lg.Warn("banned_user_rejected", slog.Int64("user_id", user.ID))
		return nil, wrap(op, ErrBanned)
	}

	return &models.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.HasRole(models.RoleAdmin),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout отзывает токен до истечения его срока. Без Redis ничего не делает.
func (s *Service) Logout(ctx context.Context, id *models.Identity) error {
	const op = "service.token.Logout"

	if s.denylist == nil || id == nil || id.TokenID == "" {
		return nil
	}

	ttl := id.ExpiresAt.Sub(s.clock())
	if err := s.denylist.Revoke(ctx, id.TokenID, ttl); err != nil {
		return internalErr(ctx, op, err)
	}

	log.From(ctx).Info("token_revoked", slog.String("op", op), slog.Int64("user_id", id.UserID))

	return nil
}
