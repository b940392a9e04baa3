package storage

//go:generate mockgen -source=avatars.go -destination=../../mocks/avatars.go -package=mocks

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAvatarNotUploaded — объект по ключу отсутствует в бакете.
	ErrAvatarNotUploaded = errors.New("avatar not uploaded")
	// ErrAvatarRejected — тип, размер или ключ не проходят ограничения.
	ErrAvatarRejected = errors.New("avatar rejected")
)

// UploadInfo — данные для presigned PUT загрузки.
// ExpiresIn — срок жизни подписи в секундах; RequiredHeaders клиент обязан передать в PUT.
type UploadInfo struct {
	UploadURL       string            `json:"upload_url"`
	AvatarKey       string            `json:"avatar_key"`
	ExpiresIn       int64             `json:"expires_in"`
	RequiredHeaders map[string]string `json:"required_headers"`
}

// AvatarStorage — presigned загрузка аватаров в объектное хранилище.
type AvatarStorage interface {
	AvatarUploadURL(ctx context.Context, userID int64, contentType string, contentLength int64) (*UploadInfo, error)
	// ConfirmAvatarUpload проверяет объект и возвращает URL, который пишется в profile_image.
	ConfirmAvatarUpload(ctx context.Context, userID int64, key string) (string, error)
}

// TokenDenylist — отозванные до истечения токены (по jti).
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
