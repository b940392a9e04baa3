// minio реализует storage.AvatarStorage поверх MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint и проверяет бакет.
// avatars.go — presigned PUT и подтверждение загрузки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// Avatars — адаптер MinIO для аватаров пользователей.
type Avatars struct {
	s3     config.S3Config
	limits config.AvatarConfig
	client *mclient.Client
}

// New создаёт клиент MinIO. Схема endpoint определяет Secure;
// отсутствие бакета — ошибка старта.
func New(ctx context.Context, s3 config.S3Config, limits config.AvatarConfig) (*Avatars, error) {
	const op = "storage.minio.New"

	endpoint := s3.Endpoint
	secure := false

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	s3.PublicURL = strings.TrimRight(s3.PublicURL, "/")

	return &Avatars{s3: s3, limits: limits, client: client}, nil
}

var _ storage.AvatarStorage = (*Avatars)(nil)
