package minio

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/mindwell/internal/storage"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// AvatarUploadURL выдаёт presigned PUT под ключ avatars/<userID>/<uuid><ext>.
func (a *Avatars) AvatarUploadURL(ctx context.Context, userID int64, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage.minio.AvatarUploadURL"

	if contentLength <= 0 || contentLength > a.limits.MaxSizeBytes {
		return nil, storage.ErrAvatarRejected
	}

	if !a.allowed(contentType) {
		return nil, storage.ErrAvatarRejected
	}

	key := path.Join("avatars", strconv.FormatInt(userID, 10), uuid.NewString()+extByContentType[contentType])

	u, err := a.client.PresignedPutObject(ctx, a.s3.Bucket, key, a.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		AvatarKey: key,
		ExpiresIn: int64(a.s3.PresignTTL.Seconds()),
		RequiredHeaders: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// ConfirmAvatarUpload проверяет, что объект загружен и укладывается в ограничения.
// Без публичного URL в profile_image пишется сам ключ.
func (a *Avatars) ConfirmAvatarUpload(ctx context.Context, userID int64, key string) (string, error) {
	const op = "storage.minio.ConfirmAvatarUpload"

	if !strings.HasPrefix(key, "avatars/"+strconv.FormatInt(userID, 10)+"/") || strings.Contains(key, "..") {
		return "", storage.ErrAvatarRejected
	}

	info, err := a.client.StatObject(ctx, a.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return "", storage.ErrAvatarNotUploaded
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > a.limits.MaxSizeBytes {
		return "", storage.ErrAvatarRejected
	}

	if ct := info.ContentType; ct != "" && !a.allowed(ct) {
		return "", storage.ErrAvatarRejected
	}

	if a.s3.PublicURL == "" {
		return key, nil
	}

	return a.s3.PublicURL + "/" + key, nil
}

func (a *Avatars) allowed(contentType string) bool {
	for _, ct := range a.limits.AllowedContentTypes {
		if ct == contentType {
			return true
		}
	}

	return false
}
