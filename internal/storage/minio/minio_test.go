package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -count=1

const (
	rootUser     = "root"
	rootPassword = "rootpass"
	bucket       = "avatars"
)

// startMinio поднимает MinIO и возвращает endpoint вида http://host:port.
func startMinio(t *testing.T, createBucket bool) string {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image: "docker.io/minio/minio:latest",
			Env: map[string]string{
				"MINIO_ROOT_USER":     rootUser,
				"MINIO_ROOT_PASSWORD": rootPassword,
			},
			Cmd:          []string{"server", "/data"},
			ExposedPorts: []string{"9000/tcp"},
			WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds: credentials.NewStaticV4(rootUser, rootPassword, ""),
		})
		require.NoError(t, err)
		require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

func newAvatars(t *testing.T, endpoint, publicURL string, maxSize int64) *Avatars {
	t.Helper()
	a, err := New(context.Background(), config.S3Config{
		Endpoint:     endpoint,
		RootUser:     rootUser,
		RootPassword: rootPassword,
		Bucket:       bucket,
		PublicURL:    publicURL,
		PresignTTL:   2 * time.Minute,
	}, config.AvatarConfig{
		MaxSizeBytes:        maxSize,
		AllowedContentTypes: []string{"image/png", "image/jpeg"},
	})
	require.NoError(t, err)
	return a
}

func put(t *testing.T, info *storage.UploadInfo, body []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, info.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", info.RequiredHeaders["Content-Type"])
	req.ContentLength = int64(len(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300)
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	endpoint := startMinio(t, false)

	_, err := New(context.Background(), config.S3Config{
		Endpoint: endpoint, RootUser: rootUser, RootPassword: rootPassword, Bucket: bucket,
	}, config.AvatarConfig{})
	require.Error(t, err)
}

func TestIntegration_PresignAndConfirm(t *testing.T) {
	a := newAvatars(t, startMinio(t, true), "http://cdn.local/", 1<<20)

	info, err := a.AvatarUploadURL(context.Background(), 7, "image/png", 5)
	require.NoError(t, err)
	require.Contains(t, info.AvatarKey, "avatars/7/")
	require.Equal(t, int64(120), info.ExpiresIn)
	require.Equal(t, strconv.Itoa(5), info.RequiredHeaders["Content-Length"])

	put(t, info, bytes.Repeat([]byte{0x42}, 5))

	url, err := a.ConfirmAvatarUpload(context.Background(), 7, info.AvatarKey)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/"+info.AvatarKey, url)
}

func TestIntegration_ConfirmWithoutPublicURL_ReturnsKey(t *testing.T) {
	a := newAvatars(t, startMinio(t, true), "", 1<<20)

	info, err := a.AvatarUploadURL(context.Background(), 1, "image/jpeg", 1)
	require.NoError(t, err)
	put(t, info, []byte{0x1})

	got, err := a.ConfirmAvatarUpload(context.Background(), 1, info.AvatarKey)
	require.NoError(t, err)
	require.Equal(t, info.AvatarKey, got)
}

func TestIntegration_Rejections(t *testing.T) {
	a := newAvatars(t, startMinio(t, true), "", 4)
	ctx := context.Background()

	_, err := a.AvatarUploadURL(ctx, 1, "image/gif", 1)
	require.ErrorIs(t, err, storage.ErrAvatarRejected)

	_, err = a.AvatarUploadURL(ctx, 1, "image/png", 0)
	require.ErrorIs(t, err, storage.ErrAvatarRejected)

	_, err = a.AvatarUploadURL(ctx, 1, "image/png", 5)
	require.ErrorIs(t, err, storage.ErrAvatarRejected)

	_, err = a.ConfirmAvatarUpload(ctx, 1, "avatars/2/x.png")
	require.ErrorIs(t, err, storage.ErrAvatarRejected)

	_, err = a.ConfirmAvatarUpload(ctx, 1, "avatars/1/missing.png")
	require.ErrorIs(t, err, storage.ErrAvatarNotUploaded)
}

func TestIntegration_ConfirmTooBigAfterUpload(t *testing.T) {
	a := newAvatars(t, startMinio(t, true), "", 1<<20)

	info, err := a.AvatarUploadURL(context.Background(), 3, "image/png", 8)
	require.NoError(t, err)
	put(t, info, bytes.Repeat([]byte{0xAB}, 8))

	a.limits.MaxSizeBytes = 4
	_, err = a.ConfirmAvatarUpload(context.Background(), 3, info.AvatarKey)
	require.ErrorIs(t, err, storage.ErrAvatarRejected)
}
