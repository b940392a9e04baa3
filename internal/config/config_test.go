package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// chdir меняет рабочий каталог до конца теста.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const fullYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "8080"
  cors_origins: ["https://app.example.com"]
postgres:
  url: "postgres://u:p@db:5432/mindwell"
  max_conns: 7
  max_conn_idle: "1m"
  connect_timeout: "3s"
  auto_migrate: false
auth:
  jwt_secret: "s3cret"
  token_ttl: "2h"
  issuer: "mw"
  audience: ["web", "mobile"]
  bcrypt_cost: 12
redis:
  url: "redis://cache:6379/0"
s3:
  endpoint: "http://minio:9000"
  root_user: "minio"
  root_password: "minio123"
  bucket: "pics"
timeouts:
  service: "3s"
`

const minimalYAML = `
env: "stage"
postgres:
  url: "postgres://localhost/mindwell"
auth:
  jwt_secret: "x"
`

const brokenYAML = `
env: [unclosed
`

func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0.0.0.0:5000", HTTPConfig{Host: "0.0.0.0", Port: "5000"}.Addr())
}

func TestLoad_ExplicitPath_AllSections(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeFile(t, dir, "config.yaml", fullYAML))
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORSOrigins)

	require.Equal(t, "postgres://u:p@db:5432/mindwell", cfg.Postgres.URL)
	require.Equal(t, int32(7), cfg.Postgres.MaxConns)
	require.Equal(t, time.Minute, cfg.Postgres.MaxConnIdle)
	require.Equal(t, 3*time.Second, cfg.Postgres.ConnectTimeout)
	require.False(t, cfg.Postgres.AutoMigrate)

	require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	require.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "mw", cfg.Auth.Issuer)
	require.Equal(t, []string{"web", "mobile"}, cfg.Auth.Audience)
	require.Equal(t, 12, cfg.Auth.BcryptCost)

	require.True(t, cfg.Redis.Enabled())
	require.True(t, cfg.S3.Enabled())
	require.Equal(t, "pics", cfg.S3.Bucket)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeFile(t, dir, "min.yaml", minimalYAML))
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.HTTP.Port)
	require.Equal(t, int32(20), cfg.Postgres.MaxConns)
	require.Equal(t, 30*time.Second, cfg.Postgres.MaxConnIdle)
	require.Equal(t, 2*time.Second, cfg.Postgres.ConnectTimeout)
	require.False(t, cfg.Postgres.AutoMigrate)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.False(t, cfg.Redis.Enabled())
	require.False(t, cfg.S3.Enabled())
	require.Equal(t, int64(5242880), cfg.Avatar.MaxSizeBytes)
	require.Equal(t, []string{"image/jpeg", "image/png"}, cfg.Avatar.AllowedContentTypes)
	require.Equal(t, 15*time.Second, cfg.Timeouts.Service)
}

func TestLoad_AutoMigrate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(writeFile(t, dir, "on.yaml", `
postgres:
  url: "postgres://localhost/mindwell"
  auto_migrate: true
auth:
  jwt_secret: "x"
`))
	require.NoError(t, err)
	require.True(t, cfg.Postgres.AutoMigrate)

	cfg, err = Load(writeFile(t, dir, "off.yaml", fullYAML))
	require.NoError(t, err)
	require.False(t, cfg.Postgres.AutoMigrate)

	t.Setenv("DB_AUTO_MIGRATE", "true")
	cfg, err = Load(writeFile(t, dir, "env.yaml", fullYAML))
	require.NoError(t, err)
	require.True(t, cfg.Postgres.AutoMigrate)
}

func TestLoad_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(writeFile(t, dir, "broken.yaml", brokenYAML))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MissingSecret(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(writeFile(t, dir, "nosecret.yaml", `
postgres:
  url: "postgres://localhost/mindwell"
`))
	require.Error(t, err)
}

func TestLoad_CONFIG_PATH(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "env.yaml", minimalYAML))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

// CONFIG_PATH важнее local.yaml.
func TestLoad_Priority_EnvPathWinsOverLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", fullYAML)
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "env.yaml", minimalYAML))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

// Явный путь важнее CONFIG_PATH.
func TestLoad_Priority_ExplicitWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "bad.yaml", brokenYAML))

	cfg, err := Load(writeFile(t, dir, "explicit.yaml", fullYAML))
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
}

func TestLoad_LocalYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

func TestLoad_EnvOverlay(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yaml", fullYAML)

	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVICE_TIMEOUT", "5s")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "18080", cfg.HTTP.Port)
	require.Equal(t, "from-env", cfg.Auth.JWTSecret)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Service)
}

func TestLoad_EnvOnly(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_URL", "postgres://env/mindwell")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("HTTP_PORT", "5050")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "postgres://env/mindwell", cfg.Postgres.URL)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "5050", cfg.HTTP.Port)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
