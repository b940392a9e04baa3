// config описывает конфигурацию сервиса mindwell и её загрузку.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
//
// Переменные из .env подхватываются вызывающим кодом до Load.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	S3       S3Config       `yaml:"s3"`
	Avatar   AvatarConfig   `yaml:"avatar"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	// CORSOrigins — разрешённые Origin; "*" разрешает любой.
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// PostgresConfig — подключение и параметры пула.
// AutoMigrate выключен по умолчанию: схему накатывает `mindwell migrate`.
type PostgresConfig struct {
	URL            string        `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MaxConns       int32         `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"20"`
	MaxConnIdle    time.Duration `yaml:"max_conn_idle" env:"DB_MAX_CONN_IDLE" env-default:"30s"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT" env-default:"2s"`
	AutoMigrate    bool          `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// AuthConfig — параметры выпуска и проверки токенов доступа.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	Issuer     string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"mindwell"`
	Audience   []string      `yaml:"audience" env:"JWT_AUDIENCE" env-separator:"," env-default:"mindwell-api"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// RedisConfig — denylist отозванных токенов. Пустой URL отключает logout-отзыв.
type RedisConfig struct {
	URL       string `yaml:"url" env:"REDIS_URL"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"mindwell:revoked:"`
}

func (r RedisConfig) Enabled() bool { return r.URL != "" }

// S3Config — хранилище аватаров. Пустой Endpoint отключает загрузку аватаров.
type S3Config struct {
	Endpoint     string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser     string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket       string        `yaml:"bucket" env:"S3_BUCKET" env-default:"avatars"`
	PublicURL    string        `yaml:"public_url" env:"S3_PUBLIC_URL"`
	PresignTTL   time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
}

func (s S3Config) Enabled() bool { return s.Endpoint != "" }

type AvatarConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"AVATAR_MAX_SIZE_BYTES" env-default:"5242880"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"AVATAR_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png"`
}

// TimeoutConfig — таймаут обработки одного запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	read := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return read(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return read(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return read("local.yaml")
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
