// Package config carga la configuración del servicio desde variables de entorno.
package config

import (
	"os"
	"strings"
	"time"
)

// Config agrupa toda la configuración del servidor API.
type Config struct {
	App    AppConfig
	Server ServerConfig
	Logger LoggerConfig
	DB     DBConfig
	Auth   AuthConfig
}

type AppConfig struct {
	Name string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	// DSN de Postgres. Vacío => repos in-memory con datos seed.
	DSN string
}

// AuthConfig configura la delegación al proveedor de identidad externo.
// BaseURL+APIKey => verificación remota (estilo GoTrue).
// JWTSecret => verificación local HS256 de los tokens emitidos por el proveedor.
// Todo vacío => modo dev (headers X-Debug-User-*).
type AuthConfig struct {
	BaseURL   string
	APIKey    string
	JWTSecret string
}

// Load lee la configuración desde env con defaults razonables.
func Load() Config {
	return Config{
		App: AppConfig{
			Name: envOr("APP_NAME", "pet-haven"),
		},
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			ReadTimeout:  durationOr("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: durationOr("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
		DB: DBConfig{
			DSN: strings.TrimSpace(os.Getenv("DB_DSN")),
		},
		Auth: AuthConfig{
			BaseURL:   strings.TrimSpace(os.Getenv("AUTH_BASE_URL")),
			APIKey:    strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
			JWTSecret: strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
		},
	}
}

// AuthConfigured indica si hay proveedor de identidad remoto.
func (c Config) AuthConfigured() bool {
	return c.Auth.BaseURL != "" && c.Auth.APIKey != ""
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationOr(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
