package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Modos de emisión de token de sesión.
const (
	TokenModeOpaque = "opaque" // base64(id:timestamp), verificable solo contra el registro de sesiones
	TokenModeJWT    = "jwt"    // firmado HS256, además registrado
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Log   LogConfig
	HTTP  HTTPConfig
	Auth  AuthConfig
	JWT   JWTConfig
	Redis RedisConfig
	Seed  SeedConfig
	Docs  DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig controla la emisión de sesiones y la aplicación de la política de acceso.
type AuthConfig struct {
	Enforce           bool   // false reproduce los endpoints abiertos (sin token)
	TokenMode         string // opaque | jwt
	SessionTTLMinutes int
}

// SessionTTL devuelve la vida de un registro de sesión.
func (c AuthConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// JWTConfig configuración de JWT (solo en modo jwt).
type JWTConfig struct {
	Secret string
	Issuer string
}

// RedisConfig si Addr está vacío las sesiones se guardan en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// SeedConfig archivo YAML con usuarios y productos iniciales (vacío = fixture embebido).
type SeedConfig struct {
	File string
}

// DocsConfig ruta del swagger.json servido en /docs.
type DocsConfig struct {
	File string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, AUTH_TOKEN_MODE, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "commodities-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Auth: AuthConfig{
			Enforce:           getBool(v, "AUTH_ENFORCE", true),
			TokenMode:         strings.ToLower(getString(v, "AUTH_TOKEN_MODE", TokenModeOpaque)),
			SessionTTLMinutes: getInt(v, "AUTH_SESSION_TTL_MINUTES", 480),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "commodities-api"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Seed: SeedConfig{
			File: getString(v, "SEED_FILE", ""),
		},
		Docs: DocsConfig{
			File: getString(v, "DOCS_FILE", "./docs/swagger.json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Auth.TokenMode {
	case TokenModeOpaque:
	case TokenModeJWT:
		if c.JWT.Secret == "" {
			return fmt.Errorf("config: JWT_SECRET es requerido con AUTH_TOKEN_MODE=jwt")
		}
	default:
		return fmt.Errorf("config: AUTH_TOKEN_MODE inválido %q (opaque | jwt)", c.Auth.TokenMode)
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		return fmt.Errorf("config: AUTH_SESSION_TTL_MINUTES debe ser positivo")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
