package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	Store     StoreConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	AI        AIConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log de zerolog.
type LogConfig struct {
	Level string
}

// Valores aceptados para STORE_DRIVER y AI_PROVIDER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	AIProviderGemini    = "gemini"
	AIProviderAnthropic = "anthropic"
)

// StoreConfig selecciona el backend de persistencia: postgres o memory.
type StoreConfig struct {
	Driver string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve DATABASE_URL si está definido; si no, el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para caracteres especiales en el password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// AIConfig proveedor de texto generativo y sus credenciales.
type AIConfig struct {
	Provider        string // gemini | anthropic
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// MailConfig relay SMTP para el envío del reporte.
type MailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// RateLimitConfig límite de intentos de login por IP.
type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

// Load lee la configuración desde .env / config.env y variables de entorno.
// Las env vars tienen prioridad sobre los archivos.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Log:   LogConfig{Level: v.GetString("LOG_LEVEL")},
		Store: StoreConfig{Driver: strings.ToLower(v.GetString("STORE_DRIVER"))},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(v.GetString("AI_PROVIDER")),
			GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
			GeminiModel:     v.GetString("GEMINI_MODEL"),
			AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
			AnthropicModel:  v.GetString("ANTHROPIC_MODEL"),
		},
		Mail: MailConfig{
			Host: v.GetString("MAIL_HOST"),
			Port: v.GetInt("MAIL_PORT"),
			User: v.GetString("MAIL_USER"),
			Pass: v.GetString("MAIL_PASS"),
			From: v.GetString("MAIL_FROM"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: v.GetFloat64("LOGIN_RATE_PER_SECOND"),
			LoginBurst:     v.GetInt("LOGIN_RATE_BURST"),
		},
	}

	if cfg.Store.Driver != StorePostgres && cfg.Store.Driver != StoreMemory {
		return nil, fmt.Errorf("STORE_DRIVER inválido: %q (postgres|memory)", cfg.Store.Driver)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "inventario-catalogo")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "inventario_catalogo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "inventario-catalogo")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("AI_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-001")
	v.SetDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-20241022")
	v.SetDefault("MAIL_HOST", "smtp.ethereal.email")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_FROM", `"Inventory System" <inventory@example.com>`)
	v.SetDefault("LOGIN_RATE_PER_SECOND", 5)
	v.SetDefault("LOGIN_RATE_BURST", 10)
}
