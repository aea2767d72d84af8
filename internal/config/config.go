package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Persona PersonaConfig
	DB      DBConfig
	Parser  ParserConfig
	Chat    ChatConfig
	S3      S3Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs with the production profile.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// CORSConfig holds cross-origin settings. In production only the configured
// frontend URL is allowed; any other environment allows the local dev origin.
type CORSConfig struct {
	FrontendURL string `mapstructure:"frontend_url"`
	DevOrigin   string `mapstructure:"dev_origin"`
}

// PersonaConfig selects the persona store backend.
type PersonaConfig struct {
	Store string `mapstructure:"store"` // "memory" or "postgres"
}

// DBConfig holds PostgreSQL connection settings (postgres persona store only).
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ParserConfig holds settings for the external SEC filing parser subprocess.
type ParserConfig struct {
	Program string        `mapstructure:"program"`
	Script  string        `mapstructure:"script"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ChatConfig holds OpenRouter chat completion settings.
type ChatConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Endpoint    string        `mapstructure:"endpoint"`
	Referer     string        `mapstructure:"referer"`
	Title       string        `mapstructure:"title"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
}

// S3Config holds AWS S3 settings for the optional filing archive.
// The archive is disabled when Bucket is empty.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether the filing archive is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads configuration from environment variables with the FINVERSE_
// prefix. A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FINVERSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3001")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// CORS defaults
	v.SetDefault("cors.frontend_url", "https://fintech-multiverse.vercel.app")
	v.SetDefault("cors.dev_origin", "http://localhost:3000")

	// Persona store defaults
	v.SetDefault("persona.store", "memory")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "finverse")
	v.SetDefault("db.password", "finverse_secret")
	v.SetDefault("db.name", "finverse_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Parser defaults
	v.SetDefault("parser.program", "python3")
	v.SetDefault("parser.script", "scripts/sec_parser.py")
	v.SetDefault("parser.timeout", "5m")

	// Chat defaults
	v.SetDefault("chat.api_key", "")
	v.SetDefault("chat.model", "deepseek/deepseek-r1:free")
	v.SetDefault("chat.endpoint", "https://openrouter.ai/api/v1/chat/completions")
	v.SetDefault("chat.referer", "https://financial-multiverse.vercel.app")
	v.SetDefault("chat.title", "Financial Multiverse")
	v.SetDefault("chat.timeout", "60s")
	v.SetDefault("chat.temperature", 0.7)
	v.SetDefault("chat.max_tokens", 500)

	// S3 defaults (archive disabled unless a bucket is set)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "FINVERSE_SERVER_PORT",
		"server.read_timeout":  "FINVERSE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "FINVERSE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "FINVERSE_SERVER_ENVIRONMENT",
		"cors.frontend_url":    "FINVERSE_CORS_FRONTEND_URL",
		"cors.dev_origin":      "FINVERSE_CORS_DEV_ORIGIN",
		"persona.store":        "FINVERSE_PERSONA_STORE",
		"db.host":              "FINVERSE_DB_HOST",
		"db.port":              "FINVERSE_DB_PORT",
		"db.user":              "FINVERSE_DB_USER",
		"db.password":          "FINVERSE_DB_PASSWORD",
		"db.name":              "FINVERSE_DB_NAME",
		"db.sslmode":           "FINVERSE_DB_SSLMODE",
		"db.max_open":          "FINVERSE_DB_MAX_OPEN",
		"db.max_idle":          "FINVERSE_DB_MAX_IDLE",
		"parser.program":       "FINVERSE_PARSER_PROGRAM",
		"parser.script":        "FINVERSE_PARSER_SCRIPT",
		"parser.timeout":       "FINVERSE_PARSER_TIMEOUT",
		"chat.api_key":         "FINVERSE_CHAT_API_KEY",
		"chat.model":           "FINVERSE_CHAT_MODEL",
		"chat.endpoint":        "FINVERSE_CHAT_ENDPOINT",
		"chat.referer":         "FINVERSE_CHAT_REFERER",
		"chat.title":           "FINVERSE_CHAT_TITLE",
		"chat.timeout":         "FINVERSE_CHAT_TIMEOUT",
		"chat.temperature":     "FINVERSE_CHAT_TEMPERATURE",
		"chat.max_tokens":      "FINVERSE_CHAT_MAX_TOKENS",
		"s3.region":            "FINVERSE_S3_REGION",
		"s3.bucket":            "FINVERSE_S3_BUCKET",
		"s3.endpoint":          "FINVERSE_S3_ENDPOINT",
		"s3.access_key":        "FINVERSE_S3_ACCESS_KEY",
		"s3.secret_key":        "FINVERSE_S3_SECRET_KEY",
		"s3.presign_expiry":    "FINVERSE_S3_PRESIGN_EXPIRY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// The chat API key is also accepted under its upstream conventional name.
	if v.GetString("chat.api_key") == "" {
		if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
			v.Set("chat.api_key", key)
		}
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FINVERSE_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FINVERSE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.CORS = CORSConfig{
		FrontendURL: v.GetString("cors.frontend_url"),
		DevOrigin:   v.GetString("cors.dev_origin"),
	}
	cfg.Persona = PersonaConfig{
		Store: v.GetString("persona.store"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Parser = ParserConfig{
		Program: v.GetString("parser.program"),
		Script:  v.GetString("parser.script"),
		Timeout: v.GetDuration("parser.timeout"),
	}
	cfg.Chat = ChatConfig{
		APIKey:      v.GetString("chat.api_key"),
		Model:       v.GetString("chat.model"),
		Endpoint:    v.GetString("chat.endpoint"),
		Referer:     v.GetString("chat.referer"),
		Title:       v.GetString("chat.title"),
		Timeout:     v.GetDuration("chat.timeout"),
		Temperature: v.GetFloat64("chat.temperature"),
		MaxTokens:   v.GetInt("chat.max_tokens"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}

	return cfg, nil
}
