package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Upload  UploadConfig
	AI      AIConfig
	Records RecordsConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig selects the analysis record store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// UsesPostgres reports whether records are kept in PostgreSQL.
func (s *StoreConfig) UsesPostgres() bool {
	return strings.EqualFold(s.Driver, "postgres")
}

// UploadConfig holds document upload and text validation limits.
type UploadConfig struct {
	MaxFileSizeMB      int64 `mapstructure:"max_file_size_mb"`
	MinTextLength      int   `mapstructure:"min_text_length"`
	ShortTextThreshold int   `mapstructure:"short_text_threshold"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// ProviderConfig holds server-side credentials for a single AI provider.
type ProviderConfig struct {
	Name         string `mapstructure:"name"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	BaseURL      string `mapstructure:"base_url"`
}

// Configured reports whether the provider has a usable credential.
func (p *ProviderConfig) Configured() bool {
	return strings.TrimSpace(p.APIKey) != ""
}

// AIConfig holds AI provider settings.
type AIConfig struct {
	OpenAI    ProviderConfig `mapstructure:"openai"`
	Anthropic ProviderConfig `mapstructure:"anthropic"`
	Google    ProviderConfig `mapstructure:"google"`
	Grok      ProviderConfig `mapstructure:"grok"`

	// FallbackOpenAIKey is the environment-level OpenAI key (OPENAI_API_KEY).
	FallbackOpenAIKey string `mapstructure:"fallback_openai_key"`
	UseSampleData     bool   `mapstructure:"use_sample_data"`
	TimeoutSecs       int    `mapstructure:"timeout_secs"`
}

// Providers returns the provider configs in priority order.
func (a *AIConfig) Providers() []ProviderConfig {
	return []ProviderConfig{a.OpenAI, a.Anthropic, a.Google, a.Grok}
}

// Timeout returns the provider HTTP timeout.
func (a *AIConfig) Timeout() time.Duration {
	if a.TimeoutSecs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(a.TimeoutSecs) * time.Second
}

// RecordsConfig holds history listing limits.
type RecordsConfig struct {
	DefaultLimit     int `mapstructure:"default_limit"`
	QuizSessionLimit int `mapstructure:"quiz_session_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
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

// S3Config holds blob storage settings.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	KeyPrefix     string `mapstructure:"key_prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the ESTUDAIA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ESTUDAIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("store.driver", "memory")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "estudaia")
	v.SetDefault("db.password", "estudaia_secret")
	v.SetDefault("db.name", "estudaia_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "estudaia-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.key_prefix", "uploads")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.min_text_length", 50)
	v.SetDefault("upload.short_text_threshold", 300)

	// AI provider defaults
	v.SetDefault("ai.openai.default_model", "gpt-4o-mini")
	v.SetDefault("ai.openai.base_url", "")
	v.SetDefault("ai.anthropic.default_model", "claude-sonnet-4-20250514")
	v.SetDefault("ai.anthropic.base_url", "")
	v.SetDefault("ai.google.default_model", "gemini-flash-latest")
	v.SetDefault("ai.google.base_url", "")
	v.SetDefault("ai.grok.default_model", "grok-3-mini")
	v.SetDefault("ai.grok.base_url", "https://api.x.ai/v1")
	v.SetDefault("ai.timeout_secs", 120)

	v.SetDefault("records.default_limit", 50)
	v.SetDefault("records.quiz_session_limit", 20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "ESTUDAIA_SERVER_PORT",
		"server.read_timeout":         "ESTUDAIA_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "ESTUDAIA_SERVER_WRITE_TIMEOUT",
		"server.environment":          "ESTUDAIA_SERVER_ENVIRONMENT",
		"store.driver":                "ESTUDAIA_STORE_DRIVER",
		"db.host":                     "ESTUDAIA_DB_HOST",
		"db.port":                     "ESTUDAIA_DB_PORT",
		"db.user":                     "ESTUDAIA_DB_USER",
		"db.password":                 "ESTUDAIA_DB_PASSWORD",
		"db.name":                     "ESTUDAIA_DB_NAME",
		"db.sslmode":                  "ESTUDAIA_DB_SSLMODE",
		"db.max_open":                 "ESTUDAIA_DB_MAX_OPEN",
		"db.max_idle":                 "ESTUDAIA_DB_MAX_IDLE",
		"s3.enabled":                  "ESTUDAIA_S3_ENABLED",
		"s3.region":                   "ESTUDAIA_S3_REGION",
		"s3.bucket":                   "ESTUDAIA_S3_BUCKET",
		"s3.endpoint":                 "ESTUDAIA_S3_ENDPOINT",
		"s3.access_key":               "ESTUDAIA_S3_ACCESS_KEY",
		"s3.secret_key":               "ESTUDAIA_S3_SECRET_KEY",
		"s3.key_prefix":               "ESTUDAIA_S3_KEY_PREFIX",
		"s3.presign_expiry":           "ESTUDAIA_S3_PRESIGN_EXPIRY",
		"log.level":                   "ESTUDAIA_LOG_LEVEL",
		"log.format":                  "ESTUDAIA_LOG_FORMAT",
		"cors.allowed_origins":        "ESTUDAIA_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":     "ESTUDAIA_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.min_text_length":      "ESTUDAIA_UPLOAD_MIN_TEXT_LENGTH",
		"upload.short_text_threshold": "ESTUDAIA_UPLOAD_SHORT_TEXT_THRESHOLD",
		"ai.openai.api_key":           "ESTUDAIA_AI_OPENAI_API_KEY",
		"ai.openai.default_model":     "ESTUDAIA_AI_OPENAI_DEFAULT_MODEL",
		"ai.openai.base_url":          "ESTUDAIA_AI_OPENAI_BASE_URL",
		"ai.anthropic.api_key":        "ESTUDAIA_AI_ANTHROPIC_API_KEY",
		"ai.anthropic.default_model":  "ESTUDAIA_AI_ANTHROPIC_DEFAULT_MODEL",
		"ai.anthropic.base_url":       "ESTUDAIA_AI_ANTHROPIC_BASE_URL",
		"ai.google.api_key":           "ESTUDAIA_AI_GOOGLE_API_KEY",
		"ai.google.default_model":     "ESTUDAIA_AI_GOOGLE_DEFAULT_MODEL",
		"ai.google.base_url":          "ESTUDAIA_AI_GOOGLE_BASE_URL",
		"ai.grok.api_key":             "ESTUDAIA_AI_GROK_API_KEY",
		"ai.grok.default_model":       "ESTUDAIA_AI_GROK_DEFAULT_MODEL",
		"ai.grok.base_url":            "ESTUDAIA_AI_GROK_BASE_URL",
		"ai.timeout_secs":             "ESTUDAIA_AI_TIMEOUT_SECS",
		"records.default_limit":       "ESTUDAIA_RECORDS_DEFAULT_LIMIT",
		"records.quiz_session_limit":  "ESTUDAIA_RECORDS_QUIZ_SESSION_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
	// Unprefixed variables kept for compatibility with existing deployments.
	_ = v.BindEnv("ai.fallback_openai_key", "OPENAI_API_KEY")
	_ = v.BindEnv("ai.use_sample_data", "ESTUDAIA_AI_USE_SAMPLE_DATA", "USE_SAMPLE_DATA")

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ESTUDAIA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ESTUDAIA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Store = StoreConfig{
		Driver: v.GetString("store.driver"),
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
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		KeyPrefix:     v.GetString("s3.key_prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB:      v.GetInt64("upload.max_file_size_mb"),
		MinTextLength:      v.GetInt("upload.min_text_length"),
		ShortTextThreshold: v.GetInt("upload.short_text_threshold"),
	}
	cfg.AI = AIConfig{
		OpenAI:            providerConfig(v, "openai"),
		Anthropic:         providerConfig(v, "anthropic"),
		Google:            providerConfig(v, "google"),
		Grok:              providerConfig(v, "grok"),
		FallbackOpenAIKey: v.GetString("ai.fallback_openai_key"),
		UseSampleData:     v.GetBool("ai.use_sample_data"),
		TimeoutSecs:       v.GetInt("ai.timeout_secs"),
	}
	cfg.Records = RecordsConfig{
		DefaultLimit:     v.GetInt("records.default_limit"),
		QuizSessionLimit: v.GetInt("records.quiz_session_limit"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, name string) ProviderConfig {
	prefix := "ai." + name + "."
	return ProviderConfig{
		Name:         name,
		APIKey:       v.GetString(prefix + "api_key"),
		DefaultModel: v.GetString(prefix + "default_model"),
		BaseURL:      v.GetString(prefix + "base_url"),
	}
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
