package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	LLM       LLMConfig       `yaml:"llm"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
	PersistTimeout  time.Duration `yaml:"persist_timeout"    env:"DATABASE_PERSIST_TIMEOUT"    env-default:"10s"`
}

// AuthConfig holds ID-token verification settings.
type AuthConfig struct {
	FirebaseProjectID string `yaml:"firebase_project_id" env:"AUTH_FIREBASE_PROJECT_ID" env-required:"true"`
	CertsURL          string `yaml:"certs_url"           env:"AUTH_CERTS_URL"           env-default:"https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"`
}

// ScoringConfig holds bias model and pass/fail policy settings.
type ScoringConfig struct {
	Policy         string        `yaml:"policy"           env:"BIAS_PASS_POLICY"         env-default:"absolute"`
	Threshold      float64       `yaml:"threshold"        env:"BIAS_ABSOLUTE_THRESHOLD"  env-default:"15.0"`
	Reward         int           `yaml:"reward"           env:"BIAS_REWARD_POINTS"       env-default:"10"`
	ModelName      string        `yaml:"model_name"       env:"BIAS_MODEL_NAME"          env-default:"unitary/toxic-bert"`
	InferenceURL   string        `yaml:"inference_url"    env:"BIAS_INFERENCE_URL"       env-default:"https://api-inference.huggingface.co/models"`
	InferenceToken string        `yaml:"inference_token"  env:"BIAS_INFERENCE_TOKEN"`
	Timeout        time.Duration `yaml:"timeout"          env:"BIAS_INFERENCE_TIMEOUT"   env-default:"20s"`
	CacheSize      int           `yaml:"cache_size"       env:"BIAS_SCORE_CACHE_SIZE"    env-default:"4096"`
}

// LLMConfig holds sentence-generator provider settings.
type LLMConfig struct {
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"ANTHROPIC_MODEL"   env-default:"claude-3-5-sonnet-latest"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"GOOGLE_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"GEMINI_MODEL"      env-default:"gemini-1.5-flash"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"    env-default:"256"`
	Temperature     float64       `yaml:"temperature"       env:"LLM_TEMPERATURE"   env-default:"0.2"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"       env-default:"60s"`
}

// RedisConfig holds the optional leaderboard cache settings.
// An empty URL disables caching.
type RedisConfig struct {
	URL            string        `yaml:"url"             env:"REDIS_URL"`
	LeaderboardTTL time.Duration `yaml:"leaderboard_ttl" env:"REDIS_LEADERBOARD_TTL" env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits LLM-backed endpoints per client address.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// ProvidersConfigured reports which sentence generators have credentials.
func (c LLMConfig) ProvidersConfigured() []string {
	var providers []string
	if c.AnthropicAPIKey != "" {
		providers = append(providers, "anthropic")
	}
	if c.GeminiAPIKey != "" {
		providers = append(providers, "gemini")
	}
	return providers
}
