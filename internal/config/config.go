package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/makeasinger/briefgen/internal/model"
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	filePath := os.Getenv(envKey + "_FILE")
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	os.Setenv(envKey, strings.TrimSpace(string(data)))
}

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration int // hours
}

type AuthConfig struct {
	Required bool
}

type RateLimitConfig struct {
	PromptPerMin  int
	ExportPerHour int
}

type GeneratorConfig struct {
	Seed         uint64 // 0 draws from entropy
	BatchLimit   int
	DefaultLevel model.StyleLevel
}

// Load reads config.yaml from . or ./config when present, then the environment.
func Load() (*Config, error) {
	readSecret("REDIS_PASSWORD")
	readSecret("JWT_SECRET")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("server.env", "SERVER_ENV")
	_ = v.BindEnv("server.log_level", "LOG_LEVEL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	_ = v.BindEnv("auth.required", "AUTH_REQUIRED")
	_ = v.BindEnv("ratelimit.prompt_per_min", "RATELIMIT_PROMPT_PER_MIN")
	_ = v.BindEnv("ratelimit.export_per_hour", "RATELIMIT_EXPORT_PER_HOUR")
	_ = v.BindEnv("generator.seed", "GENERATOR_SEED")
	_ = v.BindEnv("generator.batch_limit", "GENERATOR_BATCH_LIMIT")
	_ = v.BindEnv("generator.default_level", "GENERATOR_DEFAULT_LEVEL")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.expiration", 24)
	v.SetDefault("auth.required", false)
	v.SetDefault("ratelimit.prompt_per_min", 60)
	v.SetDefault("ratelimit.export_per_hour", 120)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.batch_limit", 8)
	v.SetDefault("generator.default_level", string(model.StyleLevelOptimized))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     v.GetString("server.port"),
			Env:      v.GetString("server.env"),
			LogLevel: v.GetString("server.log_level"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetInt("jwt.expiration"),
		},
		Auth: AuthConfig{
			Required: v.GetBool("auth.required"),
		},
		RateLimit: RateLimitConfig{
			PromptPerMin:  v.GetInt("ratelimit.prompt_per_min"),
			ExportPerHour: v.GetInt("ratelimit.export_per_hour"),
		},
		Generator: GeneratorConfig{
			Seed:         v.GetUint64("generator.seed"),
			BatchLimit:   v.GetInt("generator.batch_limit"),
			DefaultLevel: model.StyleLevel(v.GetString("generator.default_level")),
		},
	}

	if !cfg.Generator.DefaultLevel.Valid() {
		return nil, fmt.Errorf("invalid generator.default_level %q", cfg.Generator.DefaultLevel)
	}
	if cfg.Generator.BatchLimit <= 0 {
		return nil, fmt.Errorf("generator.batch_limit must be positive, got %d", cfg.Generator.BatchLimit)
	}

	return cfg, nil
}
