package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Storage StorageConfig
	Redis   RedisConfig
	Facts   FactsConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	BodyLimitMB  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LLMConfig selects and tunes the text-generation provider.
type LLMConfig struct {
	Provider   string
	Model      string
	APIKey     string
	ServerURL  string
	Timeout    time.Duration
	MaxRetries int
}

type StorageConfig struct {
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type FactsConfig struct {
	CacheTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// envBindings maps config keys to the environment variables that carry secrets
// or deployment-specific values.
var envBindings = map[string][]string{
	"llm.api_key":               {"LLM_API_KEY", "GEMINI_API_KEY"},
	"llm.server_url":            {"LLM_SERVER_URL", "LLM_SERVER"},
	"storage.access_key_id":     {"STORAGE_ACCESS_KEY_ID"},
	"storage.secret_access_key": {"STORAGE_SECRET_ACCESS_KEY"},
	"storage.endpoint":          {"STORAGE_ENDPOINT"},
	"redis.address":             {"REDIS_ADDRESS"},
	"redis.password":            {"REDIS_PASSWORD"},
	"logger.env":                {"LOGGER_ENV", "ENV"},
	"server.port":               {"SERVER_PORT", "PORT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit_mb", 10)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)

	v.SetDefault("llm.provider", "googleai")
	v.SetDefault("llm.model", "gemini-1.5-flash-latest")
	v.SetDefault("llm.timeout", 30)
	v.SetDefault("llm.max_retries", 1)

	v.SetDefault("storage.bucket", "temp-uploads")
	v.SetDefault("storage.region", "auto")

	v.SetDefault("redis.db", 0)
	v.SetDefault("facts.cache_ttl", "24h")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads an optional .env file, an optional config.yaml and the
// process environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		LLM: LLMConfig{
			Provider:   strings.ToLower(v.GetString("llm.provider")),
			Model:      v.GetString("llm.model"),
			APIKey:     v.GetString("llm.api_key"),
			ServerURL:  v.GetString("llm.server_url"),
			Timeout:    time.Duration(v.GetInt("llm.timeout")) * time.Second,
			MaxRetries: v.GetInt("llm.max_retries"),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("storage.bucket"),
			Endpoint:        v.GetString("storage.endpoint"),
			Region:          v.GetString("storage.region"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Facts: FactsConfig{
			CacheTTL: v.GetDuration("facts.cache_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	// zero or one retry
	if cfg.LLM.MaxRetries < 0 {
		cfg.LLM.MaxRetries = 0
	}
	if cfg.LLM.MaxRetries > 1 {
		cfg.LLM.MaxRetries = 1
	}
	if cfg.LLM.Timeout <= 0 {
		return nil, fmt.Errorf("llm.timeout must be positive")
	}
	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("server.port must be positive, got %d", cfg.Server.Port)
	}

	return cfg, nil
}

// BodyLimit returns the request body limit in bytes.
func (c *Config) BodyLimit() int {
	return c.Server.BodyLimitMB * 1024 * 1024
}
