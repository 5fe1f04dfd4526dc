package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Command interpretation specifics
	Interpreter InterpreterConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InterpreterConfig tunes entity resolution behavior.
type InterpreterConfig struct {
	MinConfidence   float64
	AmbiguityMargin float64
	LearnedBoost    float64
	MaxSessions     int
	SessionTTL      time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Interpreter tuning
	cfg.Interpreter.MinConfidence = viper.GetFloat64("interpreter.min_confidence")
	cfg.Interpreter.AmbiguityMargin = viper.GetFloat64("interpreter.ambiguity_margin")
	cfg.Interpreter.LearnedBoost = viper.GetFloat64("interpreter.learned_boost")
	cfg.Interpreter.MaxSessions = viper.GetInt("interpreter.max_sessions")
	cfg.Interpreter.SessionTTL = viper.GetDuration("interpreter.session_ttl")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Interpreter.MinConfidence < 0 || cfg.Interpreter.MinConfidence > 1 {
		return fmt.Errorf("interpreter.min_confidence must be within [0, 1], got %v", cfg.Interpreter.MinConfidence)
	}
	if cfg.Interpreter.AmbiguityMargin < 0 || cfg.Interpreter.AmbiguityMargin > 1 {
		return fmt.Errorf("interpreter.ambiguity_margin must be within [0, 1], got %v", cfg.Interpreter.AmbiguityMargin)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("interpreter.min_confidence", 0.5)
	viper.SetDefault("interpreter.ambiguity_margin", 0.1)
	viper.SetDefault("interpreter.learned_boost", 0.08)
	viper.SetDefault("interpreter.max_sessions", 1024)
	viper.SetDefault("interpreter.session_ttl", 12*time.Hour)

	viper.SetDefault("rate_limit.per_min", 60)
}
