package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimezone = "America/Sao_Paulo"

	DefaultGeminiTimeout   = 12 * time.Second
	DefaultSettingsTimeout = 3 * time.Second
)

// Config собирается один раз при старте и дальше не меняется.
type Config struct {
	RunAddr  string `mapstructure:"RUN_ADDR"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL string        `mapstructure:"GEMINI_BASE_URL"`
	GeminiTimeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`

	SettingsTimeout time.Duration `mapstructure:"SETTINGS_TIMEOUT"`
	DefaultTimezone string        `mapstructure:"DEFAULT_TIMEZONE"`
}

// Flags содержит значения из командной строки. Переменные окружения их перекрывают.
type Flags struct {
	RunAddr  string
	LogLevel string
}

// Load читает skill.yaml (если есть) и переменные окружения поверх флагов.
func Load(flags Flags) (Config, error) {
	v := viper.New()
	v.SetConfigName("skill")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("RUN_ADDR", flags.RunAddr)
	v.SetDefault("LOG_LEVEL", flags.LogLevel)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", DefaultModel)
	v.SetDefault("GEMINI_BASE_URL", DefaultBaseURL)
	v.SetDefault("GEMINI_TIMEOUT", DefaultGeminiTimeout)
	v.SetDefault("SETTINGS_TIMEOUT", DefaultSettingsTimeout)
	v.SetDefault("DEFAULT_TIMEZONE", DefaultTimezone)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RunAddr == "" {
		return errors.New("run address is empty")
	}
	if c.GeminiModel == "" {
		return errors.New("gemini model is empty")
	}
	if c.GeminiTimeout <= 0 {
		return fmt.Errorf("gemini timeout must be positive, got %s", c.GeminiTimeout)
	}
	if c.SettingsTimeout <= 0 {
		return fmt.Errorf("settings timeout must be positive, got %s", c.SettingsTimeout)
	}
	if c.DefaultTimezone == "" {
		return errors.New("default timezone is empty")
	}
	return nil
}
