// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	OpenAI     OpenAIConfig     `yaml:"openai" mapstructure:"openai"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Brave      BraveConfig      `yaml:"brave" mapstructure:"brave"`
	BrightData BrightDataConfig `yaml:"brightdata" mapstructure:"brightdata"`
	Extract    ExtractConfig    `yaml:"extract" mapstructure:"extract"`
	Resolve    ResolveConfig    `yaml:"resolve" mapstructure:"resolve"`
	Document   DocumentConfig   `yaml:"document" mapstructure:"document"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// OpenAIConfig holds OpenAI-compatible endpoint settings.
type OpenAIConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// AnthropicConfig holds Anthropic API settings for the alternate backend.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// BraveConfig holds Brave search API settings.
type BraveConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Count int    `yaml:"count" mapstructure:"count"`
}

// BrightDataConfig holds Bright Data proxy settings. An empty key disables
// the scrape-backed search source.
type BrightDataConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Zone  string `yaml:"zone" mapstructure:"zone"`
	Count int    `yaml:"count" mapstructure:"count"`
}

// ExtractConfig configures stage-1 behavior.
type ExtractConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "openai" or "anthropic"
	Dedupe  bool   `yaml:"dedupe" mapstructure:"dedupe"`
}

// ResolveConfig configures stage-2 behavior.
type ResolveConfig struct {
	DelaySecs int `yaml:"delay_secs" mapstructure:"delay_secs"`
}

// DocumentConfig configures document loading.
type DocumentConfig struct {
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env (if present), config file, and
// environment.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, eris.Wrap(err, "config: load .env")
		}
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The key entries register the viper keys so AutomaticEnv can
	// populate them during Unmarshal.
	v.SetDefault("openai.key", "")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("brave.key", "")
	v.SetDefault("brightdata.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4.1")
	v.SetDefault("openai.temperature", 0.0)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("brave.count", 5)
	v.SetDefault("brightdata.zone", "serp_api")
	v.SetDefault("brightdata.count", 10)
	v.SetDefault("extract.backend", "openai")
	v.SetDefault("extract.dedupe", true)
	v.SetDefault("resolve.delay_secs", 5)
	v.SetDefault("document.pdftotext_path", "pdftotext")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
