package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultModel       = "llama3-70b-8192"
	defaultMaxTokens   = 1024
	defaultTemperature = 0.8
	defaultListenAddr  = ":8080"
)

type Config struct {
	GroqAPIKey string

	Groq   GroqConfig   `yaml:"groq"`
	Server ServerConfig `yaml:"server"`
}

type GroqConfig struct {
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	// Pointer so an explicit 0 in config.yaml is kept.
	Temperature *float32 `yaml:"temperature"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	return cfg
}

// Validate fails fast on missing credentials so no unauthenticated
// request is ever sent.
func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return errors.New("GROQ_API_KEY is not set (add it to .env or the environment, or run `reelscript setup`)")
	}
	return nil
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Debug("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = defaultModel
	}
	if cfg.Groq.MaxTokens == 0 {
		cfg.Groq.MaxTokens = defaultMaxTokens
	}
	if cfg.Groq.Temperature == nil {
		temperature := float32(defaultTemperature)
		cfg.Groq.Temperature = &temperature
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultListenAddr
	}
}
