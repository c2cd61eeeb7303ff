// Package config loads, saves and validates the agent's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk TOML configuration.
type Config struct {
	LLM   LLMConfig   `toml:"llm"`
	Agent AgentConfig `toml:"agent"`
}

// LLMConfig selects and tunes the model backend.
type LLMConfig struct {
	Provider    string `toml:"provider"` // ollama or openai
	BaseURL     string `toml:"base_url"`
	APIKey      string `toml:"api_key,omitempty"` // openai only
	Model       string `toml:"model"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// AgentConfig tunes the tool-calling loop.
type AgentConfig struct {
	MaxIters int `toml:"max_iters"` // model rounds per question
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "ollama",
			BaseURL:     "http://localhost:11434",
			Model:       "vicuna:13b",
			TimeoutSecs: 180, // local models can be slow
		},
		Agent: AgentConfig{
			MaxIters: 4,
		},
	}
}

// Path returns the config file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".helloagent", "config.toml")
}

// Load reads the config file, falling back to defaults when it is absent.
// Fields missing from the file keep their default values.
func Load() (*Config, error) {
	cfg := Default()
	path := Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to Path, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Timeout returns the per-request model timeout.
func (c *LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}
