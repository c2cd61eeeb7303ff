package config

import "fmt"

// Validate checks that the config has all required fields.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "ollama":
		if c.LLM.Model == "" {
			return fmt.Errorf("llm.model is required")
		}
	case "openai":
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q", c.LLM.Provider)
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("llm.model is required")
		}
	default:
		return fmt.Errorf("llm.provider must be one of: ollama, openai")
	}

	if c.LLM.TimeoutSecs < 1 {
		return fmt.Errorf("llm.timeout_secs must be at least 1")
	}
	if c.Agent.MaxIters < 1 {
		return fmt.Errorf("agent.max_iters must be at least 1")
	}
	return nil
}

// Redact returns a copy of the config with the API key masked for display.
func (c *Config) Redact() *Config {
	copy := *c
	copy.LLM.APIKey = redactKey(c.LLM.APIKey)
	return &copy
}

func redactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
