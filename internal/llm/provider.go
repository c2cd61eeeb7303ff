// Package llm provides the chat-completion backends the agent talks to.
package llm

import (
	"context"
	"fmt"

	"github.com/NDNathanRocks/AI-Agents/internal/config"
)

// Chat message roles. Tool observations are injected under RoleUser because
// the chat endpoints we target have no separate tool role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in the conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider generates one assistant reply from a full message history.
type Provider interface {
	// Chat sends the whole conversation and returns the assistant's reply
	// text. Transport failures, timeouts and non-2xx statuses are returned
	// as errors; the caller treats them as fatal for the current question.
	Chat(ctx context.Context, messages []Message) (string, error)
	// Name returns the provider name for display.
	Name() string
}

// NewProvider creates an LLM provider based on the config.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "ollama":
		baseURL := cfg.LLM.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return NewOllama(baseURL, cfg.LLM.Model, cfg.LLM.Timeout()), nil
	case "openai":
		return NewOpenAI(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout()), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLM.Provider)
	}
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
