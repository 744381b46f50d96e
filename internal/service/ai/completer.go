// Package ai wraps the remote text-completion backends behind a prompt-in / text-out contract.
package ai

import (
	"context"
	"fmt"

	"github.com/zhouzirui/mood-companion/backend/internal/config"
)

// Completer sends a single prompt to a remote model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Name identifies function-backed completers.
func (f CompleterFunc) Name() string {
	return "func"
}

// NewCompleter builds the completer for the configured provider.
// It returns nil, nil when no credential is configured so callers stay on the local path.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	var (
		completer Completer
		err       error
	)
	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, modelErr := cfg.NewChatModel(ctx)
		if modelErr != nil {
			return nil, fmt.Errorf("failed to create chat model: %w", modelErr)
		}
		completer, err = NewChainCompleter(ctx, config.ProviderArk, chatModel)
	case config.ProviderGemini:
		completer, err = NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
	case config.ProviderOpenAI:
		completer, err = NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return completer, nil
}
