package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// ChainCompleter runs prompts through an eino chain (template -> chat model).
type ChainCompleter struct {
	name  string
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewChainCompleter compiles a single-turn chain around chatModel.
func NewChainCompleter(ctx context.Context, name string, chatModel model.BaseChatModel) (*ChainCompleter, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is nil")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile completion chain: %w", err)
	}

	return &ChainCompleter{name: name, chain: runnable}, nil
}

// Complete invokes the chain with prompt.
func (c *ChainCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.chain.Invoke(ctx, map[string]any{"prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("failed to run completion chain: %w", err)
	}
	if msg == nil {
		return "", nil
	}
	return msg.Content, nil
}

// Name returns the backend name.
func (c *ChainCompleter) Name() string {
	return c.name
}
