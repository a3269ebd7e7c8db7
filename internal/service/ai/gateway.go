package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"chatfront/internal/config"
)

const systemPrompt = "You are a helpful AI assistant. Always provide direct, helpful responses. " +
	"Never say you encountered an error processing a message unless there is a genuine technical issue. " +
	"Answer all questions to the best of your ability."

// Gateway adapts the hosted chat model to a synchronous one-shot call.
// It holds no conversation state; every call is one request, one
// response.
type Gateway struct {
	promptVar string
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewGateway builds the model client and compiles the prompt chain once.
func NewGateway(ctx context.Context, cfg config.AIConfig) (*Gateway, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	template := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{"+cfg.PromptVar+"}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(template)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Gateway{promptVar: cfg.PromptVar, chain: runnable}, nil
}

// Complete sends one user message and returns the model's reply text.
// Failures never escape this boundary: they come back as a readable
// error string so the conversation can still record the turn.
func (g *Gateway) Complete(ctx context.Context, userText string) string {
	input := map[string]any{
		"system":    systemPrompt,
		g.promptVar: userText,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		log.Printf("[gateway] model call failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}

	log.Printf("[gateway] reply generated, length=%d", len(response.Content))
	return response.Content
}
