package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jadebrew/site-manager/internal/models"
)

const (
	defaultModel        = "claude-sonnet-4-5"
	translateMaxTokens  = 1024
	chatMaxTokens       = 2048
	translateSystemTmpl = "Translate the user's text from %s to %s. The text is marketing copy for a tea-drink franchise brand. Reply with the translation only, no commentary."
	chatSystemPrompt    = "You are the assistant on the Jade Brew tea franchise website. Answer questions about the brand, its menu and franchising, briefly and helpfully, in the language the visitor uses."
	emptyCompletionText = "model returned no text"
)

// AnthropicTranslator calls the Anthropic Messages API.
type AnthropicTranslator struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropic creates a provider-backed translator. model may be empty.
func NewAnthropic(apiKey, model string) *AnthropicTranslator {
	if model == "" {
		model = defaultModel
	}
	return &AnthropicTranslator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Translate renders text into the sibling language.
func (t *AnthropicTranslator) Translate(ctx context.Context, text string, from, to models.Language) (string, error) {
	system := fmt.Sprintf(translateSystemTmpl, languageName(from), languageName(to))

	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     t.model,
		MaxTokens: translateMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	return messageText(msg)
}

// Chat answers a visitor message with the site context prompt.
func (t *AnthropicTranslator) Chat(ctx context.Context, history []Message, message string) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, turn := range history {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Role == "assistant" {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}
	msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(message)))

	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     t.model,
		MaxTokens: chatMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: chatSystemPrompt}},
		Messages:  msgs,
	})
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	return messageText(msg)
}

func messageText(msg *anthropic.Message) (string, error) {
	var sb strings.Builder
	for _, block := range msg.Content {
		sb.WriteString(block.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New(emptyCompletionText)
	}
	return text, nil
}
