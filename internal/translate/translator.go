// Package translate wraps the external text-generation provider behind a
// small interface used for best-effort translation of edited content and
// the chat passthrough. Failures never block editing; when no provider is
// configured a deterministic local fallback keeps the flow testable.
package translate

import (
	"context"
	"strings"

	"github.com/jadebrew/site-manager/internal/models"
)

// Message is one role-tagged turn of a chat exchange.
type Message struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Translator is the text-generation contract: plain text in, plain text out.
type Translator interface {
	// Translate renders text from one language slot into the other.
	Translate(ctx context.Context, text string, from, to models.Language) (string, error)
	// Chat answers a visitor message given prior role-tagged history.
	Chat(ctx context.Context, history []Message, message string) (string, error)
}

// Worthwhile reports whether an edit is substantial enough to translate:
// more than one significant character after trimming.
func Worthwhile(text string) bool {
	return len([]rune(strings.TrimSpace(text))) > 1
}

func languageName(lang models.Language) string {
	if lang == models.LangEN {
		return "English"
	}
	return "Simplified Chinese"
}
