package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jadebrew/site-manager/internal/models"
)

// Static is the deterministic local fallback used when no provider API key
// is configured. It never fails, so the editing flow stays fully testable
// without network access.
type Static struct{}

// NewStatic returns the fallback translator.
func NewStatic() Static {
	return Static{}
}

// Translate tags the text with the target language instead of translating.
func (Static) Translate(_ context.Context, text string, _, to models.Language) (string, error) {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(string(to)), text), nil
}

// Chat returns a canned pointer at the inquiry form.
func (Static) Chat(_ context.Context, _ []Message, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "您好，我是翡翠茶集的智能助手，请问有什么可以帮您？", nil
	}
	return "感谢您对翡翠茶集的关注！加盟相关问题欢迎在页面底部留下联系方式，招商经理会尽快与您联系。", nil
}
