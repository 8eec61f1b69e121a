package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/models"
)

func TestWorthwhile(t *testing.T) {
	assert.False(t, Worthwhile(""))
	assert.False(t, Worthwhile("  "))
	assert.False(t, Worthwhile("a"))
	assert.False(t, Worthwhile(" 茶 "))
	assert.True(t, Worthwhile("好茶"))
	assert.True(t, Worthwhile("ok"))
}

func TestStaticTranslateDeterministic(t *testing.T) {
	s := NewStatic()

	first, err := s.Translate(context.Background(), "一杯好茶", models.LangZH, models.LangEN)
	require.NoError(t, err)
	second, err := s.Translate(context.Background(), "一杯好茶", models.LangZH, models.LangEN)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "一杯好茶")
	assert.Contains(t, first, "[EN]")
}

func TestStaticChatAlwaysAnswers(t *testing.T) {
	s := NewStatic()

	reply, err := s.Chat(context.Background(), nil, "怎么加盟？")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	reply, err = s.Chat(context.Background(), []Message{{Role: "user", Text: "hi"}}, "  ")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}
