package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/store"
	"github.com/jadebrew/site-manager/internal/testhelpers"
	"github.com/jadebrew/site-manager/internal/translate"
)

const eventuallyTick = 5 * time.Millisecond

// stubTranslator hands each Translate call to the test, which decides when
// and with what to answer. Unreleased calls block, modelling a slow provider.
type stubTranslator struct {
	mu    sync.Mutex
	count int
	calls chan translateCall
}

type translateCall struct {
	text    string
	release chan string
}

func newStubTranslator() *stubTranslator {
	return &stubTranslator{calls: make(chan translateCall, 16)}
}

func (s *stubTranslator) Translate(ctx context.Context, text string, _, _ models.Language) (string, error) {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()

	call := translateCall{text: text, release: make(chan string)}
	s.calls <- call
	select {
	case result := <-call.release:
		return result, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *stubTranslator) Chat(context.Context, []translate.Message, string) (string, error) {
	return "", nil
}

func (s *stubTranslator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// next waits for the provider to receive a translation request.
func (s *stubTranslator) next(t *testing.T) translateCall {
	t.Helper()
	select {
	case call := <-s.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("no translation request arrived")
		return translateCall{}
	}
}

// echoTranslator answers immediately with a tagged echo.
type echoTranslator struct{}

func (echoTranslator) Translate(_ context.Context, text string, _, _ models.Language) (string, error) {
	return "译|" + text, nil
}

func (echoTranslator) Chat(context.Context, []translate.Message, string) (string, error) {
	return "", nil
}

func newTestManager(t *testing.T, translator translate.Translator) (*Manager, *cache.Cache) {
	t.Helper()

	_, client := testhelpers.NewTestRedis(t)
	localCache := cache.New(client)

	storeClient := store.NewClient("http://127.0.0.1:1", nil, logger.NewNop())
	persister := persist.New(storeClient, localCache, models.CloudConfig{}, logger.NewNop())

	m := NewManager(content.Defaults(), models.SourceDefault, translator, persister, nil, testhelpers.NewTestLogger())
	return m, localCache
}

func TestUpdateFieldEditsOneSlotOnly(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})

	require.NoError(t, m.UpdateField("hero.title", models.LangEN, "Fresh Title"))

	c := m.Content()
	assert.Equal(t, "Fresh Title", c.Hero.Title.EN)
	assert.Equal(t, "翡翠茶集", c.Hero.Title.ZH, "sibling slot unchanged until translation lands")
	assert.True(t, m.Dirty())

	// The sibling picks up the translation, the edited slot never moves.
	require.Eventually(t, func() bool {
		return m.Content().Hero.Title.ZH == "译|Fresh Title"
	}, 2*time.Second, eventuallyTick)
	assert.Equal(t, "Fresh Title", m.Content().Hero.Title.EN)
}

func TestUpdateFieldInvalidLanguage(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})
	assert.ErrorIs(t, m.UpdateField("hero.title", "fr", "x"), ErrInvalidLanguage)
}

func TestUpdateFieldUnknownPath(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})
	assert.ErrorIs(t, m.UpdateField("hero.nope", models.LangZH, "x"), content.ErrUnknownPath)
}

func TestPlainFieldSkipsTranslation(t *testing.T) {
	stub := newStubTranslator()
	m, _ := newTestManager(t, stub)

	require.NoError(t, m.UpdateField("footer.phone", models.LangZH, "400-222-3333"))
	assert.Equal(t, "400-222-3333", m.Content().Footer.Phone)
	assert.Zero(t, stub.callCount())
}

func TestTrivialTextSkipsTranslation(t *testing.T) {
	stub := newStubTranslator()
	m, _ := newTestManager(t, stub)

	require.NoError(t, m.UpdateField("hero.title", models.LangZH, "茶"))
	assert.Zero(t, stub.callCount())
}

func TestStaleTranslationDiscarded(t *testing.T) {
	stub := newStubTranslator()
	m, _ := newTestManager(t, stub)

	require.NoError(t, m.UpdateField("hero.tagline", models.LangZH, "第一版标语"))
	first := stub.next(t)

	require.NoError(t, m.UpdateField("hero.tagline", models.LangZH, "第二版标语"))
	second := stub.next(t)

	// The newer edit's translation lands.
	second.release <- "Second slogan"
	require.Eventually(t, func() bool {
		return m.Content().Hero.Tagline.EN == "Second slogan"
	}, 2*time.Second, eventuallyTick)

	// The older one resolves late and is discarded.
	first.release <- "First slogan"
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "Second slogan", m.Content().Hero.Tagline.EN)
	assert.Equal(t, "第二版标语", m.Content().Hero.Tagline.ZH)
}

func TestTranslationFailureKeepsPreviousText(t *testing.T) {
	failing := translatorFunc(func() (string, error) {
		return "", errors.New("provider down")
	})
	m, _ := newTestManager(t, failing)

	before := m.Content().Hero.Subtitle.EN
	require.NoError(t, m.UpdateField("hero.subtitle", models.LangZH, "新的副标题"))

	time.Sleep(50 * time.Millisecond)
	c := m.Content()
	assert.Equal(t, "新的副标题", c.Hero.Subtitle.ZH)
	assert.Equal(t, before, c.Hero.Subtitle.EN)
}

// translatorFunc adapts a closure to the Translator interface.
type translatorFunc func() (string, error)

func (f translatorFunc) Translate(context.Context, string, models.Language, models.Language) (string, error) {
	return f()
}

func (f translatorFunc) Chat(context.Context, []translate.Message, string) (string, error) {
	return "", nil
}

func TestListReshapeDiscardsPendingTranslation(t *testing.T) {
	stub := newStubTranslator()
	m, _ := newTestManager(t, stub)

	require.NoError(t, m.UpdateField("faq.items.0.question", models.LangZH, "改过的问题"))
	call := stub.next(t)

	// The list reshapes while the translation is in flight; index 0 now
	// means a different item.
	require.NoError(t, m.DeleteListItem("faq.items", 0, true))
	survivor := m.Content().FAQ.Items[0]

	call.release <- "Edited question"
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, survivor, m.Content().FAQ.Items[0], "late translation must not land on the shifted item")
}

func TestSaveClearsDirty(t *testing.T) {
	m, localCache := newTestManager(t, echoTranslator{})

	require.NoError(t, m.UpdateField("footer.phone", models.LangZH, "400-999-0000"))
	require.True(t, m.Dirty())

	require.NoError(t, m.Save(context.Background()))
	assert.False(t, m.Dirty())

	raw, ok, err := localCache.Snapshot(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "400-999-0000", content.Migrate(raw).Footer.Phone)
}

func TestSaveCapacityRejectionLeavesDirty(t *testing.T) {
	m, localCache := newTestManager(t, echoTranslator{})

	for i := 0; i <= store.ShardCount; i++ {
		require.NoError(t, m.AddImage(string(rune('a'+i))+".jpg"))
	}
	require.True(t, m.Dirty())

	err := m.Save(context.Background())
	require.ErrorIs(t, err, store.ErrLibraryCapacity)
	assert.True(t, m.Dirty(), "a rejected save keeps the edits pending")

	_, ok, cacheErr := localCache.Snapshot(context.Background())
	require.NoError(t, cacheErr)
	assert.False(t, ok, "a rejected save writes nothing")
}

func TestResetRequiresConfirmation(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})
	assert.ErrorIs(t, m.Reset(context.Background(), false), ErrConfirmationRequired)
}

func TestResetRestoresDefaults(t *testing.T) {
	m, localCache := newTestManager(t, echoTranslator{})

	require.NoError(t, m.UpdateField("footer.email", models.LangZH, "new@jadebrew.cn"))
	require.NoError(t, m.Save(context.Background()))

	require.NoError(t, m.Reset(context.Background(), true))
	assert.Equal(t, content.Defaults(), m.Content())
	assert.False(t, m.Dirty())

	_, ok, err := localCache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "reset deletes the local snapshot")
}

func TestSourceStaysFixed(t *testing.T) {
	m, _ := newTestManager(t, echoTranslator{})

	require.Equal(t, models.SourceDefault, m.Source())
	require.NoError(t, m.UpdateField("hero.title", models.LangEN, "Edited"))
	require.NoError(t, m.Save(context.Background()))
	assert.Equal(t, models.SourceDefault, m.Source(), "the source pill reflects load, not save")
}
