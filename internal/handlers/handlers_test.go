package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadebrew/site-manager/internal/cache"
	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/state"
	"github.com/jadebrew/site-manager/internal/store"
	"github.com/jadebrew/site-manager/internal/testhelpers"
	"github.com/jadebrew/site-manager/internal/translate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	manager   *state.Manager
	persister *persist.Persister
	router    *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	_, client := testhelpers.NewTestRedis(t)
	localCache := cache.New(client)

	storeClient := store.NewClient("http://127.0.0.1:1", nil, logger.NewNop())
	persister := persist.New(storeClient, localCache, models.CloudConfig{}, logger.NewNop())
	manager := state.NewManager(content.Defaults(), models.SourceDefault,
		translate.NewStatic(), persister, nil, testhelpers.NewTestLogger())

	log := testhelpers.NewTestLogger()
	contentHandler := NewContentHandler(manager, log)
	adminHandler := NewAdminHandler(manager, persister, log)
	leadHandler := NewLeadHandler(manager, log)
	chatHandler := NewChatHandler(translate.NewStatic(), log)

	router := gin.New()
	router.GET("/content", contentHandler.Get)
	router.GET("/meta", contentHandler.Meta)
	router.PUT("/content/field", adminHandler.UpdateField)
	router.POST("/content/list", adminHandler.AddListItem)
	router.DELETE("/content/list", adminHandler.DeleteListItem)
	router.PUT("/content/list/move", adminHandler.MoveListItem)
	router.PUT("/content/visibility", adminHandler.SetVisibility)
	router.DELETE("/menu", adminHandler.DeleteMenuItem)
	router.POST("/library", adminHandler.AddImage)
	router.DELETE("/library", adminHandler.DeleteImage)
	router.POST("/save", adminHandler.Save)
	router.POST("/reset", adminHandler.Reset)
	router.GET("/cloud", adminHandler.GetCloudConfig)
	router.PUT("/cloud", adminHandler.PutCloudConfig)
	router.POST("/cloud/test", adminHandler.TestCloudConnection)
	router.POST("/leads", leadHandler.Submit)
	router.GET("/leads", leadHandler.List)
	router.PUT("/leads/status", leadHandler.UpdateStatus)
	router.DELETE("/leads", leadHandler.Delete)
	router.POST("/chat", chatHandler.Chat)

	return &fixture{manager: manager, persister: persister, router: router}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGetContent(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/content", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc, "hero")
	assert.Contains(t, doc, "menu")
}

func TestMeta(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/meta", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"source":"default","dirty":false}`, w.Body.String())
}

func TestUpdateField(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPut, "/content/field", gin.H{
		"path": "hero.title", "language": "en", "value": "New Title",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New Title", f.manager.Content().Hero.Title.EN)

	w = f.do(t, http.MethodPut, "/content/field", gin.H{
		"path": "hero.bogus", "language": "en", "value": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/content/field", gin.H{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing required fields")
}

func TestListEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/content/list", gin.H{"path": "faq.items"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"index":3`)

	w = f.do(t, http.MethodDelete, "/content/list", gin.H{"path": "faq.items", "index": 0})
	assert.Equal(t, http.StatusPreconditionRequired, w.Code, "delete needs confirmation")

	w = f.do(t, http.MethodDelete, "/content/list", gin.H{"path": "faq.items", "index": 0, "confirm": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPut, "/content/list/move", gin.H{"path": "faq.items", "from": 0, "to": 2})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPut, "/content/list/move", gin.H{"path": "faq.items", "from": 0, "to": 99})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisibility(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPut, "/content/visibility", gin.H{"section": "faq", "visible": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, f.manager.Content().FAQ.Visible)

	w = f.do(t, http.MethodPut, "/content/visibility", gin.H{"section": "bogus", "visible": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/content/visibility", gin.H{"section": "faq"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "visible flag is required")
}

func TestDeleteMenuItem(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodDelete, "/menu", gin.H{"id": 2, "confirm": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.manager.Content().Menu, 2)

	w = f.do(t, http.MethodDelete, "/menu", gin.H{"id": 2, "confirm": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLibraryEndpoints(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/library", gin.H{"image": "a.jpg"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodDelete, "/library", gin.H{"image": "a.jpg"})
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = f.do(t, http.MethodDelete, "/library", gin.H{"image": "a.jpg", "confirm": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.manager.Content().Library)
}

func TestSaveRejectsOverfullLibrary(t *testing.T) {
	f := newFixture(t)

	for i := 0; i <= store.ShardCount; i++ {
		w := f.do(t, http.MethodPost, "/library", gin.H{"image": string(rune('a'+i)) + ".jpg"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := f.do(t, http.MethodPost, "/save", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "capacity")
}

func TestSaveAndReset(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/reset", gin.H{})
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w = f.do(t, http.MethodPost, "/reset", gin.H{"confirm": true})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeadLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/leads", gin.H{
		"name": "张三", "phone": "13800000000", "city": "杭州", "message": "想加盟",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))
	assert.Equal(t, models.LeadStatusNew, lead.Status)

	w = f.do(t, http.MethodGet, "/leads", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = f.do(t, http.MethodPut, "/leads/status", gin.H{"id": lead.ID, "status": "contacted"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/leads", gin.H{"id": lead.ID, "confirm": true})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLeadValidation(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/leads", gin.H{"city": "杭州"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name and phone are required")
}

func TestChat(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/chat", gin.H{"message": "怎么加盟？"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reply")
}

func TestCloudConfigMasking(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPut, "/cloud", gin.H{
		"enabled": true, "documentId": "doc-1", "apiKey": "real-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/cloud", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "real-secret")
	assert.Contains(t, w.Body.String(), "********")

	// Sending the mask back keeps the stored key.
	w = f.do(t, http.MethodPut, "/cloud", gin.H{
		"enabled": false, "documentId": "doc-1", "apiKey": "********",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "real-secret", f.persister.CloudConfig().APIKey)
}

func TestCloudTestNotConfigured(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/cloud/test", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
