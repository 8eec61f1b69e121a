// Package handlers maps the HTTP surface onto the state manager. Public
// endpoints serve the site content and accept franchise inquiries; admin
// endpoints carry every edit operation behind the auth middleware.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/content"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/state"
	"github.com/jadebrew/site-manager/internal/store"
)

type ContentHandler struct {
	manager *state.Manager
	logger  logger.Logger
}

func NewContentHandler(manager *state.Manager, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		manager: manager,
		logger:  log,
	}
}

// Get returns the full bilingual content aggregate. Clients pick the
// language slot themselves; both are always present.
func (h *ContentHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Content())
}

// Meta reports where the active content came from and whether unsaved
// edits exist. The admin dashboard renders this as the data-source pill.
func (h *ContentHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"source": h.manager.Source(),
		"dirty":  h.manager.Dirty(),
	})
}

// statusFor maps domain errors onto HTTP status codes. Anything unmapped
// is a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, state.ErrConfirmationRequired):
		return http.StatusPreconditionRequired
	case errors.Is(err, state.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrInvalidLanguage),
		errors.Is(err, content.ErrUnknownPath),
		errors.Is(err, content.ErrIndexOutOfRange),
		errors.Is(err, store.ErrShardConfig):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrLibraryCapacity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
