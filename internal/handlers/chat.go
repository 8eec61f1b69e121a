package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/translate"
)

type ChatHandler struct {
	translator translate.Translator
	logger     logger.Logger
}

func NewChatHandler(translator translate.Translator, log logger.Logger) *ChatHandler {
	return &ChatHandler{
		translator: translator,
		logger:     log,
	}
}

type chatRequest struct {
	History []translate.Message `json:"history"`
	Message string              `json:"message" binding:"required"`
}

// Chat relays a visitor question to the assistant model with the running
// conversation as context.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.translator.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		h.logger.Error("Chat request failed", logger.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
