package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/state"
)

type AdminHandler struct {
	manager   *state.Manager
	persister *persist.Persister
	logger    logger.Logger
}

func NewAdminHandler(manager *state.Manager, persister *persist.Persister, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		manager:   manager,
		persister: persister,
		logger:    log,
	}
}

type updateFieldRequest struct {
	Path     string          `json:"path"     binding:"required"`
	Language models.Language `json:"language" binding:"required"`
	Value    string          `json:"value"`
}

// UpdateField writes one language slot of a field and schedules the
// background translation of its sibling.
func (h *AdminHandler) UpdateField(c *gin.Context) {
	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.UpdateField(req.Path, req.Language, req.Value); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

type listItemRequest struct {
	Path string `json:"path" binding:"required"`
}

func (h *AdminHandler) AddListItem(c *gin.Context) {
	var req listItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	index, err := h.manager.AddListItem(req.Path)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": req.Path, "index": index})
}

type deleteListItemRequest struct {
	Path    string `json:"path" binding:"required"`
	Index   int    `json:"index"`
	Confirm bool   `json:"confirm"`
}

func (h *AdminHandler) DeleteListItem(c *gin.Context) {
	var req deleteListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.DeleteListItem(req.Path, req.Index, req.Confirm); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

type moveListItemRequest struct {
	Path string `json:"path" binding:"required"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

func (h *AdminHandler) MoveListItem(c *gin.Context) {
	var req moveListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.MoveListItem(req.Path, req.From, req.To); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": req.Path})
}

type visibilityRequest struct {
	Section string `json:"section" binding:"required"`
	Visible *bool  `json:"visible" binding:"required"`
}

func (h *AdminHandler) SetVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.SetSectionVisible(req.Section, *req.Visible); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": req.Section, "visible": *req.Visible})
}

type deleteMenuItemRequest struct {
	ID      int  `json:"id" binding:"required"`
	Confirm bool `json:"confirm"`
}

func (h *AdminHandler) DeleteMenuItem(c *gin.Context) {
	var req deleteMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.DeleteMenuItem(req.ID, req.Confirm); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}

type imageRequest struct {
	Image   string `json:"image" binding:"required"`
	Confirm bool   `json:"confirm"`
}

func (h *AdminHandler) AddImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.AddImage(req.Image); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": req.Image})
}

func (h *AdminHandler) DeleteImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.DeleteImage(req.Image, req.Confirm); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": req.Image})
}

// Save writes the current content through the persistence tiers. A save
// that only reached the local cache reports partial success so the
// dashboard can warn without losing the edits.
func (h *AdminHandler) Save(c *gin.Context) {
	if err := h.manager.Save(c.Request.Context()); err != nil {
		h.logger.Error("Save failed", logger.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *AdminHandler) Reset(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.Reset(c.Request.Context(), req.Confirm); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Content reset to defaults")
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// GetCloudConfig returns the active remote store settings with the API key
// masked.
func (h *AdminHandler) GetCloudConfig(c *gin.Context) {
	cfg := h.persister.CloudConfig()
	masked := cfg
	if masked.APIKey != "" {
		masked.APIKey = "********"
	}
	c.JSON(http.StatusOK, masked)
}

// PutCloudConfig replaces the remote store settings at runtime. An empty
// incoming API key keeps the existing one, so the masked value round-trips.
func (h *AdminHandler) PutCloudConfig(c *gin.Context) {
	var req models.CloudConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if req.APIKey == "" || req.APIKey == "********" {
		req.APIKey = h.persister.CloudConfig().APIKey
	}

	if err := h.persister.SetCloudConfig(c.Request.Context(), req); err != nil {
		h.logger.Error("Cloud config update failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cloud config"})
		return
	}

	h.logger.Info("Cloud config updated",
		logger.String("document_id", req.DocumentID),
		logger.Bool("enabled", req.Enabled),
	)
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *AdminHandler) TestCloudConnection(c *gin.Context) {
	if err := h.persister.TestConnection(c.Request.Context()); err != nil {
		if errors.Is(err, persist.ErrCloudNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reachable": true})
}

// ProvisionShards creates the image shard documents and stores their ids.
func (h *AdminHandler) ProvisionShards(c *gin.Context) {
	ids, err := h.persister.Provision(c.Request.Context())
	if err != nil {
		if errors.Is(err, persist.ErrCloudNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Shard provisioning failed", logger.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Shards provisioned", logger.Int("count", len(ids)))
	c.JSON(http.StatusCreated, gin.H{"shardIds": ids})
}
