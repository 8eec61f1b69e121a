package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/models"
	"github.com/jadebrew/site-manager/internal/state"
)

type LeadHandler struct {
	manager *state.Manager
	logger  logger.Logger
}

func NewLeadHandler(manager *state.Manager, log logger.Logger) *LeadHandler {
	return &LeadHandler{
		manager: manager,
		logger:  log,
	}
}

type submitLeadRequest struct {
	Name    string `json:"name"  binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	City    string `json:"city"`
	Message string `json:"message"`
}

// Submit accepts a franchise inquiry from the public site. No auth: this
// is the only write endpoint visitors can reach.
func (h *LeadHandler) Submit(c *gin.Context) {
	var req submitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead := h.manager.SubmitLead(c.Request.Context(), req.Name, req.Phone, req.City, req.Message)
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	leads := h.manager.Content().Leads
	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

type leadStatusRequest struct {
	ID     int64             `json:"id"     binding:"required"`
	Status models.LeadStatus `json:"status" binding:"required"`
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req leadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.UpdateLeadStatus(req.ID, req.Status); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID, "status": req.Status})
}

type deleteLeadRequest struct {
	ID      int64 `json:"id" binding:"required"`
	Confirm bool  `json:"confirm"`
}

func (h *LeadHandler) Delete(c *gin.Context) {
	var req deleteLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.manager.DeleteLead(req.ID, req.Confirm); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Lead deleted", logger.Int64("lead_id", req.ID))
	c.JSON(http.StatusNoContent, nil)
}
