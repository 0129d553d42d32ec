package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrAmlya/unheard-echoes/middleware"
	"github.com/MrAmlya/unheard-echoes/services"
)

type ModerationHandler struct {
	moderationService services.ModerationService
}

func NewModerationHandler(moderationService services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) Approve(c *gin.Context) {
	writing, err := h.moderationService.Approve(c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Writing approved successfully",
		"writing": writing,
	})
}

func (h *ModerationHandler) Reject(c *gin.Context) {
	writing, err := h.moderationService.Reject(c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Writing rejected successfully",
		"writing": writing,
	})
}

func (h *ModerationHandler) ListPending(c *gin.Context) {
	writings, err := h.moderationService.ListPending(middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, writings)
}

func (h *ModerationHandler) ListReviewed(c *gin.Context) {
	writings, err := h.moderationService.ListReviewed(middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, writings)
}
