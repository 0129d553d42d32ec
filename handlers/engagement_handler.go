package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrAmlya/unheard-echoes/middleware"
	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/services"
)

type EngagementHandler struct {
	engagementService services.EngagementService
}

func NewEngagementHandler(engagementService services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// ToggleLike works for both authenticated and anonymous callers; the
// service branches on the caller being nil.
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	result, err := h.engagementService.ToggleLike(c.Param("id"), middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	message := "Unliked successfully"
	if result.Liked {
		message = "Liked successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"liked":   result.Liked,
		"likes":   result.Likes,
		"message": message,
	})
}

func (h *EngagementHandler) AddComment(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and comment text are required"})
		return
	}

	comment, err := h.engagementService.AddComment(c.Param("id"), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"comment": comment,
		"message": "Comment added successfully",
	})
}

func (h *EngagementHandler) DeleteComment(c *gin.Context) {
	err := h.engagementService.DeleteComment(c.Param("id"), c.Param("commentId"), middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
