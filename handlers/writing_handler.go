package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrAmlya/unheard-echoes/middleware"
	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/services"
)

type WritingHandler struct {
	writingService services.WritingService
}

func NewWritingHandler(writingService services.WritingService) *WritingHandler {
	return &WritingHandler{writingService: writingService}
}

// ListPublic returns approved writings only.
func (h *WritingHandler) ListPublic(c *gin.Context) {
	writings, err := h.writingService.ListPublic()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch writings"})
		return
	}

	c.JSON(http.StatusOK, writings)
}

func (h *WritingHandler) ListMine(c *gin.Context) {
	writings, err := h.writingService.ListMine(middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, writings)
}

func (h *WritingHandler) Create(c *gin.Context) {
	var req models.CreateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content and category are required"})
		return
	}

	writing, err := h.writingService.Create(req, middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, writing)
}

// Get returns a single writing with no status filter; the owner and
// admin UIs rely on the listing endpoints for filtering.
func (h *WritingHandler) Get(c *gin.Context) {
	writing, err := h.writingService.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, writing)
}

func (h *WritingHandler) Update(c *gin.Context) {
	var req models.UpdateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	writing, err := h.writingService.Update(c.Param("id"), req, middleware.CallerFrom(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, writing)
}

func (h *WritingHandler) Delete(c *gin.Context) {
	if err := h.writingService.Delete(c.Param("id"), middleware.CallerFrom(c)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Writing deleted successfully"})
}

// statusFor maps the service error taxonomy to HTTP status codes.
// Shared by the writing, moderation and engagement handlers.
func statusFor(err error) int {
	switch err.(type) {
	case models.ErrorValidation:
		return http.StatusBadRequest
	case models.ErrorUnauthorized:
		return http.StatusUnauthorized
	case models.ErrorForbidden:
		return http.StatusForbidden
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
