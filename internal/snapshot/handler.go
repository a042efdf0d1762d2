package snapshot

import (
	"net/http"

	"labbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/snapshot", h.Export)
	rg.POST("/snapshot", h.Import)
}

func (h *Handler) Export(c *gin.Context) {
	snap, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export snapshot")
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) Import(c *gin.Context) {
	var snap Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid snapshot payload")
		return
	}

	if err := h.service.Import(c.Request.Context(), &snap); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import snapshot")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"users":     len(snap.Users),
		"bookings":  len(snap.Bookings),
		"equipment": len(snap.Equipment),
	})
}
