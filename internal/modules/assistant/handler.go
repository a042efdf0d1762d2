package assistant

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/ask", h.Ask)
}

func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		return
	}

	reply, err := h.service.Answer(c.Request.Context(), req.Message, req.Language)
	if err != nil {
		switch err {
		case ErrEmptyQuestion:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to answer")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}
