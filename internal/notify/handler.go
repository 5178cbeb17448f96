package notify

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/server/respond"
)

// Handler exposes the notification endpoint for a processed batch.
type Handler struct {
	Batches    *resumes.Service
	Dispatcher *Service
}

// NewHandler constructs a Handler.
func NewHandler(batches *resumes.Service, dispatcher *Service) *Handler {
	return &Handler{Batches: batches, Dispatcher: dispatcher}
}

// RegisterRoutes attaches notification routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/batches/:id/notify", h.notify)
}

func (h *Handler) notify(c *gin.Context) {
	batch, err := h.Batches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "batch not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch batch", nil)
		}
		return
	}

	result, err := h.Dispatcher.Dispatch(c.Request.Context(), batch)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "email_not_configured", "email credentials are not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to dispatch emails", nil)
		}
		return
	}

	respond.OK(c, result)
}
