package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/telemetry"
)

// Handler serves the charts report for a processed batch.
type Handler struct {
	Batches *resumes.Service
}

// NewHandler constructs a Handler.
func NewHandler(batches *resumes.Service) *Handler {
	return &Handler{Batches: batches}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/batches/:id/report", h.report)
}

func (h *Handler) report(c *gin.Context) {
	summary, err := h.Batches.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "batch not found", nil)
		case errors.Is(err, resumes.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch batch", nil)
		}
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := Render(c.Writer, summary); err != nil {
		telemetry.Error("report.render_failed", map[string]any{
			"batch_id": summary.BatchID,
			"error":    err.Error(),
		})
	}
}
