package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/telemetry"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves XLSX downloads for a processed batch.
type Handler struct {
	Batches *resumes.Service
}

// NewHandler constructs a Handler.
func NewHandler(batches *resumes.Service) *Handler {
	return &Handler{Batches: batches}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/batches/:id/export", h.download)
}

func (h *Handler) download(c *gin.Context) {
	batch, err := h.Batches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "batch not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch batch", nil)
		return
	}

	matched, unmatched := batch.Partition()

	var records []resumes.Record
	var fileName string
	switch set := c.DefaultQuery("set", "selected"); set {
	case "selected":
		records, fileName = matched, "selected_candidates.xlsx"
	case "rejected":
		records, fileName = unmatched, "rejected_candidates.xlsx"
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "set must be selected or rejected", gin.H{"set": set})
		return
	}

	// Downloads exist only for non-empty record sets.
	if len(records) == 0 {
		respond.Error(c, http.StatusNotFound, "empty_set", "no records to export", nil)
		return
	}

	data, err := RecordsXLSX(records)
	if err != nil {
		telemetry.Error("export.xlsx_failed", map[string]any{
			"batch_id": batch.ID,
			"error":    err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build workbook", nil)
		return
	}

	telemetry.Info("export.xlsx_ok", map[string]any{
		"batch_id": batch.ID,
		"rows":     len(records),
		"file":     fileName,
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, data)
}
