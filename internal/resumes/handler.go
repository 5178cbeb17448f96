package resumes

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/util"
)

const defaultMaxUploadBytes = 10 << 20 // 10MB across the whole form

// Handler wires batch HTTP endpoints to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches batch routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/batches", h.create)
	rg.GET("/batches/:id", h.get)
	rg.GET("/batches/:id/summary", h.summary)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form with files is required", nil)
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}

	uploads := make([]Upload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		fileName, err := util.SanitizeFileName(fh.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", gin.H{"fileName": fh.Filename})
			return
		}

		f, err := fh.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", gin.H{"fileName": fileName})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", gin.H{"fileName": fileName})
			return
		}
		uploads = append(uploads, Upload{FileName: fileName, Data: data})
	}

	batch, err := h.Svc.Process(c.Request.Context(), uploads)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process batch", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toBatchResponse(batch))
}

func (h *Handler) get(c *gin.Context) {
	batch, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBatchError(c, err)
		return
	}
	respond.OK(c, toBatchResponse(batch))
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.Svc.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBatchError(c, err)
		return
	}
	respond.OK(c, summary)
}

func respondBatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "batch not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch batch", nil)
	}
}

type batchResponse struct {
	BatchID   string    `json:"batchId"`
	CreatedAt time.Time `json:"createdAt"`
	Total     int       `json:"total"`
	Selected  []Record  `json:"selected"`
	Rejected  []Record  `json:"rejected"`
}

func toBatchResponse(batch Batch) batchResponse {
	matched, unmatched := batch.Partition()
	if matched == nil {
		matched = []Record{}
	}
	if unmatched == nil {
		unmatched = []Record{}
	}
	return batchResponse{
		BatchID:   batch.ID,
		CreatedAt: batch.CreatedAt,
		Total:     len(batch.Records),
		Selected:  matched,
		Rejected:  unmatched,
	}
}
