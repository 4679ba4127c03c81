package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/attachments"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
	"github.com/BruksfildServices01/matcha-inventory/internal/dto"
	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
	"github.com/BruksfildServices01/matcha-inventory/internal/httpresp"
)

// ResourceHandler serves the CRUD routes of one resource kind.
type ResourceHandler[T any] struct {
	repo      *inventory.Repository[T]
	uploads   *attachments.Uploader
	fileField string
	maxBytes  int64
	log       *slog.Logger
}

// NewResourceHandler wires a repository to HTTP. fileField names the
// multipart field carrying the kind's attachment.
func NewResourceHandler[T any](
	repo *inventory.Repository[T],
	uploads *attachments.Uploader,
	fileField string,
	maxBytes int64,
	log *slog.Logger,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		repo:      repo,
		uploads:   uploads,
		fileField: fileField,
		maxBytes:  maxBytes,
		log:       log,
	}
}

// --------- Handlers ---------

func (h *ResourceHandler[T]) List(c *gin.Context) {
	kind := h.repo.Kind()

	filters := make(map[string]string, len(kind.Filters))
	for _, field := range kind.Filters {
		filters[field] = strings.TrimSpace(c.Query(field))
	}

	recs, err := h.repo.List(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err, "fetching")
		return
	}

	if kind.Stocked() {
		if level, ok := stock.ParseLevel(strings.TrimSpace(c.Query("stockLevel"))); ok {
			recs = h.repo.FilterLevel(recs, level)
		}
	}

	httpresp.OK(c, recs)
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	rec, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching")
		return
	}
	httpresp.OK(c, rec)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	fields, attachment, ok := h.input(c)
	if !ok {
		return
	}

	rec, err := h.repo.Create(c.Request.Context(), fields, attachment)
	if err != nil {
		h.fail(c, err, "creating")
		return
	}
	httpresp.Created(c, rec)
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
	fields, attachment, ok := h.input(c)
	if !ok {
		return
	}

	rec, err := h.repo.Update(c.Request.Context(), c.Param("id"), fields, attachment)
	if err != nil {
		h.fail(c, err, "updating")
		return
	}
	httpresp.OK(c, rec)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "deleting")
		return
	}
	httpresp.Message(c, http.StatusOK, fmt.Sprintf("%s deleted successfully", h.repo.Kind().Name))
}

func (h *ResourceHandler[T]) SetStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_status", "Invalid status")
		return
	}

	if _, err := h.repo.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.fail(c, err, "updating status of")
		return
	}
	httpresp.Message(c, http.StatusOK, fmt.Sprintf("%s status updated to %s", h.repo.Kind().Name, req.Status))
}

func (h *ResourceHandler[T]) Categories(c *gin.Context) {
	cats, err := h.repo.Categories(c.Request.Context())
	if err != nil {
		h.fail(c, err, "fetching categories of")
		return
	}
	httpresp.OK(c, cats)
}

// DistinctValues lists the stored values of field, without a fallback.
func (h *ResourceHandler[T]) DistinctValues(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := h.repo.Distinct(c.Request.Context(), field)
		if err != nil {
			h.fail(c, err, "fetching "+field+" of")
			return
		}
		httpresp.OK(c, values)
	}
}

// --------- Helpers ---------

// input reads the request body and stores any uploaded attachment. It
// writes the error response itself and reports ok=false on failure.
func (h *ResourceHandler[T]) input(c *gin.Context) (inventory.Fields, *string, bool) {
	fields, file, err := readFields(c, h.fileField, h.maxBytes)
	if err != nil {
		httperr.FromError(c, h.log, err, "invalid_request", "Invalid request")
		return nil, nil, false
	}
	if file == nil || h.uploads == nil {
		return fields, nil, true
	}

	path, err := h.uploads.Save(c.Request.Context(), h.repo.Kind().Collection, file)
	if err != nil {
		switch {
		case errors.Is(err, attachments.ErrUnsupportedType):
			httperr.BadRequest(c, "file_type_not_allowed", "File type not allowed")
		case errors.Is(err, attachments.ErrTooLarge):
			httperr.BadRequest(c, "file_too_large", "File too large")
		default:
			httperr.FromError(c, h.log, err, "upload_failed", "Error uploading file")
		}
		return nil, nil, false
	}
	return fields, &path, true
}

// fail maps repository errors: validation to 400, unknown ids to 404 and
// everything else to a logged 500 such as "error_creating_utensil".
func (h *ResourceHandler[T]) fail(c *gin.Context, err error, verb string) {
	kind := strings.ToLower(h.repo.Kind().Name)
	message := fmt.Sprintf("Error %s %s", verb, kind)
	code := strings.ReplaceAll(strings.ToLower(message), " ", "_")
	httperr.FromError(c, h.log, err, code, message)
}
