package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
	"github.com/BruksfildServices01/matcha-inventory/internal/infra/repository"
	"github.com/BruksfildServices01/matcha-inventory/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
	auditDateLayout   = "2006-01-02"
)

// AuditLogLister is satisfied by repository.AuditLogGormRepository.
type AuditLogLister interface {
	List(ctx context.Context, f repository.AuditFilter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs AuditLogLister
	log  *slog.Logger
}

func NewAuditLogsHandler(logs AuditLogLister, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

type auditQuery struct {
	Actor  string
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (q auditQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

func (q auditQuery) filter() repository.AuditFilter {
	return repository.AuditFilter{
		Actor:  q.Actor,
		Action: q.Action,
		Entity: q.Entity,
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
		Offset: q.offset(),
	}
}

// parseAuditQuery reads paging and filters. Bad dates are ignored and paging
// falls back to its defaults.
func parseAuditQuery(c *gin.Context) auditQuery {
	q := auditQuery{
		Actor:  c.Query("actor"),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if q.Page <= 0 {
		q.Page = 1
	}
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(auditDefaultLimit)))
	if q.Limit <= 0 || q.Limit > auditMaxLimit {
		q.Limit = auditDefaultLimit
	}

	if from, err := time.Parse(auditDateLayout, c.Query("from")); err == nil {
		q.From = &from
	}
	// "to" names a whole day.
	if to, err := time.Parse(auditDateLayout, c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		q.To = &end
	}
	return q
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	params := parseAuditQuery(c)

	logs, total, err := h.logs.List(c.Request.Context(), params.filter())
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "audit list failed", "error", err)
		httperr.Internal(c, "audit_list_failed", "Error listing audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  params.Page,
		"limit": params.Limit,
		"total": total,
		"logs":  logs,
	})
}
