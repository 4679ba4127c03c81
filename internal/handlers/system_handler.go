package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/dto"
	"github.com/BruksfildServices01/matcha-inventory/internal/httpresp"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const banner = "Inventory Management System API"

type SystemHandler struct {
	backend store.Backend
	users   *auth.Service
	log     *slog.Logger
}

func NewSystemHandler(backend store.Backend, users *auth.Service, log *slog.Logger) *SystemHandler {
	return &SystemHandler{backend: backend, users: users, log: log}
}

func (h *SystemHandler) Home(c *gin.Context) {
	httpresp.Message(c, http.StatusOK, banner)
}

// Health reports which backend is serving and how many users it holds.
func (h *SystemHandler) Health(c *gin.Context) {
	mode := h.backend.Mode()

	count, err := h.users.Count(c.Request.Context())
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "health check failed", "storage", mode, "error", err)
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{
			Message: "Database connection failed!",
			Storage: mode,
		})
		return
	}

	message := "Database connection successful!"
	if mode == store.ModeFallback {
		message = "Using in-memory storage (MongoDB not available)"
	}
	httpresp.OK(c, dto.HealthResponse{Message: message, Storage: mode, UsersCount: count})
}
