package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/dto"
	"github.com/BruksfildServices01/matcha-inventory/internal/httpresp"
	"github.com/BruksfildServices01/matcha-inventory/internal/middleware"
	"github.com/BruksfildServices01/matcha-inventory/internal/usecase/dashboard"
)

type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get always answers 200. A failed aggregation yields the zeroed summary
// under the degraded message.
func (h *DashboardHandler) Get(c *gin.Context) {
	sum, ok := h.svc.Summary(c.Request.Context())

	message := dashboard.DegradedMessage
	if ok {
		message = fmt.Sprintf("Welcome %s!", c.GetString(middleware.ContextUsername))
	}

	httpresp.OK(c, dto.DashboardResponse{Message: message, InventoryData: sum})
}
