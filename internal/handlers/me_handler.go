package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/dto"
	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
	"github.com/BruksfildServices01/matcha-inventory/internal/httpresp"
	"github.com/BruksfildServices01/matcha-inventory/internal/middleware"
	"github.com/BruksfildServices01/matcha-inventory/internal/models"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	val, exists := c.Get(middleware.ContextUser)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "User not found!")
		return
	}

	user, ok := val.(models.User)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_type", "User not found!")
		return
	}

	httpresp.OK(c, dto.UserDTO{Username: user.Username, Email: user.Email})
}
