package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/dto"
	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
	"github.com/BruksfildServices01/matcha-inventory/internal/httpresp"
)

type AuthHandler struct {
	users *auth.Service
	log   *slog.Logger
}

func NewAuthHandler(users *auth.Service, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			httperr.BadRequest(c, "user_exists", "User already exists!")
		case errors.Is(err, auth.ErrMissingCredentials):
			httperr.BadRequest(c, "invalid_request", "Username and password are required")
		default:
			h.log.ErrorContext(c.Request.Context(), "registration failed", "username", req.Username, "error", err)
			httperr.Internal(c, "registration_failed", "Server error during registration")
		}
		return
	}

	h.log.InfoContext(c.Request.Context(), "user registered", "username", user.Username)
	httpresp.Message(c, http.StatusCreated, "User created successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required")
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			httperr.NotFound(c, "user_not_found", "User not found!")
		case errors.Is(err, auth.ErrInvalidPassword):
			httperr.Unauthorized(c, "invalid_password", "Invalid password!")
		default:
			h.log.ErrorContext(c.Request.Context(), "login failed", "username", req.Username, "error", err)
			httperr.Internal(c, "login_failed", "Server error during login")
		}
		return
	}

	httpresp.OK(c, dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User:    dto.UserDTO{Username: user.Username, Email: user.Email},
	})
}
