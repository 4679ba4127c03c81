package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Coded is implemented by domain errors that know their HTTP mapping.
type Coded interface {
	error
	HTTPStatus() int
	ErrorCode() string
}

// FromError writes the response for err. Errors without a known mapping are
// logged and reported as a generic 500 with fallbackCode.
func FromError(c *gin.Context, log *slog.Logger, err error, fallbackCode, fallbackMessage string) {
	var coded Coded
	if errors.As(err, &coded) {
		Write(c, coded.HTTPStatus(), coded.ErrorCode(), coded.Error())
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, be.Error())
		return
	}

	log.ErrorContext(c.Request.Context(), fallbackMessage,
		"error", err,
		"path", c.FullPath(),
	)
	Internal(c, fallbackCode, fallbackMessage)
}
