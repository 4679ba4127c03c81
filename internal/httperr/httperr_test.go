package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teapot struct{}

func (teapot) Error() string     { return "short and stout" }
func (teapot) HTTPStatus() int   { return http.StatusTeapot }
func (teapot) ErrorCode() string { return "teapot" }

func render(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, slog.New(slog.NewTextHandler(io.Discard, nil)), err, "error_doing_thing", "Error doing thing")

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestFromErrorCoded(t *testing.T) {
	status, body := render(t, fmt.Errorf("wrapped: %w", teapot{}))
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, HTTPError{Code: "teapot", Message: "short and stout"}, body)
}

func TestFromErrorBusiness(t *testing.T) {
	status, body := render(t, ErrBusinessMsg("file_too_large", "File too large"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "file_too_large", body.Code)
	assert.Equal(t, "File too large", body.Message)
	assert.True(t, IsBusiness(ErrBusiness("x"), "x"))
}

func TestFromErrorUnknown(t *testing.T) {
	status, body := render(t, errors.New("socket closed"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, HTTPError{Code: "error_doing_thing", Message: "Error doing thing"}, body)
}
