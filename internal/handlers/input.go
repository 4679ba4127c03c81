package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/httperr"
)

// readFields normalises a JSON body or a multipart form into Fields. For
// forms, the file posted under fileField is returned alongside.
func readFields(c *gin.Context, fileField string, maxBytes int64) (inventory.Fields, *multipart.FileHeader, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if maxBytes > 0 {
			// Leave headroom for the non-file form values.
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)
		}
		form, err := c.MultipartForm()
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				return nil, nil, httperr.ErrBusinessMsg("file_too_large", "File too large")
			}
			return nil, nil, httperr.ErrBusinessMsg("invalid_request", "Invalid form data")
		}

		fields := inventory.Fields{}
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		var file *multipart.FileHeader
		if files := form.File[fileField]; len(files) > 0 && files[0].Filename != "" {
			file = files[0]
		}
		return fields, file, nil
	}

	fields := inventory.Fields{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, nil, httperr.ErrBusinessMsg("invalid_request", "Invalid JSON payload")
	}
	return fields, nil, nil
}
