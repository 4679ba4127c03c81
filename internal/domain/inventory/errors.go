package inventory

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBackend wraps any failure reported by the store.
var ErrBackend = errors.New("storage backend error")

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) HTTPStatus() int   { return http.StatusBadRequest }
func (e ValidationError) ErrorCode() string { return e.Code }

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e NotFoundError) HTTPStatus() int { return http.StatusNotFound }

func (e NotFoundError) ErrorCode() string {
	return snake(e.Kind) + "_not_found"
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func backendErr(op, kind string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, kind, ErrBackend, err)
}
