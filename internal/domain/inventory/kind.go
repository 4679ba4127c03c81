package inventory

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
)

// Kind describes one resource collection: where it lives, what a create
// needs, and how loose input becomes a record.
type Kind[T any] struct {
	Name       string
	Collection string

	Required        []string
	RequiredMessage string

	// Filters lists the fields List accepts as equality filters.
	Filters []string

	CategoryField      string
	FallbackCategories []string

	// Statuses is the closed set accepted by SetStatus. Empty means the
	// kind has no status transition.
	Statuses []string

	AttachmentField string

	Build func(f Fields) T

	// Reading is nil for kinds that carry no stock.
	Reading func(rec T) stock.Reading
}

func (k Kind[T]) HasStatus() bool {
	return len(k.Statuses) > 0
}

func (k Kind[T]) ValidStatus(s string) bool {
	return slices.Contains(k.Statuses, s)
}

func (k Kind[T]) Stocked() bool {
	return k.Reading != nil
}

func (k Kind[T]) Filterable(field string) bool {
	return slices.Contains(k.Filters, field)
}

func snake(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
