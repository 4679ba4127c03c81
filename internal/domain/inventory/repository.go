package inventory

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const (
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
	fieldStatus    = "status"

	// FilterAll disables a list filter.
	FilterAll = "ALL"
)

// Repository is the CRUD surface of one resource kind.
type Repository[T any] struct {
	kind      Kind[T]
	store     *store.Store[T]
	observers []Observer
	now       func() time.Time
}

func NewRepository[T any](b store.Backend, kind Kind[T], observers ...Observer) *Repository[T] {
	return &Repository[T]{
		kind:      kind,
		store:     store.Open[T](b, kind.Collection),
		observers: observers,
		now:       time.Now,
	}
}

func (r *Repository[T]) Kind() Kind[T] {
	return r.kind
}

// Observe registers an observer after construction.
func (r *Repository[T]) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

// ------------------------------------------------------------
// Reads
// ------------------------------------------------------------

// List returns the records matching every non-empty filter. Unknown filter
// fields and the value "ALL" are ignored.
func (r *Repository[T]) List(ctx context.Context, filters map[string]string) ([]T, error) {
	q := store.Filter{}
	for field, value := range filters {
		if value == "" || value == FilterAll || !r.kind.Filterable(field) {
			continue
		}
		q[field] = value
	}

	recs, err := r.store.Find(ctx, q, store.FindOptions{})
	if err != nil {
		return nil, backendErr("list", r.kind.Name, err)
	}
	return recs, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	rec, err := r.store.FindByID(ctx, id)
	if err != nil {
		return rec, r.lookupErr("get", id, err)
	}
	return rec, nil
}

// Recent returns the n most recently created records, newest first.
func (r *Repository[T]) Recent(ctx context.Context, n int) ([]T, error) {
	recs, err := r.store.Find(ctx, store.Filter{}, store.FindOptions{SortDesc: fieldCreatedAt, Limit: n})
	if err != nil {
		return nil, backendErr("recent", r.kind.Name, err)
	}
	return recs, nil
}

// Categories lists the distinct values of the kind's category field, or the
// fallback catalog when nothing is stored yet.
func (r *Repository[T]) Categories(ctx context.Context) ([]string, error) {
	values, err := r.Distinct(ctx, r.kind.CategoryField)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return append([]string(nil), r.kind.FallbackCategories...), nil
	}
	return values, nil
}

func (r *Repository[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	values, err := r.store.Distinct(ctx, field)
	if err != nil {
		return nil, backendErr("distinct", r.kind.Name, err)
	}
	return values, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	n, err := r.store.Count(ctx)
	if err != nil {
		return 0, backendErr("count", r.kind.Name, err)
	}
	return n, nil
}

func (r *Repository[T]) CountBy(ctx context.Context, field string) ([]store.FieldCount, error) {
	counts, err := r.store.CountByField(ctx, field)
	if err != nil {
		return nil, backendErr("count", r.kind.Name, err)
	}
	return counts, nil
}

// Level classifies rec. ok is false for kinds that carry no stock.
func (r *Repository[T]) Level(rec T) (stock.Level, bool) {
	if r.kind.Reading == nil {
		return "", false
	}
	return stock.Classify(r.kind.Reading(rec)), true
}

// FilterLevel keeps the records classified at level.
func (r *Repository[T]) FilterLevel(recs []T, level stock.Level) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if l, ok := r.Level(rec); ok && l == level {
			out = append(out, rec)
		}
	}
	return out
}

// ------------------------------------------------------------
// Writes
// ------------------------------------------------------------

// Create validates the required fields, applies defaults and stores a new
// record. A non-nil attachment takes precedence over one named in fields.
func (r *Repository[T]) Create(ctx context.Context, fields Fields, attachment *string) (T, error) {
	var zero T
	if missing := fields.Missing(r.kind.Required); len(missing) > 0 {
		return zero, ValidationError{Code: "missing_required_fields", Message: r.kind.RequiredMessage}
	}

	doc, err := store.Encode(r.kind.Build(fields))
	if err != nil {
		return zero, backendErr("encode", r.kind.Name, err)
	}
	now := r.stamp()
	doc[fieldCreatedAt] = now
	doc[fieldUpdatedAt] = now
	if r.kind.AttachmentField != "" {
		doc[r.kind.AttachmentField] = pick(attachment, fields.Optional(r.kind.AttachmentField), nil)
	}

	id, err := r.store.InsertDocument(ctx, doc)
	if err != nil {
		return zero, backendErr("create", r.kind.Name, err)
	}
	doc[store.IDField] = id

	var rec T
	if err := store.Decode(doc, &rec); err != nil {
		return zero, backendErr("decode", r.kind.Name, err)
	}
	r.notify(ctx, Event{Kind: r.kind.Name, Action: ActionCreated, ID: id})
	return rec, nil
}

// Update replaces the editable fields of an existing record. createdAt is
// kept, updatedAt always moves forward, and the stored attachment and status
// survive when the input carries none.
func (r *Repository[T]) Update(ctx context.Context, id string, fields Fields, attachment *string) (T, error) {
	var zero T
	existing, err := r.store.FindDocument(ctx, id)
	if err != nil {
		return zero, r.lookupErr("update", id, err)
	}

	set, err := store.Encode(r.kind.Build(fields))
	if err != nil {
		return zero, backendErr("encode", r.kind.Name, err)
	}
	delete(set, store.IDField)
	if created, ok := existing[fieldCreatedAt]; ok && created != nil {
		set[fieldCreatedAt] = created
	} else {
		delete(set, fieldCreatedAt)
	}
	set[fieldUpdatedAt] = r.advance(existing[fieldUpdatedAt])

	if r.kind.AttachmentField != "" {
		set[r.kind.AttachmentField] = pick(attachment, fields.Optional(r.kind.AttachmentField), existing[r.kind.AttachmentField])
	}
	if r.kind.HasStatus() && !fields.Has(fieldStatus) {
		if prev, ok := existing[fieldStatus]; ok {
			set[fieldStatus] = prev
		}
	}

	matched, err := r.store.UpdateOne(ctx, id, set)
	if err != nil {
		return zero, backendErr("update", r.kind.Name, err)
	}
	if matched == 0 {
		return zero, NotFoundError{Kind: r.kind.Name, ID: id}
	}

	rec, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	r.notify(ctx, Event{Kind: r.kind.Name, Action: ActionUpdated, ID: id})
	return rec, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	deleted, err := r.store.DeleteOne(ctx, id)
	if err != nil {
		return backendErr("delete", r.kind.Name, err)
	}
	if deleted == 0 {
		return NotFoundError{Kind: r.kind.Name, ID: id}
	}
	r.notify(ctx, Event{Kind: r.kind.Name, Action: ActionDeleted, ID: id})
	return nil
}

// SetStatus moves a record to another status of the kind's closed set. Only
// status and updatedAt change.
func (r *Repository[T]) SetStatus(ctx context.Context, id, status string) (T, error) {
	var zero T
	if !r.kind.ValidStatus(status) {
		return zero, ValidationError{Code: "invalid_status", Message: "Invalid status"}
	}

	existing, err := r.store.FindDocument(ctx, id)
	if err != nil {
		return zero, r.lookupErr("status", id, err)
	}

	matched, err := r.store.UpdateOne(ctx, id, store.Document{
		fieldStatus:    status,
		fieldUpdatedAt: r.advance(existing[fieldUpdatedAt]),
	})
	if err != nil {
		return zero, backendErr("status", r.kind.Name, err)
	}
	if matched == 0 {
		return zero, NotFoundError{Kind: r.kind.Name, ID: id}
	}

	rec, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	r.notify(ctx, Event{Kind: r.kind.Name, Action: ActionStatusChanged, ID: id, Status: status})
	return rec, nil
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

func (r *Repository[T]) lookupErr(op, id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return NotFoundError{Kind: r.kind.Name, ID: id}
	}
	return backendErr(op, r.kind.Name, err)
}

func (r *Repository[T]) notify(ctx context.Context, ev Event) {
	ev.Actor = ActorFrom(ctx)
	for _, o := range r.observers {
		o.Observe(ctx, ev)
	}
}

// stamp is the current time at the millisecond precision the store keeps.
func (r *Repository[T]) stamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// advance returns a timestamp strictly after prev.
func (r *Repository[T]) advance(prev any) time.Time {
	now := r.stamp()
	var last time.Time
	switch t := prev.(type) {
	case primitive.DateTime:
		last = t.Time()
	case time.Time:
		last = t
	default:
		return now
	}
	if !now.After(last) {
		return last.UTC().Add(time.Millisecond)
	}
	return now
}

func pick(upload, named *string, existing any) any {
	if upload != nil && *upload != "" {
		return *upload
	}
	if named != nil {
		return *named
	}
	return existing
}
