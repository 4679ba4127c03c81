// Package store defines the document-store contract shared by the MongoDB
// backend and the in-process fallback backend.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

// ErrBackendUnavailable marks a failed connectivity probe at startup.
var ErrBackendUnavailable = errors.New("persistent backend unavailable")

const (
	ModePersistent = "mongodb"
	ModeFallback   = "memory"
)

// IDField is the document key holding the record identity. Backends always
// expose it as a string.
const IDField = "_id"

// Filter is a conjunction of field equality matches.
type Filter = bson.M

// Document is the backend-neutral representation of a record.
type Document = bson.M

// FindOptions narrows a Find. Zero value returns every match in storage order.
type FindOptions struct {
	SortDesc string
	Limit    int
}

// FieldCount is one bucket of a group-by-field count.
type FieldCount struct {
	Value string `json:"_id"`
	Count int64  `json:"count"`
}

// Collection is one named collection of documents.
type Collection interface {
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]Document, error)
	FindOne(ctx context.Context, filter Filter) (Document, error)
	InsertOne(ctx context.Context, doc Document) (string, error)
	UpdateByID(ctx context.Context, id string, set Document) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	Distinct(ctx context.Context, field string) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountByField(ctx context.Context, field string) ([]FieldCount, error)
}

// Backend hands out collections. One backend is selected at startup and
// shared for the lifetime of the process.
type Backend interface {
	Collection(name string) Collection
	Mode() string
	Close(ctx context.Context) error
}
