package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is a typed view over a Collection. Records are converted through
// their bson tags, so the same struct serves both backends.
type Store[T any] struct {
	name string
	coll Collection
}

func Open[T any](b Backend, name string) *Store[T] {
	return &Store[T]{name: name, coll: b.Collection(name)}
}

func (s *Store[T]) Name() string {
	return s.name
}

func (s *Store[T]) Find(ctx context.Context, filter Filter, opts FindOptions) ([]T, error) {
	docs, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", s.name, err)
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := Decode(doc, &rec); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", s.name, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	var rec T
	doc, err := s.coll.FindOne(ctx, filter)
	if err != nil {
		return rec, err
	}
	if err := Decode(doc, &rec); err != nil {
		return rec, fmt.Errorf("%s: decode: %w", s.name, err)
	}
	return rec, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (T, error) {
	return s.FindOne(ctx, Filter{IDField: id})
}

// FindDocument returns the stored document for id without decoding it.
func (s *Store[T]) FindDocument(ctx context.Context, id string) (Document, error) {
	return s.coll.FindOne(ctx, Filter{IDField: id})
}

// Insert stores rec and returns the identity assigned by the backend. Any
// identity already present on rec is discarded.
func (s *Store[T]) Insert(ctx context.Context, rec T) (string, error) {
	doc, err := Encode(rec)
	if err != nil {
		return "", fmt.Errorf("%s: encode: %w", s.name, err)
	}
	delete(doc, IDField)
	id, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: insert: %w", s.name, err)
	}
	return id, nil
}

// InsertDocument stores an already encoded document and returns the identity
// assigned by the backend. Any _id in doc is discarded.
func (s *Store[T]) InsertDocument(ctx context.Context, doc Document) (string, error) {
	payload := make(Document, len(doc))
	for k, v := range doc {
		if k != IDField {
			payload[k] = v
		}
	}
	id, err := s.coll.InsertOne(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("%s: insert: %w", s.name, err)
	}
	return id, nil
}

// UpdateOne sets the given fields on the record with identity id and returns
// the number of matched records.
func (s *Store[T]) UpdateOne(ctx context.Context, id string, set Document) (int64, error) {
	delete(set, IDField)
	matched, err := s.coll.UpdateByID(ctx, id, set)
	if err != nil {
		return 0, fmt.Errorf("%s: update: %w", s.name, err)
	}
	return matched, nil
}

func (s *Store[T]) DeleteOne(ctx context.Context, id string) (int64, error) {
	deleted, err := s.coll.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", s.name, err)
	}
	return deleted, nil
}

func (s *Store[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	values, err := s.coll.Distinct(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("%s: distinct %s: %w", s.name, field, err)
	}
	sort.Strings(values)
	return values, nil
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w", s.name, err)
	}
	return n, nil
}

func (s *Store[T]) CountByField(ctx context.Context, field string) ([]FieldCount, error) {
	counts, err := s.coll.CountByField(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("%s: count by %s: %w", s.name, field, err)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Value < counts[j].Value })
	return counts, nil
}

// Encode converts a tagged record into a Document.
func Encode(v any) (Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode fills a tagged record from a Document.
func Decode(doc Document, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
