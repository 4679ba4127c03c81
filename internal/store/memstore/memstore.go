// Package memstore is the process-local fallback backend. Documents live in
// ordered slices and are lost when the process exits.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

type Backend struct {
	mu          sync.Mutex
	collections map[string][]store.Document
}

var _ store.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{collections: make(map[string][]store.Document)}
}

func (b *Backend) Collection(name string) store.Collection {
	return &collection{backend: b, name: name}
}

func (b *Backend) Mode() string {
	return store.ModeFallback
}

func (b *Backend) Close(context.Context) error {
	return nil
}

type collection struct {
	backend *Backend
	name    string
}

var _ store.Collection = (*collection)(nil)

// docs must be called with the backend lock held.
func (c *collection) docs() []store.Document {
	return c.backend.collections[c.name]
}

func (c *collection) Find(_ context.Context, filter store.Filter, opts store.FindOptions) ([]store.Document, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	var out []store.Document
	for _, doc := range c.docs() {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}

	if opts.SortDesc != "" {
		// Reverse first so ties keep newest-inserted first.
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		sort.SliceStable(out, func(i, j int) bool {
			return compare(out[i][opts.SortDesc], out[j][opts.SortDesc]) > 0
		})
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	if out == nil {
		out = []store.Document{}
	}
	return out, nil
}

func (c *collection) FindOne(_ context.Context, filter store.Filter) (store.Document, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	for _, doc := range c.docs() {
		if matches(doc, filter) {
			return clone(doc), nil
		}
	}
	return nil, store.ErrNotFound
}

func (c *collection) InsertOne(_ context.Context, doc store.Document) (string, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	id := uuid.NewString()
	stored := clone(doc)
	stored[store.IDField] = id
	c.backend.collections[c.name] = append(c.docs(), stored)
	return id, nil
}

func (c *collection) UpdateByID(_ context.Context, id string, set store.Document) (int64, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	for _, doc := range c.docs() {
		if doc[store.IDField] != id {
			continue
		}
		for k, v := range set {
			if k == store.IDField {
				continue
			}
			doc[k] = v
		}
		return 1, nil
	}
	return 0, nil
}

func (c *collection) DeleteByID(_ context.Context, id string) (int64, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	docs := c.docs()
	for i, doc := range docs {
		if doc[store.IDField] == id {
			c.backend.collections[c.name] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *collection) Distinct(_ context.Context, field string) ([]string, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, doc := range c.docs() {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

func (c *collection) Count(context.Context) (int64, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()
	return int64(len(c.docs())), nil
}

func (c *collection) CountByField(_ context.Context, field string) ([]store.FieldCount, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	counts := make(map[string]int64)
	for _, doc := range c.docs() {
		key := ""
		if v, ok := doc[field]; ok && v != nil {
			key = stringify(v)
		}
		counts[key]++
	}

	out := make([]store.FieldCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, store.FieldCount{Value: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out, nil
}

// ------------------------------------------------------------
// helpers
// ------------------------------------------------------------

func matches(doc store.Document, filter store.Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if compare(got, want) != 0 {
			return false
		}
	}
	return true
}

func clone(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func instant(v any) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	}
	return time.Time{}, false
}

// compare orders two stored values. Missing values sort below everything.
func compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if ta, ok := instant(a); ok {
		if tb, ok := instant(b); ok {
			return ta.Compare(tb)
		}
	}
	if na, ok := number(a); ok {
		if nb, ok := number(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	sa, sb := stringify(a), stringify(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}
