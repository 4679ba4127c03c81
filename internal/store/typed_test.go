package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/matcha-inventory/internal/store"
	"github.com/BruksfildServices01/matcha-inventory/internal/store/memstore"
)

type jar struct {
	ID    string  `bson:"_id,omitempty"`
	Name  string  `bson:"name"`
	Grams float64 `bson:"grams"`
}

func TestInsertDocumentDropsCallerID(t *testing.T) {
	ctx := context.Background()
	jars := store.Open[jar](memstore.New(), "jars")

	doc, err := store.Encode(jar{Name: "Ceremonial", Grams: 30})
	require.NoError(t, err)
	doc[store.IDField] = "caller-chosen"

	id, err := jars.InsertDocument(ctx, doc)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotEqual(t, "caller-chosen", id)
	assert.Equal(t, "caller-chosen", doc[store.IDField], "input document is not modified")

	got, err := jars.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Ceremonial", got.Name)
	assert.Equal(t, 30.0, got.Grams)

	_, err = jars.FindByID(ctx, "caller-chosen")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInsertMatchesInsertDocument(t *testing.T) {
	ctx := context.Background()
	jars := store.Open[jar](memstore.New(), "jars")

	a, err := jars.Insert(ctx, jar{ID: "ignored", Name: "Culinary"})
	require.NoError(t, err)
	b, err := jars.InsertDocument(ctx, store.Document{"name": "Culinary"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	n, err := jars.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
