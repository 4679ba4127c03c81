package db

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

func unreachable() *config.Config {
	return &config.Config{
		MongoURI:            "mongodb://127.0.0.1:1/inventory",
		MongoConnectTimeout: 200 * time.Millisecond,
		MongoSocketTimeout:  200 * time.Millisecond,
	}
}

func TestOpenInventoryFallsBackWhenMongoIsDown(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := OpenInventory(context.Background(), unreachable(), log)
	assert.Equal(t, store.ModeFallback, backend.Mode())
}

func TestFallbackServesSequentialCreates(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := inventory.NewRepositories(OpenInventory(ctx, unreachable(), log))

	a, err := repos.Employees.Create(ctx, inventory.Fields{
		"name": "Ana", "email": "ana@shop.test", "position": "BARISTA", "shift": "MORNING",
	}, nil)
	require.NoError(t, err)
	b, err := repos.Employees.Create(ctx, inventory.Fields{
		"name": "Bo", "email": "bo@shop.test", "position": "BAKER", "shift": "NIGHT",
	}, nil)
	require.NoError(t, err)

	list, err := repos.Employees.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEqual(t, a.ID, b.ID)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, []string{list[0].ID, list[1].ID})
}

func TestOpenAuditDisabled(t *testing.T) {
	gdb, err := OpenAudit(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, gdb)
}
