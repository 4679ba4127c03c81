package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/matcha-inventory/internal/cache"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/stock"
	"github.com/BruksfildServices01/matcha-inventory/internal/observability/metrics"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
)

const cacheKey = "dashboard:summary"

// Cache is the subset of the Redis client the dashboard uses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	repos *inventory.Repositories
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService builds the aggregator. cache may be nil.
func NewService(repos *inventory.Repositories, c Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{repos: repos, cache: c, ttl: ttl, log: log}
}

// Summary never fails: on any error it logs and returns the zeroed summary
// with ok set to false.
func (s *Service) Summary(ctx context.Context) (Summary, bool) {
	if cached, hit := s.fromCache(ctx); hit {
		return cached, true
	}

	sum, err := s.Compute(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "dashboard aggregation failed", "error", err)
		metrics.IncDashboardDegraded()
		return Empty(), false
	}
	metrics.SetStockLevels(sum.TotalItems-sum.LowStock-sum.OutOfStock, sum.LowStock, sum.OutOfStock)

	s.toCache(ctx, sum)
	return sum, true
}

// Compute reads every inventory collection and builds the summary.
func (s *Service) Compute(ctx context.Context) (Summary, error) {
	sum := Empty()
	var tally stock.Tally

	utensils, err := s.repos.Utensils.List(ctx, nil)
	if err != nil {
		return Summary{}, err
	}
	for _, u := range utensils {
		level, _ := s.repos.Utensils.Level(u)
		tally.Add(level)
	}

	ingredients, err := s.repos.Ingredients.List(ctx, nil)
	if err != nil {
		return Summary{}, err
	}
	for _, i := range ingredients {
		level, _ := s.repos.Ingredients.Level(i)
		tally.Add(level)
	}

	flavors, err := s.repos.Flavors.List(ctx, nil)
	if err != nil {
		return Summary{}, err
	}
	for _, f := range flavors {
		level, _ := s.repos.Flavors.Level(f)
		tally.Add(level)
	}

	sum.TotalItems = tally.Total
	sum.LowStock = tally.Low
	sum.OutOfStock = tally.Out
	sum.StockStats = stockStats(tally)

	if sum.TotalEmployees, err = s.repos.Employees.Count(ctx); err != nil {
		return Summary{}, err
	}
	if sum.EmployeeStats, err = s.repos.Employees.CountBy(ctx, "position"); err != nil {
		return Summary{}, err
	}
	if sum.FlavorStats, err = s.repos.Flavors.CountBy(ctx, "category"); err != nil {
		return Summary{}, err
	}
	if sum.IngredientStats, err = s.repos.Ingredients.CountBy(ctx, "category"); err != nil {
		return Summary{}, err
	}
	if sum.UtensilStats, err = s.repos.Utensils.CountBy(ctx, "category"); err != nil {
		return Summary{}, err
	}
	sum.CategoryStats = make([]store.FieldCount, 0, len(sum.FlavorStats)+len(sum.IngredientStats)+len(sum.UtensilStats))
	sum.CategoryStats = append(sum.CategoryStats, sum.FlavorStats...)
	sum.CategoryStats = append(sum.CategoryStats, sum.IngredientStats...)
	sum.CategoryStats = append(sum.CategoryStats, sum.UtensilStats...)

	recentFlavors, err := s.repos.Flavors.Recent(ctx, recentPerKind)
	if err != nil {
		return Summary{}, err
	}
	for _, f := range recentFlavors {
		sum.RecentActivity = append(sum.RecentActivity, added("Flavor", f.Name, f.Quantity))
	}
	recentIngredients, err := s.repos.Ingredients.Recent(ctx, recentPerKind)
	if err != nil {
		return Summary{}, err
	}
	for _, i := range recentIngredients {
		sum.RecentActivity = append(sum.RecentActivity, added("Ingredient", i.Name, i.Quantity))
	}

	return sum, nil
}

// Observe drops the cached summary after any inventory mutation.
func (s *Service) Observe(ctx context.Context, _ inventory.Event) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.WithoutCancel(ctx), cacheKey); err != nil {
		s.log.WarnContext(ctx, "dashboard cache invalidation failed", "error", err)
	}
}

var _ inventory.Observer = (*Service)(nil)

func added(kind, name string, quantity float64) Activity {
	if name == "" {
		name = "Unknown"
	}
	return Activity{Action: "Added", Item: fmt.Sprintf("%s: %s", kind, name), Quantity: quantity}
}

// ------------------------------------------------------------
// cache
// ------------------------------------------------------------

func (s *Service) fromCache(ctx context.Context) (Summary, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return Summary{}, false
	}
	raw, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.WarnContext(ctx, "dashboard cache read failed", "error", err)
		}
		return Summary{}, false
	}
	var sum Summary
	if err := json.Unmarshal(raw, &sum); err != nil {
		s.log.WarnContext(ctx, "dashboard cache entry unreadable", "error", err)
		return Summary{}, false
	}
	return sum, true
}

func (s *Service) toCache(ctx context.Context, sum Summary) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(sum)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
		s.log.WarnContext(ctx, "dashboard cache write failed", "error", err)
	}
}
