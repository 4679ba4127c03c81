package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/matcha-inventory/internal/attachments"
	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/store/memstore"
	"github.com/BruksfildServices01/matcha-inventory/internal/usecase/dashboard"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		CORSAllowedOrigins: []string{"*"},
		MaxUploadBytes:     1 << 20,
	}

	backend := memstore.New()
	repos := inventory.NewRepositories(backend)
	dash := dashboard.NewService(repos, nil, 0, log)
	repos.Observe(dash)
	users := auth.NewService(backend, auth.NewTokenManager("test-secret", "test", time.Hour))
	local := attachments.NewLocal(t.TempDir(), "/uploads")

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:       cfg,
		Log:          log,
		Backend:      backend,
		Repos:        repos,
		Users:        users,
		Dashboard:    dash,
		Uploads:      attachments.NewUploader(local, attachments.Options{MaxBytes: cfg.MaxUploadBytes}, log),
		LocalUploads: local,
	})
	return r
}

func do(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(r, http.MethodPost, "/register", "", gin.H{"username": "ana", "password": "pw", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/login", "", gin.H{"username": "ana", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestPublicRoutes(t *testing.T) {
	r := newServer(t)

	w := do(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Inventory Management System API"}`, w.Body.String())

	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var health map[string]any
	decode(t, w, &health)
	assert.Equal(t, "memory", health["storage"])
	assert.EqualValues(t, 0, health["users_count"])

	w = do(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	r := newServer(t)
	login(t, r)

	w := do(r, http.MethodPost, "/register", "", gin.H{"username": "ana", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists!")

	w = do(r, http.MethodPost, "/login", "", gin.H{"username": "bob", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found!")

	w = do(r, http.MethodPost, "/login", "", gin.H{"username": "ana", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password!")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newServer(t)

	for _, path := range []string{"/dashboard", "/api/me", "/api/utensils", "/api/employees/positions"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(r, http.MethodGet, "/api/utensils", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is invalid!")
}

func TestMe(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"ana","email":"ana@example.com"}`, w.Body.String())
}

func TestAuditLogsRouteAbsentWithoutDatabase(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodGet, "/api/audit-logs", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUtensilLifecycle(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodPost, "/api/utensils", token, gin.H{
		"name": "Whisk", "category": "MIXING_TOOLS", "quantity": 5, "minStockLevel": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decode(t, w, &created)
	id, _ := created["_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Whisk", created["name"])

	w = do(r, http.MethodGet, "/api/utensils/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/api/utensils/"+id, token, gin.H{
		"name": "Whisk", "category": "MIXING_TOOLS", "quantity": 2, "minStockLevel": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	decode(t, w, &updated)
	assert.EqualValues(t, 2, updated["quantity"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])

	w = do(r, http.MethodGet, "/api/utensils?stockLevel=LOW_STOCK", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var low []map[string]any
	decode(t, w, &low)
	assert.Len(t, low, 1)

	w = do(r, http.MethodGet, "/api/utensils?stockLevel=IN_STOCK", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var in []map[string]any
	decode(t, w, &in)
	assert.Empty(t, in)

	w = do(r, http.MethodPatch, "/api/utensils/"+id+"/status", token, gin.H{"status": "BROKEN"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Utensil status updated to BROKEN"}`, w.Body.String())

	w = do(r, http.MethodPatch, "/api/utensils/"+id+"/status", token, gin.H{"status": "MELTED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/utensils/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Utensil deleted successfully"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/utensils/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "utensil_not_found")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodPost, "/api/ingredients", token, gin.H{"name": "Flour"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and category are required fields")

	w = do(r, http.MethodGet, "/api/ingredients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCategoriesFallBackToCatalog(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodGet, "/api/employees/positions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var positions []string
	decode(t, w, &positions)
	assert.Equal(t, inventory.EmployeePositions, positions)

	w = do(r, http.MethodGet, "/api/suppliers/contracts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDashboard(t *testing.T) {
	r := newServer(t)
	token := login(t, r)

	w := do(r, http.MethodPost, "/api/flavors", token, gin.H{"name": "Classic", "category": "CLASSIC_FLAVORS", "quantity": 0})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message       string `json:"message"`
		InventoryData struct {
			TotalItems int `json:"total_items"`
			OutOfStock int `json:"out_of_stock"`
		} `json:"inventory_data"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Welcome ana!", resp.Message)
	assert.Equal(t, 1, resp.InventoryData.TotalItems)
	assert.Equal(t, 1, resp.InventoryData.OutOfStock)
}
