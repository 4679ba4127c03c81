package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/matcha-inventory/internal/attachments"
	"github.com/BruksfildServices01/matcha-inventory/internal/auth"
	"github.com/BruksfildServices01/matcha-inventory/internal/config"
	"github.com/BruksfildServices01/matcha-inventory/internal/domain/inventory"
	"github.com/BruksfildServices01/matcha-inventory/internal/handlers"
	"github.com/BruksfildServices01/matcha-inventory/internal/middleware"
	"github.com/BruksfildServices01/matcha-inventory/internal/observability/metrics"
	"github.com/BruksfildServices01/matcha-inventory/internal/store"
	"github.com/BruksfildServices01/matcha-inventory/internal/usecase/dashboard"
)

// Deps are the singletons built in main.
type Deps struct {
	Config    *config.Config
	Log       *slog.Logger
	Backend   store.Backend
	Repos     *inventory.Repositories
	Users     *auth.Service
	Dashboard *dashboard.Service
	Uploads   *attachments.Uploader

	// LocalUploads is set when attachments live on disk and must be served.
	LocalUploads *attachments.Local

	// AuditLogs is nil when no audit database is configured.
	AuditLogs handlers.AuditLogLister
}

// resource routes the CRUD surface shared by every kind.
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetStatus(c *gin.Context)
	Categories(c *gin.Context)
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))
	r.Use(metrics.HTTPMetricsMiddleware())

	// ======================================================
	// HANDLERS
	// ======================================================
	maxBytes := d.Config.MaxUploadBytes

	systemHandler := handlers.NewSystemHandler(d.Backend, d.Users, d.Log)
	authHandler := handlers.NewAuthHandler(d.Users, d.Log)
	meHandler := handlers.NewMeHandler()
	dashboardHandler := handlers.NewDashboardHandler(d.Dashboard)

	employees := handlers.NewResourceHandler(d.Repos.Employees, d.Uploads, "photo", maxBytes, d.Log)
	suppliers := handlers.NewResourceHandler(d.Repos.Suppliers, d.Uploads, "document", maxBytes, d.Log)
	utensils := handlers.NewResourceHandler(d.Repos.Utensils, d.Uploads, "image", maxBytes, d.Log)
	ingredients := handlers.NewResourceHandler(d.Repos.Ingredients, d.Uploads, "image", maxBytes, d.Log)
	flavors := handlers.NewResourceHandler(d.Repos.Flavors, d.Uploads, "image", maxBytes, d.Log)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", systemHandler.Home)
	r.GET("/health", systemHandler.Health)
	r.GET("/test-db", systemHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if d.LocalUploads != nil {
		r.Static("/uploads", d.LocalUploads.Dir())
	}

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ======================================================
	// PRIVATE
	// ======================================================
	authRequired := middleware.AuthMiddleware(d.Users, d.Log)

	r.GET("/dashboard", authRequired, dashboardHandler.Get)

	api := r.Group("/api")
	api.Use(authRequired)
	{
		api.GET("/me", meHandler.GetMe)

		if d.AuditLogs != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Log)
			api.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// EMPLOYEES
		// ------------------------------
		emp := api.Group("/employees")
		emp.GET("", employees.List)
		emp.POST("", employees.Create)
		emp.GET("/positions", employees.Categories)
		emp.GET("/:id", employees.Get)
		emp.PUT("/:id", employees.Update)
		emp.DELETE("/:id", employees.Delete)

		// ------------------------------
		// SUPPLIERS
		// ------------------------------
		sup := api.Group("/suppliers")
		sup.GET("/contracts", suppliers.DistinctValues("contract"))
		registerResource(sup, suppliers)

		// ------------------------------
		// STOCK
		// ------------------------------
		registerResource(api.Group("/utensils"), utensils)
		registerResource(api.Group("/ingredients"), ingredients)
		registerResource(api.Group("/flavors"), flavors)
	}
}

func registerResource(g *gin.RouterGroup, h resource) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/categories", h.Categories)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/status", h.SetStatus)
}
