// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finance-app/backend/internal/integration/entrypoint/controller"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health   *controller.HealthController
	Auth     *controller.AuthController
	Category *controller.CategoryController
	BillItem *controller.BillItemController
	Bill     *controller.BillController
	Period   *controller.PeriodController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
	metrics          *middleware.Metrics
	gatherer         prometheus.Gatherer
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
		metrics:          metrics,
		gatherer:         gatherer,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	if r.gatherer != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}
}

func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.controllers.Auth.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.controllers.Auth.Login)
		auth.POST("/refresh", r.controllers.Auth.RefreshToken)
		auth.POST("/logout", r.controllers.Auth.Logout)
		auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.controllers.Auth.ForgotPassword)
		auth.POST("/reset-password", r.controllers.Auth.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	categories := protected.Group("/categories")
	{
		c := r.controllers.Category
		categories.POST("", c.Create)
		categories.GET("", c.List)
		categories.GET("/:id", c.Get)
		categories.PUT("/:id", c.Update)
		categories.POST("/:id", c.Update)
		categories.DELETE("/:id", c.Delete)
	}

	billItems := protected.Group("/billItems")
	{
		c := r.controllers.BillItem
		billItems.POST("", c.Create)
		billItems.POST("/suggestCategory", c.SuggestCategory)
		billItems.GET("", c.List)
		billItems.GET("/:id", c.Get)
		billItems.PUT("/:id", c.Update)
		billItems.POST("/:id", c.Update)
		billItems.DELETE("/:id", c.Delete)
	}

	bills := protected.Group("/bills")
	{
		c := r.controllers.Bill
		bills.POST("", c.Create)
		bills.GET("", c.List)
		bills.GET("/:id", c.Get)
		bills.PUT("/:id", c.Update)
		bills.POST("/:id", c.Update)
		bills.DELETE("/:id", c.Delete)
		bills.POST("/:id/items", c.AddItem)
		bills.DELETE("/:id/items/:itemId", c.RemoveItem)
	}

	periods := protected.Group("/periods")
	{
		c := r.controllers.Period
		periods.POST("", c.Create)
		periods.GET("", c.List)
		periods.GET("/:id", c.Get)
		periods.PUT("/:id", c.Update)
		periods.POST("/:id", c.Update)
		periods.DELETE("/:id", c.Delete)
		periods.POST("/:id/bills", c.AddBill)
		periods.DELETE("/:id/bills/:billId", c.RemoveBill)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
