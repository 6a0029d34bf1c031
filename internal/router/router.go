package router

import (
	"fmt"
	"strings"

	"github.com/gauravjat135/galaxy-medical-store/internal/cache"
	"github.com/gauravjat135/galaxy-medical-store/internal/config"
	adminhandlers "github.com/gauravjat135/galaxy-medical-store/internal/http/handlers/admin"
	publichandlers "github.com/gauravjat135/galaxy-medical-store/internal/http/handlers/public"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP routing tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "gm"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// public catalog
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
		}

		// buyer endpoints
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartLine)
			user.PUT("/cart/items/:id", publicHandler.SetCartQuantity)
			user.DELETE("/cart/items/:id", publicHandler.RemoveCartLine)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByUserID), publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}

		// back-office endpoints
		admin := apiV1.Group("/admin")
		admin.Use(AdminJWTAuthMiddleware(cfg.AdminJWT.SecretKey))
		{
			admin.GET("/products", adminHandler.AdminListProducts)
			admin.GET("/products/:id", adminHandler.AdminGetProduct)
			admin.POST("/products", adminHandler.AdminCreateProduct)
			admin.PUT("/products/:id", adminHandler.AdminUpdateProduct)
			admin.DELETE("/products/:id", adminHandler.AdminDeleteProduct)
			admin.PUT("/products/:id/stock", adminHandler.AdminSetStock)

			admin.GET("/orders", adminHandler.AdminListOrders)
			admin.GET("/orders/:id", adminHandler.AdminGetOrder)
			admin.POST("/orders/:id/fulfill", adminHandler.AdminFulfillOrder)
			admin.POST("/orders/:id/cancel", adminHandler.AdminCancelOrder)

			admin.GET("/employees", adminHandler.AdminListEmployees)
			admin.POST("/employees", adminHandler.AdminCreateEmployee)
			admin.DELETE("/employees/:id", adminHandler.AdminDeleteEmployee)

			admin.GET("/reports/overview", adminHandler.AdminReportOverview)
			admin.GET("/reports/low-stock", adminHandler.AdminReportLowStock)
			admin.GET("/reports/top-products", adminHandler.AdminReportTopProducts)
		}
	}

	return r
}
