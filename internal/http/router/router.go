package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/vesteevolta/backend/internal/config"
	"github.com/vesteevolta/backend/internal/http/handlers"
	"github.com/vesteevolta/backend/internal/http/middleware"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Catalog  *handlers.CatalogHandler
	Clothing *handlers.ClothingHandler
	Rental   *handlers.RentalHandler
	Payment  *handlers.PaymentHandler
	Rating   *handlers.RatingHandler
	Report   *handlers.ReportHandler
	Health   *handlers.HealthHandler
	WS       *handlers.WSHandler
}

func SetupRouter(
	cfg *config.Config,
	h Handlers,
	tokenManager *service.TokenManager,
	cache *service.CacheService,
	rdb *redis.Client,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	api.GET("/ws", h.WS.Handle)

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(rdb, "ratelimit:auth", cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	auth := middleware.AuthMiddleware(tokenManager)
	id := middleware.UUIDValidator("id")

	// Catalog reads are public and cached. Writes drop the cached pages, as do
	// user and rental deletes, which cascade into clothing and ratings.
	catalogCache := middleware.ResponseCache(cache, service.CatalogCachePrefix, cfg.CacheTTL)
	catalogInvalidate := middleware.InvalidateCache(cache, service.CatalogCachePrefix)

	public := api.Group("/")
	public.Use(catalogCache)
	{
		public.GET("/categories", h.Catalog.ListCategories)
		public.GET("/categories/:id", id, h.Catalog.GetCategory)
		public.GET("/clothes", h.Clothing.List)
		public.GET("/clothes/:id", id, h.Clothing.Get)
		public.GET("/clothes/:id/categories", id, h.Clothing.Categories)
		public.GET("/ratings/clothing/:id", id, h.Rating.ListByClothing)
		public.GET("/ratings/user/:id", id, h.Rating.ListByUser)
	}

	protected := api.Group("/")
	protected.Use(auth)
	{
		protected.GET("/users", h.User.List)
		protected.GET("/users/:id", id, h.User.Get)
		protected.PUT("/users/:id", id, h.User.Update)
		protected.DELETE("/users/:id", id, catalogInvalidate, h.User.Delete)
		protected.GET("/users/:id/rentals", id, h.Rental.ListByUser)

		protected.POST("/rentals", h.Rental.Create)
		protected.GET("/rentals", h.Rental.List)
		protected.GET("/rentals/:id", id, h.Rental.Get)
		protected.PUT("/rentals/:id/status", id, h.Rental.UpdateStatus)
		protected.DELETE("/rentals/:id", id, catalogInvalidate, h.Rental.Delete)
		protected.GET("/clothes/:id/rentals", id, h.Rental.ListByClothing)

		protected.POST("/rentals/:id/payments", id, h.Payment.Create)
		protected.GET("/rentals/:id/payments", id, h.Payment.ListByRental)
		protected.GET("/payments/:id", id, h.Payment.Get)

		protected.POST("/ratings", catalogInvalidate, h.Rating.Create)
		protected.GET("/ratings/report", h.Rating.ExportCSV)
		protected.DELETE("/ratings/:id", id, catalogInvalidate, h.Rating.Delete)

		protected.POST("/reports", h.Report.CreateReport)
		protected.GET("/reports", h.Report.ListReports)
		protected.GET("/reports/rentals", middleware.RequireRole(models.ProfileOwner), h.Rental.ExportCSV)
		protected.GET("/reports/:id", id, h.Report.GetReport)
		protected.PUT("/reports/:id/status", id, middleware.RequireRole(models.ProfileAdmin), h.Report.UpdateStatus)
	}

	catalog := api.Group("/")
	catalog.Use(auth, catalogInvalidate)
	{
		catalog.POST("/categories", h.Catalog.CreateCategory)
		catalog.PUT("/categories/:id", id, h.Catalog.UpdateCategory)
		catalog.DELETE("/categories/:id", id, h.Catalog.DeleteCategory)

		catalog.POST("/clothes", h.Clothing.Create)
		catalog.PUT("/clothes/:id", id, h.Clothing.Update)
		catalog.DELETE("/clothes/:id", id, h.Clothing.Delete)
		catalog.PUT("/clothes/:id/categories", id, h.Clothing.ReplaceCategories)
	}

	return r
}
