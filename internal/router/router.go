package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kozlekmarchewkowy/magazyn/internal/config"
	"github.com/kozlekmarchewkowy/magazyn/internal/handler"
	"github.com/kozlekmarchewkowy/magazyn/internal/middleware"
	"github.com/kozlekmarchewkowy/magazyn/internal/repository"
	"github.com/kozlekmarchewkowy/magazyn/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	directory := service.NewDirectory(categoryRepo, service.NewRedisCache(rdb))
	categorySvc := service.NewCategoryEntry(categoryRepo, directory)
	productSvc := service.NewProductEntry(productRepo, directory)
	browseSvc := service.NewBrowse(productRepo, cfg.RecentLimit)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc, directory)
	productsH := handler.NewProductsHandler(productSvc, directory)
	browseH := handler.NewBrowseHandler(browseSvc, cfg.RecentLimit)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/categories", categoriesH.List)
		v1.GET("/categories/lookup", categoriesH.Lookup)
		v1.POST("/categories", categoriesH.Create)

		v1.POST("/products", productsH.Create)
		v1.GET("/products/recent", browseH.Recent)

		v1.GET("/stats", browseH.Stats)

		v1.DELETE("/admin/products", browseH.ResetProducts)
	}

	return r
}
