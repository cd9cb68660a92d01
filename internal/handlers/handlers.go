package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/config"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/database"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/middleware"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/service"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/storage"
)

type HandlerSet struct {
	log            zerolog.Logger
	cfg            *config.AppConfig
	db             database.Pool
	cache          *redis.Client
	authService    *service.AuthService
	catalogService *service.CatalogService
	orderService   *service.OrderService
	userService    *service.UserService
	uploadService  *service.UploadService
	statsService   *service.StatsService
	users          *repository.UserRepository
	sessions       *repository.SessionRepository
}

func NewHandlerSet(log zerolog.Logger, db database.Pool, cache *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	return HandlerSet{
		log:            log,
		cfg:            cfg,
		db:             db,
		cache:          cache,
		authService:    service.NewAuthService(userRepo, sessionRepo, cfg, log),
		catalogService: service.NewCatalogService(categoryRepo, productRepo),
		orderService:   service.NewOrderService(orderRepo),
		userService:    service.NewUserService(userRepo),
		uploadService:  service.NewUploadService(uploadRepo, store, cfg, log),
		statsService:   service.NewStatsService(productRepo, orderRepo, userRepo, cache, log),
		users:          userRepo,
		sessions:       sessionRepo,
	}
}

// AuthService exposes the auth layer for startup tasks such as the
// bootstrap administrator.
func (h HandlerSet) AuthService() *service.AuthService {
	return h.authService
}

func (h HandlerSet) StatsService() *service.StatsService {
	return h.statsService
}

func (h HandlerSet) Sessions() *repository.SessionRepository {
	return h.sessions
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)
	router.POST("/auth/login", h.Login)

	protected := router.Group("")
	protected.Use(
		middleware.Auth(h.cfg, h.users, h.sessions),
		middleware.RequireAdmin(),
	)
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/auth/me", h.Me)

		protected.GET("/categories", h.ListCategories)
		protected.POST("/categories", h.CreateCategory)
		protected.PATCH("/categories/:id", h.UpdateCategory)
		protected.DELETE("/categories/:id", h.DeleteCategory)

		protected.GET("/products", h.ListProducts)
		protected.GET("/products/:id", h.GetProduct)
		protected.POST("/products", h.CreateProduct)
		protected.PATCH("/products/:id", h.UpdateProduct)
		protected.DELETE("/products/:id", h.DeleteProduct)

		protected.GET("/orders", h.ListOrders)
		protected.PATCH("/orders/:id/status", h.UpdateOrderStatus)

		protected.GET("/users", h.ListUsers)
		protected.PATCH("/users/:id/toggle-status", h.ToggleUserStatus)
		protected.PATCH("/users/:id/toggle-admin", h.ToggleUserAdmin)

		protected.POST("/upload/product-image", h.UploadProductImage)
		protected.POST("/upload/description-image", h.UploadDescriptionImage)

		protected.GET("/dashboard/stats", h.DashboardStats)
	}
}
