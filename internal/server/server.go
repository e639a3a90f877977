package server

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/faramide/eventra/config"
	"github.com/faramide/eventra/internal/handlers"
	"github.com/faramide/eventra/internal/middleware"
	"github.com/faramide/eventra/internal/models"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := NewRouter(db, logger)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	return r.Run(":" + cfg.Port)
}

// NewRouter builds the engine with middleware and the full route table.
// Split out from Start so tests can run it against their own database.
func NewRouter(db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	setupRoutes(r, db)
	return r
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("eventcategory", func(fl validator.FieldLevel) bool {
			return models.ValidCategoryName(fl.Field().String())
		})
	}
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/")
	{
		public.POST("/sign-up/", handlers.Register)
		public.POST("/login/", handlers.Login)
		public.POST("/login/refresh/", handlers.RefreshToken)

		public.GET("/category-list/", handlers.ListCategories)
		public.GET("/category-detail/:slug/", handlers.GetCategory)

		public.GET("/event-list/", handlers.ListEvents)
		public.GET("/event-detail/:slug/", handlers.GetEvent)
		public.GET("/events-by-category/:slug/", handlers.ListEventsByCategory)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/event-profile/create/", handlers.CreateHostProfile)
		protected.GET("/event-profile/", handlers.GetHostProfile)

		// Event writes: owner-or-read-only is enforced in the handlers.
		protected.PUT("/event-detail/:slug/", handlers.UpdateEvent)
		protected.PATCH("/event-detail/:slug/", handlers.PartialUpdateEvent)
		protected.DELETE("/event-detail/:slug/", handlers.DeleteEvent)

		protected.POST("/create-ticket/", handlers.CreateTicket)
		protected.PUT("/ticket-detail/:id/", handlers.UpdateTicket)
		protected.DELETE("/ticket-detail/:id/", handlers.DeleteTicket)

		protected.POST("/create-social-media/", handlers.CreateSocialMedia)
		protected.PUT("/social-media-detail/:id/", handlers.UpdateSocialMedia)
		protected.DELETE("/social-media-detail/:id/", handlers.DeleteSocialMedia)

		host := protected.Group("/")
		host.Use(middleware.RequireHost())
		{
			host.POST("/create-event/", handlers.CreateEvent)
		}

		admin := protected.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/create-category/", handlers.CreateCategory)
			admin.PUT("/category-detail/:slug/", handlers.UpdateCategory)
			admin.PATCH("/category-detail/:slug/", handlers.UpdateCategory)
			admin.DELETE("/category-detail/:slug/", handlers.DeleteCategory)
		}
	}
}
