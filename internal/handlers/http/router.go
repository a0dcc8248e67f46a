package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne o que o router precisa saber do ambiente
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
}

// Handlers agrupa os handlers HTTP da aplicação
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

// NewRouter monta o gin.Engine com middlewares e rotas da API.
// Compartilhado entre o main e os testes de integração.
func NewRouter(
	cfg RouterConfig,
	i18nService *i18n.Service,
	authMiddleware *middleware.AuthMiddleware,
	signupLimiter middleware.Limiter,
	h Handlers,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Resolve o usuário do header Authorization quando presente
	router.Use(authMiddleware.ResolvePrincipal())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(signupLimiter))
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/token", h.Auth.Token)
		}

		// Users (administração + perfil próprio)
		users := v1.Group("/users")
		users.Use(middleware.RequireAuthenticated())
		{
			users.GET("/me", h.User.Me)
			users.PATCH("/me", h.User.UpdateMe)

			admin := users.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("", h.User.Create)
				admin.GET("", h.User.List)
				admin.GET("/:username", h.User.Get)
				admin.PATCH("/:username", h.User.Update)
				admin.DELETE("/:username", h.User.Delete)
			}
		}

		// Categories
		categories := v1.Group("/categories")
		{
			categories.GET("", h.Category.List)
			categories.POST("", middleware.RequireAdmin(), h.Category.Create)
			categories.DELETE("/:slug", middleware.RequireAdmin(), h.Category.Delete)
		}

		// Genres
		genres := v1.Group("/genres")
		{
			genres.GET("", h.Genre.List)
			genres.POST("", middleware.RequireAdmin(), h.Genre.Create)
			genres.DELETE("/:slug", middleware.RequireAdmin(), h.Genre.Delete)
		}

		// Titles
		titles := v1.Group("/titles")
		{
			titles.GET("", h.Title.List)
			titles.GET("/:title_id", h.Title.Get)
			titles.POST("", middleware.RequireAdmin(), h.Title.Create)
			titles.PATCH("/:title_id", middleware.RequireAdmin(), h.Title.Update)
			titles.DELETE("/:title_id", middleware.RequireAdmin(), h.Title.Delete)

			// Reviews
			reviews := titles.Group("/:title_id/reviews")
			{
				reviews.GET("", h.Review.List)
				reviews.GET("/:review_id", h.Review.Get)
				reviews.POST("", middleware.RequireAuthenticated(), h.Review.Create)
				reviews.PATCH("/:review_id", middleware.RequireAuthenticated(), h.Review.Update)
				reviews.DELETE("/:review_id", middleware.RequireAuthenticated(), h.Review.Delete)

				// Comments
				comments := reviews.Group("/:review_id/comments")
				{
					comments.GET("", h.Comment.List)
					comments.GET("/:comment_id", h.Comment.Get)
					comments.POST("", middleware.RequireAuthenticated(), h.Comment.Create)
					comments.PATCH("/:comment_id", middleware.RequireAuthenticated(), h.Comment.Update)
					comments.DELETE("/:comment_id", middleware.RequireAuthenticated(), h.Comment.Delete)
				}
			}
		}
	}

	return router
}
