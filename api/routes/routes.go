package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/handlers"
	"github.com/projectzeus/checkin-backend/internal/middleware"
)

// HandlerDependencies carries the handlers wired in main
type HandlerDependencies struct {
	WebhookHandler *handlers.WebhookHandler
	AuthHandler    *handlers.AuthHandler
	AdminHandler   *handlers.AdminHandler
	OAuthHandler   *handlers.OAuthHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, logger *zap.Logger, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.RateLimitMiddleware(cfg))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Nothing to see here.\nCheckout README.md to start.")
	})

	// OAuth flow for the Google collaborators
	router.GET("/authorize", deps.OAuthHandler.Authorize)
	router.GET("/oauth2callback", deps.OAuthHandler.Callback)

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Bot webhook routes
		bot := public.Group("/bot")
		{
			bot.POST("/register", deps.WebhookHandler.Register)
			bot.POST("/checkin", deps.WebhookHandler.CheckIn)
			bot.POST("/info", deps.WebhookHandler.Info)
			bot.POST("/milestone", deps.WebhookHandler.Milestones)
			bot.POST("/leaderboard", deps.WebhookHandler.Leaderboard)
			bot.POST("/command", deps.WebhookHandler.Command)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1/admin")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/users", deps.AdminHandler.GetAllUsers)
		protected.GET("/users/count", deps.AdminHandler.GetUserCount)
		protected.GET("/milestones", deps.AdminHandler.GetMilestones)
	}

	return router
}
