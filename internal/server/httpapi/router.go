package httpapi

import (
	"net/http"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/logging"
	"github.com/Sumit-1325/auth-backend/internal/server/config"
	"github.com/Sumit-1325/auth-backend/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine: middleware, health check, and the
// /api/v1/users route group.
func NewRouter(cfg *config.Config, log logging.Logger, authSvc *services.AuthService, profileSvc *services.ProfileService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	// Credentialed CORS for the browser frontend. The wildcard origin is not
	// allowed together with cookies, so the frontend origin is pinned.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	authHandler := NewAuthHandler(authSvc, cfg)
	profileHandler := NewProfileHandler(profileSvc)
	authRequired := requireAuth([]byte(cfg.SecretKey))

	users := router.Group("/api/v1/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh", authHandler.Refresh)
		users.POST("/forgot-password", authHandler.ForgotPassword)
		users.POST("/reset-password/:token", authHandler.ResetPassword)

		users.POST("/logout", authRequired, authHandler.Logout)
		users.GET("/profile", authRequired, profileHandler.Get)
		users.PATCH("/update", authRequired, profileHandler.Update)
	}

	return router
}
