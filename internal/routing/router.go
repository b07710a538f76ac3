package routing

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"account-service/internal/managers"
	"account-service/internal/middleware"
	"account-service/internal/routing/handlers"
	"account-service/internal/schemas"
)

// InitRouter initializes the gin engine with the common middleware and the user routes.
func InitRouter(databaseMgr managers.DatabaseMgr, userHdl handlers.UserHdl) *gin.Engine {
	router := gin.New()
	setupCommonMiddleware(router)
	setupRoutes(router, databaseMgr, userHdl)

	return router
}

func setupCommonMiddleware(router *gin.Engine) {
	router.Use(middleware.InjectTrace())
	router.Use(middleware.LogRequest())
	router.Use(middleware.SanitizePath())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", "Origin"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}))
}

func setupRoutes(router *gin.Engine, databaseMgr managers.DatabaseMgr, userHdl handlers.UserHdl) {
	// Set up version route
	router.GET("/", func(c *gin.Context) {
		metadata := &schemas.MetadataDTO{
			ApiVersion: "v1",
			ApiName:    "Account Service",
		}
		c.JSON(http.StatusOK, metadata)
	})

	// Set up health route
	router.GET("/health", func(c *gin.Context) {
		if err := databaseMgr.GetPool().Ping(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Set up user routes
	userRoutes := router.Group("/api/users")
	userRoutes.POST("", userHdl.RegisterUser)
	userRoutes.POST("/login", userHdl.LoginUser)
	userRoutes.GET("/verify/:token", userHdl.VerifyEmail)
	userRoutes.GET("/:username", userHdl.GetUser)
}
