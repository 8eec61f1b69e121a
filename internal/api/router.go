package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jadebrew/site-manager/internal/auth"
	"github.com/jadebrew/site-manager/internal/handlers"
	"github.com/jadebrew/site-manager/internal/logger"
	"github.com/jadebrew/site-manager/internal/persist"
	"github.com/jadebrew/site-manager/internal/state"
	"github.com/jadebrew/site-manager/internal/translate"
)

const (
	corsMaxAgeHours = 12
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Manager       *state.Manager
	Persister     *persist.Persister
	Translator    translate.Translator
	Authenticator *auth.Authenticator
	CORSOrigins   []string
	Logger        logger.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()

	// CORS middleware - must be first
	router.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"X-CSRF-Token", "Authorization", "accept", "origin",
			"Cache-Control", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeHours * time.Hour,
	}))

	// Middleware
	router.Use(ginLogger(deps.Logger))
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	contentHandler := handlers.NewContentHandler(deps.Manager, deps.Logger)
	adminHandler := handlers.NewAdminHandler(deps.Manager, deps.Persister, deps.Logger)
	leadHandler := handlers.NewLeadHandler(deps.Manager, deps.Logger)
	chatHandler := handlers.NewChatHandler(deps.Translator, deps.Logger)
	authHandler := handlers.NewAuthHandler(deps.Authenticator, deps.Logger)

	// Public surface
	v1 := router.Group("/api/v1")
	v1.GET("/content", contentHandler.Get)
	v1.GET("/content/meta", contentHandler.Meta)
	v1.POST("/leads", leadHandler.Submit)
	v1.POST("/chat", chatHandler.Chat)
	v1.POST("/auth/login", authHandler.Login)

	// Admin surface, token required
	admin := v1.Group("/admin")
	admin.Use(deps.Authenticator.Middleware())

	admin.PUT("/content/field", adminHandler.UpdateField)
	admin.POST("/content/list", adminHandler.AddListItem)
	admin.DELETE("/content/list", adminHandler.DeleteListItem)
	admin.PUT("/content/list/move", adminHandler.MoveListItem)
	admin.PUT("/content/visibility", adminHandler.SetVisibility)
	admin.DELETE("/menu", adminHandler.DeleteMenuItem)
	admin.POST("/library", adminHandler.AddImage)
	admin.DELETE("/library", adminHandler.DeleteImage)
	admin.POST("/save", adminHandler.Save)
	admin.POST("/reset", adminHandler.Reset)

	admin.GET("/leads", leadHandler.List)
	admin.PUT("/leads/status", leadHandler.UpdateStatus)
	admin.DELETE("/leads", leadHandler.Delete)

	admin.GET("/cloud", adminHandler.GetCloudConfig)
	admin.PUT("/cloud", adminHandler.PutCloudConfig)
	admin.POST("/cloud/test", adminHandler.TestCloudConnection)
	admin.POST("/cloud/provision", adminHandler.ProvisionShards)

	return router
}

func ginLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		log.Info("HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status_code", statusCode),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("duration", duration),
		)
	}
}
