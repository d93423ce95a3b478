// Package http wires the REST endpoints of the book catalog.
package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/auth"
)

// RouterConfig holds all dependencies of the router, improving testability
// and reducing parameter count.
type RouterConfig struct {
	BooksController *BooksController
	AuthController  *auth.Controller
	AuthMiddleware  *auth.Middleware
	StaticPath      string
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Register and login are public; everything else under /api sits behind
// the bearer-token guard.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/register", cfg.AuthController.Register)
	api.POST("/auth/login", cfg.AuthController.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handler())
	protected.GET("/auth/me", cfg.AuthController.Me)

	books := protected.Group("/books")
	books.GET("", cfg.BooksController.ListBooks)
	books.GET("/:id", cfg.BooksController.GetBook)
	books.POST("", cfg.BooksController.CreateBook)
	books.PUT("/:id", cfg.BooksController.UpdateBook)
	books.PATCH("/:id", cfg.BooksController.UpdateBook)
	books.DELETE("/:id", cfg.BooksController.DeleteBook)

	// Serve the bundled frontend when present
	if cfg.StaticPath != "" {
		if _, err := os.Stat(cfg.StaticPath); err == nil {
			router.Static("/static", cfg.StaticPath)
			router.StaticFile("/", filepath.Join(cfg.StaticPath, "index.html"))
		}
	}

	return router
}
