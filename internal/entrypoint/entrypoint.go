package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/auth"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/users"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and starts the server.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	usersRepo := users.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)

	tokenService := auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	authService := auth.NewService(usersRepo, tokenService, cfg.Auth)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BooksController: http_controllers.NewBooksController(booksRepo),
		AuthController:  auth.NewController(authService),
		AuthMiddleware:  auth.NewMiddleware(tokenService, usersRepo),
		StaticPath:      cfg.UI.StaticPath,
	})

	Serve(router, cfg)
}
