package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/anitrack/anitrack-go/internal/anilist"
	"github.com/anitrack/anitrack-go/internal/config"
	"github.com/anitrack/anitrack-go/internal/handler"
	"github.com/anitrack/anitrack-go/internal/middleware"
	"github.com/anitrack/anitrack-go/internal/repository"
	"github.com/anitrack/anitrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.SyncSchema(context.Background(), db, cfg.DBDriver); err != nil {
		slog.Error("schema sync failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService)

	animeClient := anilist.NewClient(cfg.AniListURL, cfg.AniListTimeout)
	animeHandler := handler.NewAnimeHandler(animeClient)

	animeRepo := repository.NewAnimeRepository(db, cfg.DBDriver)
	watchlistRepo := repository.NewWatchlistRepository(db)
	watchlistService := service.NewWatchlistService(watchlistRepo, animeRepo)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
	})

	r.Get("/anime/search", animeHandler.HandleSearch)

	r.Get("/watchlist/{userId}", watchlistHandler.HandleGetByUser)
	r.Post("/watchlist", watchlistHandler.HandleCreateEntry)
	r.Put("/watchlist/{id}", watchlistHandler.HandleUpdateEntry)
	r.Delete("/watchlist/{id}", watchlistHandler.HandleDeleteEntry)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
