// Command server runs the stores API.
//
// @title Stores API
// @version 1.0
// @description Stores, items and tags with JWT authentication and token revocation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"storesapi/config"
	_ "storesapi/docs"
	"storesapi/internal/adapters/auth"
	"storesapi/internal/adapters/revocation"
	delivery "storesapi/internal/delivery/http"
	"storesapi/internal/delivery/http/controllers"
	"storesapi/internal/delivery/http/middleware"
	"storesapi/internal/domain"
	"storesapi/internal/repository/postgres"
	"storesapi/internal/services"
	"storesapi/migrations"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
	startupTimeout    = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := db.PingContext(startCtx); err != nil {
		return err
	}
	logger.Info("connected to postgres")

	if cfg.AutoMigrate {
		if err := migrations.Apply(startCtx, db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	storeRepo := postgres.NewStoreRepository(db)
	itemRepo := postgres.NewItemRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	userRepo := postgres.NewUserRepository(db)

	var revocations domain.RevocationRegistry
	switch cfg.RevocationStore {
	case config.RevocationStorePostgres:
		revocations = postgres.NewRevocationRegistry(db)
	default:
		revocations = revocation.NewMemoryRegistry()
	}
	logger.Info("revocation store", "backend", cfg.RevocationStore)

	tokens := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(cfg.BcryptCost), tokens, revocations)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		admin, err := userService.EnsureAdmin(startCtx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			return err
		}
		logger.Info("admin user ready", "user_id", admin.ID, "username", admin.Username)
	}

	mux := delivery.NewRouter(delivery.Controllers{
		Stores: controllers.NewStoreController(logger, services.NewStoreService(storeRepo, itemRepo, tagRepo)),
		Items:  controllers.NewItemController(logger, services.NewItemService(itemRepo, tagRepo)),
		Tags:   controllers.NewTagController(logger, services.NewTagService(tagRepo, storeRepo, itemRepo)),
		Users:  controllers.NewUserController(logger, userService),
		Health: controllers.NewHealthController(logger, db),
	}, middleware.NewAuthenticator(tokens, revocations, services.NewPolicy(tokens), logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux)),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
