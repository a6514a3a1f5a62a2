package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/config"
	"github.com/lb-platform/core/internal/database"
	"github.com/lb-platform/core/internal/middleware"
	"github.com/lb-platform/core/internal/pkg/imagestore"
	"github.com/lb-platform/core/internal/pkg/jwt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
	tokens *jwt.Manager
	images imagestore.Store
	logger *zap.Logger
}

// New initializes the application: config → DB → optional Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// Redis only backs the public-form rate limiter; the app runs without it.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		rdb = redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
	} else {
		logger.Warn("no redis_url configured, submission rate limiting disabled")
	}

	var images imagestore.Store
	if cfg.Image.Enabled() {
		images, err = imagestore.New(cfg.Image)
		if err != nil {
			return nil, fmt.Errorf("image storage: %w", err)
		}
	} else {
		logger.Warn("image storage not configured, blog image uploads disabled")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	if cfg.IsDev() {
		router.Use(debugErrors())
	}

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc:  corsAllowOrigin(cfg, logger),
	}))

	app := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		rdb:    rdb,
		tokens: jwt.NewManager(cfg.JWTSecret, cfg.JWTExpiry),
		images: images,
		logger: logger,
	}
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases background resources.
func (a *App) Shutdown() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
