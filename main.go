package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/bookmarkd/bookmarkd/handlers"
	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/handler"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/repository"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/service"
	"github.com/bookmarkd/bookmarkd/internal/config"
	"github.com/bookmarkd/bookmarkd/internal/database"
	"github.com/bookmarkd/bookmarkd/pkg/logger"
	"github.com/bookmarkd/bookmarkd/pkg/metrics"
	"github.com/bookmarkd/bookmarkd/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logger.Infof("config loaded: postgres=%v mongo=%v redis=%v auth=%v",
		cfg.Postgres.DatabaseURL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Auth.APIToken != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Location")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(middleware.RequestLog(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so both the rate limiter and the bookmark
	// cache can use it when configured.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Pick the bookmark store: Postgres when configured, Mongo as the
	// fallback backend, in-memory otherwise (dev only).
	var repo repository.Repository
	switch {
	case cfg.Postgres.DatabaseURL != "":
		pg, err := repository.NewPostgresRepo(cfg.Postgres.DatabaseURL)
		if err != nil {
			logger.Fatalf("failed to open Postgres store: %v", err)
		}
		defer pg.Close()
		repo = pg
		logger.Infof("Using Postgres bookmark store")
	case cfg.MongoDB.URI != "":
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Fatalf("failed to connect to MongoDB: %v", err)
		}
		defer func() { _ = database.DisconnectMongo(client) }()
		col := client.Database(cfg.MongoDB.Database).Collection("bookmarks")
		repo = repository.NewMongoRepo(col)
		logger.Infof("Using MongoDB bookmark store")
	default:
		repo = repository.NewMemoryRepo()
		logger.Warnf("no DATABASE_URL or MONGODB_URI configured, bookmarks are held in memory only")
	}

	if redisClient != nil {
		repo = repository.NewCachedRepo(repo, redisClient, cfg.Redis.CacheTTL)
		logger.Infof("Bookmark reads cached in Redis (ttl=%s)", cfg.Redis.CacheTTL)
	}

	storeConfigured := cfg.Postgres.DatabaseURL != "" || cfg.MongoDB.URI != ""
	svc := service.New(repo, bookmark.RatingBounds{Min: cfg.Rating.Min, Max: cfg.Rating.Max})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the configured dependencies are reachable
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["storage"] = true
		if storeConfigured {
			if _, err := svc.List(c.Request.Context()); err != nil {
				deps["storage"] = false
				ready = false
			}
		}

		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil && redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api/bookmarks")
	if cfg.Auth.APIToken != "" {
		api.Use(middleware.BearerAuth(cfg.Auth.APIToken))
	} else {
		logger.Warnf("API_TOKEN is not set, the bookmark API is unauthenticated")
	}
	handler.RegisterBookmarkRoutes(api, svc)

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting bookmark service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
