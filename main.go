package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"playhub/cache"
	"playhub/config"
	"playhub/database"
	"playhub/handlers"
	"playhub/middleware"
	"playhub/store"
	"playhub/utils"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := utils.RegisterValidators(); err != nil {
		logrus.Fatalf("failed to register validators: %v", err)
	}

	db, err := database.Open(cfg.MysqlDSN)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, running without cache")
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.InitMetrics()

	h := handlers.New(store.New(db), cache.New(rdb), cfg.JWTSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Monitor())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/api/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/search", h.SearchUsers)
		users.GET("/:id", h.GetProfile)
		users.GET("/:id/stats", h.GetStats)
		users.GET("/:id/friends", h.GetFriends)

		protected := users.Group("")
		protected.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			protected.PUT("/:id", h.UpdateUser)
			protected.DELETE("/:id", h.DeleteUser)
			protected.PUT("/:id/stats", h.UpdateStats)
			protected.POST("/friends/request", h.SendFriendRequest)
			protected.POST("/friends/:id/respond", h.RespondFriendRequest)
			protected.GET("/friends/pending", h.GetPendingRequests)
		}
	}

	logrus.Infof("server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
