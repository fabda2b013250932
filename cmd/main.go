package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/config"
	"github.com/webatelier/landing-api/internal/container"
	"github.com/webatelier/landing-api/internal/infrastructure/mongodb"
	handlers "github.com/webatelier/landing-api/internal/interface/http"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/internal/router"
	"github.com/webatelier/landing-api/pkg/helpers"
	"github.com/webatelier/landing-api/pkg/mailer"
	"github.com/webatelier/landing-api/pkg/response"
	"github.com/webatelier/landing-api/pkg/validation"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// MongoDB connection manager; a failed initial ping is logged, not fatal.
	// The watchdog keeps retrying every interval.
	mongoMgr := mongodb.NewManager(cfg.MongoURI, cfg.MongoDB, cfg.MongoPingInterval, cfg.MongoConnectWindow, logger)
	if err := mongoMgr.Start(ctx); err != nil {
		log.Fatalf("failed to init mongodb client: %v", err)
	}

	ensureIndexes(ctx, mongoMgr, logger)

	// Redis (optional; rate limiters no-op without it)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// GCS image host (optional; upload route answers 500 until configured)
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs client init failed, uploads disabled")
		} else {
			container.SetGCS(gcsClient)
			defer func() { _ = gcsClient.Close() }()
		}
	}

	// RabbitMQ contact queue (optional; contact falls back to direct send)
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq init failed, contact jobs sent inline")
		} else {
			container.SetRabbitPub(pub)
			defer pub.Close()
		}
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTExpire)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(mongoMgr)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)
	container.SetMailgun(mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender))

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestIDMiddleware())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.RequestLogger(logger))
	}
	r.Use(cors.New(corsConfig(cfg)))

	health := handlers.NewHealthHandler(cfg.Env, version)
	r.GET("/health", health.Health)
	r.GET("/", health.Index)
	r.NoRoute(func(c *gin.Context) {
		resp := response.Error[any](c, http.StatusNotFound, "Route not found", nil)
		resp.Errors = gin.H{"path": c.Request.URL.Path}
		resp.JSON(c)
	})

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	if err := mongoMgr.Stop(ctxShutdown); err != nil {
		logger.WithError(err).Warn("mongodb disconnect failed")
	}
	logger.Info("server exited properly")
}

func ensureIndexes(ctx context.Context, mgr *mongodb.Manager, logger *logrus.Logger) {
	ictx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mongodb.NewReviewRepository(mgr.Database()).EnsureIndexes(ictx); err != nil {
		logger.Warnf("review index creation failed: %v", err)
	}
	if err := mongodb.NewProjectRepository(mgr.Database()).EnsureIndexes(ictx); err != nil {
		logger.Warnf("project index creation failed: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	origins := cfg.CORSOrigins()
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:5500",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5500",
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}
