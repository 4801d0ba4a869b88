package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pulseapp/pulse-backend/internal/config"
	"github.com/pulseapp/pulse-backend/internal/handler"
	"github.com/pulseapp/pulse-backend/internal/middleware"
	"github.com/pulseapp/pulse-backend/internal/migration"
	"github.com/pulseapp/pulse-backend/internal/repository"
	"github.com/pulseapp/pulse-backend/internal/service"
	pkgcache "github.com/pulseapp/pulse-backend/pkg/cache"
	"github.com/pulseapp/pulse-backend/pkg/jwt"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
	pkgredis "github.com/pulseapp/pulse-backend/pkg/redis"
	pkgstorage "github.com/pulseapp/pulse-backend/pkg/storage"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional; without it the feed is served uncached
	var cacheService pkgcache.Service
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
	} else {
		pkglogger.Info("Connected to Redis")
		cacheService = pkgcache.NewService(redisClient)
	}

	// Blob store is only wired up in remote content mode
	var contentStore service.ContentStore
	if cfg.Content.Mode == service.StorageRemote {
		blobStore, err := initBlobStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize blob store: %v", err)
		}
		contentStore = service.NewContentStore(
			blobStore,
			cfg.Content.KeyPrefix,
			os.TempDir(),
			time.Duration(cfg.Content.TimeoutS)*time.Second,
		)
		pkglogger.Info("Content mode: remote (%s)", cfg.Content.Backend)
	} else {
		pkglogger.Info("Content mode: inline")
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiresIn)*time.Minute,
		time.Duration(cfg.JWT.RefreshIn)*time.Hour,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	postService := service.NewPostService(postRepo, userRepo, engagementRepo, commentRepo, contentStore, cacheService, cfg.Content.Mode)
	feedService := service.NewFeedService(postRepo, engagementRepo, commentRepo, subscriptionRepo, contentStore, cacheService)
	engagementService := service.NewEngagementService(engagementRepo, postRepo, cacheService)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	userService := service.NewUserService(userRepo, subscriptionRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	feedHandler := handler.NewFeedHandler(feedService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	commentHandler := handler.NewCommentHandler(commentService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	messageHandler := handler.NewMessageHandler(messageService)
	userHandler := handler.NewUserHandler(userService)

	if env != "development" && env != "dev" && env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pulse-backend",
			"time":    time.Now().Unix(),
		})
	})

	auth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalAuth(jwtManager)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)
		api.GET("/auth/me", auth, authHandler.Me)

		api.GET("/feed", feedHandler.Get)

		api.POST("/posts", auth, postHandler.Create)
		api.GET("/posts/:id", optionalAuth, postHandler.Get)
		api.POST("/posts/:id/like", auth, engagementHandler.ToggleLike)
		api.POST("/posts/:id/repost", auth, engagementHandler.Repost)
		api.POST("/posts/:id/comments", auth, commentHandler.Create)
		api.GET("/posts/:id/comments", commentHandler.List)

		api.GET("/users/:username", userHandler.GetProfile)
		api.GET("/users/:username/posts", optionalAuth, postHandler.ListByAuthor)
		api.POST("/users/:username/follow", auth, subscriptionHandler.Follow)
		api.DELETE("/users/:username/follow", auth, subscriptionHandler.Unfollow)
		api.GET("/users/:username/followers", subscriptionHandler.Followers)
		api.GET("/users/:username/following", subscriptionHandler.Following)

		api.POST("/messages", auth, messageHandler.Send)
		api.GET("/messages", auth, messageHandler.Inbox)
		api.POST("/messages/:id/read", auth, messageHandler.MarkRead)

		api.POST("/verification/request", auth, userHandler.RequestVerification)
		api.POST("/verification/approve/:username", auth, middleware.AdminOnly(), userHandler.ApproveVerification)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDB opens the MySQL connection and tunes the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}

// initBlobStore selects the blob store backend for remote content mode
func initBlobStore(cfg *config.Config) (pkgstorage.Store, error) {
	timeout := time.Duration(cfg.Content.TimeoutS) * time.Second

	switch cfg.Content.Backend {
	case "s3":
		return pkgstorage.NewS3Store(pkgstorage.S3Config{
			Endpoint:        cfg.Content.S3.Endpoint,
			Region:          cfg.Content.S3.Region,
			AccessKeyID:     cfg.Content.S3.AccessKeyID,
			SecretAccessKey: cfg.Content.S3.SecretAccessKey,
			Bucket:          cfg.Content.S3.Bucket,
			BasePath:        cfg.Content.S3.BasePath,
			ForcePathStyle:  cfg.Content.S3.ForcePathStyle,
		})
	case "webdav":
		return pkgstorage.NewWebDAVStore(pkgstorage.WebDAVConfig{
			Hostname: cfg.Content.WebDAV.Hostname,
			Username: cfg.Content.WebDAV.Username,
			Password: cfg.Content.WebDAV.Password,
			Timeout:  timeout,
		})
	default:
		return nil, fmt.Errorf("unknown content backend: %q", cfg.Content.Backend)
	}
}

// splitAndTrim splits a string by delimiter and trims spaces
func splitAndTrim(s string, delimiter string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, delimiter) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
