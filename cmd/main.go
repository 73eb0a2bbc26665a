package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/developerom1/Red-Global-Assignment/internal/facades"
	"github.com/developerom1/Red-Global-Assignment/internal/handlers"
	appjwt "github.com/developerom1/Red-Global-Assignment/internal/jwt"
	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/middlewares"
	"github.com/developerom1/Red-Global-Assignment/internal/migrations"
	"github.com/developerom1/Red-Global-Assignment/internal/password"
	"github.com/developerom1/Red-Global-Assignment/internal/repositories"
	"github.com/developerom1/Red-Global-Assignment/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings, loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	userCacheExpSec   int

	kafkaBroker string
	kafkaTopic  string

	s3Region    string
	s3Endpoint  string
	s3AccessKey string
	s3SecretKey string
	s3Bucket    string

	jwtSecretKey string
	jwtExpSecond int
}

// @title Meeting Intelligence Platform API
// @version 1.0.0
// @description Authentication, per-user items and meeting upload backend
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.userCacheExpSec, err = getEnvInt("USER_CACHE_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config; empty broker disables event publishing
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "platform-events")

	// S3 / MinIO config
	cfg.s3Region = getEnv("S3_REGION", "us-east-1")
	cfg.s3Endpoint = getEnv("S3_ENDPOINT", "http://localhost:9000")
	cfg.s3AccessKey = getEnv("S3_ACCESS_KEY", "minioadmin")
	cfg.s3SecretKey = getEnv("S3_SECRET_KEY", "minioadmin")
	cfg.s3Bucket = getEnv("S3_BUCKET", "meeting-uploads")

	// JWT config, 24h validity window by default
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It applies migrations, sets up routes and middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error: ", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed: ", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed: ", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error: ", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events; nil when no broker is configured
	var eventWriter services.EventWriter
	if cfg.kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	} else {
		logger.Log.Warn("KAFKA_BROKER not set, event publishing disabled")
	}

	// S3 blob storage facade
	s3Client, err := facades.NewS3Client(ctx, cfg.s3Region, cfg.s3Endpoint, cfg.s3AccessKey, cfg.s3SecretKey)
	if err != nil {
		logger.Log.Fatal("S3 client error: ", err)
	}
	blobStorage := facades.NewBlobStorageFacade(s3Client, cfg.s3Bucket)

	// Initialize token and password capabilities
	jwt := appjwt.New(
		appjwt.WithSecretKey(cfg.jwtSecretKey),
		appjwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, time.Duration(cfg.userCacheExpSec)*time.Second)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db)
	meetingReadRepo := repositories.NewMeetingReadRepository(db)
	meetingWriteRepo := repositories.NewMeetingWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, userCacheRepo, hasher, jwt)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, eventWriter)
	uploadService := services.NewUploadService(blobStorage, meetingReadRepo, meetingWriteRepo, eventWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", handlers.NewHealthHandler())
	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(jwt)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/auth/me", handlers.NewMeHandler(authService))
		r.Get("/items", handlers.NewListItemsHandler(itemService))
		r.Post("/items", handlers.NewCreateItemHandler(itemService))
		r.Get("/items/{id}", handlers.NewGetItemHandler(itemService))
		r.Put("/items/{id}", handlers.NewUpdateItemHandler(itemService))
		r.Delete("/items/{id}", handlers.NewDeleteItemHandler(itemService))
		r.Post("/upload", handlers.NewUploadHandler(uploadService))
		r.Get("/meetings", handlers.NewListMeetingsHandler(uploadService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
