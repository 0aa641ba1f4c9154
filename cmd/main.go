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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/avilkov/travel-manager/internal/handlers"
	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/repositories"
	"github.com/avilkov/travel-manager/internal/services"
	"github.com/avilkov/travel-manager/internal/storage"
	"github.com/avilkov/travel-manager/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title travel-manager API
// @version 1.0.0
// @description Service for planning, moderating and sharing travel itineraries
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		sessionCacheTTLSecond, uploadsDir,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		sessionCacheTTLSecond, uploadsDir,
	); err != nil {
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
// application, database, Redis, Kafka, session and storage configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	sessionCacheTTLSecond int, uploadsDir string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "travels")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; an empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "moderation-events")

	// Session and storage config
	if sessionCacheTTLSecond, err = strconv.Atoi(getEnv("SESSION_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	uploadsDir = getEnv("UPLOADS_DIR", "uploads")

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	sessionCacheTTLSecond int, uploadsDir string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Connect to Kafka, if configured
	var moderationEvents services.KafkaWriter
	if kafkaAddr != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		moderationEvents = kafkaWriter
		logger.Log.Infof("Kafka writer connected to %s, topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Info("Kafka address not set, moderation events disabled")
	}

	// Initialize template renderer and image store
	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Log.Fatal("template parsing error:", err)
	}
	imageStore := storage.NewImageStore(uploadsDir)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	sessionCacheRepo := repositories.NewSessionCacheRepository(rdb, time.Duration(sessionCacheTTLSecond)*time.Second)
	townReadRepo := repositories.NewTownReadRepository(db)
	townWriteRepo := repositories.NewTownWriteRepository(db)
	activityReadRepo := repositories.NewActivityReadRepository(db)
	activityWriteRepo := repositories.NewActivityWriteRepository(db)
	travelReadRepo := repositories.NewTravelReadRepository(db)
	travelWriteRepo := repositories.NewTravelWriteRepository(db, middlewares.GetTxFromContext)
	moderationReadRepo := repositories.NewModerationReadRepository(db, middlewares.GetTxFromContext)
	moderationWriteRepo := repositories.NewModerationWriteRepository(db, middlewares.GetTxFromContext)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionWriteRepo, sessionCacheRepo)
	sessionService := services.NewSessionService(sessionReadRepo, userReadRepo, sessionCacheRepo)
	travelService := services.NewTravelService(travelReadRepo, townReadRepo, townWriteRepo, activityReadRepo, activityWriteRepo)
	moderationService := services.NewModerationService(moderationReadRepo, moderationWriteRepo, travelWriteRepo, activityReadRepo, moderationEvents)
	commentService := services.NewCommentService(commentReadRepo, commentWriteRepo, userReadRepo)
	exportService := services.NewExportService(activityReadRepo, imageStore)

	// Initialize page handlers
	indexPageHandler := handlers.NewIndexPageHandler(renderer)
	loginPageHandler := handlers.NewAuthPageHandler(renderer, "login.html")
	registerPageHandler := handlers.NewAuthPageHandler(renderer, "register.html")
	profilePageHandler := handlers.NewProfilePageHandler(renderer, travelService, moderationService)
	travelsPageHandler := handlers.NewTravelsPageHandler(renderer, travelService)
	travelNewPageHandler := handlers.NewTravelNewPageHandler(renderer, travelService)
	travelViewPageHandler := handlers.NewTravelViewPageHandler(renderer, travelService)
	commentsPageHandler := handlers.NewCommentsPageHandler(renderer, commentService, travelService)
	adminsPageHandler := handlers.NewAdminsPageHandler(renderer, moderationService, travelService, travelService)
	adminViewPageHandler := handlers.NewAdminViewPageHandler(renderer, moderationService, travelService)

	// Initialize API handlers
	loginHandler := handlers.NewLoginHandler(renderer, authService)
	registerHandler := handlers.NewRegisterHandler(renderer, authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	renameHandler := handlers.NewRenameHandler(authService)
	deleteAccountHandler := handlers.NewDeleteAccountHandler(authService)
	avatarHandler := handlers.NewAvatarHandler(imageStore)
	travelCreateHandler := handlers.NewTravelCreateHandler(moderationService)
	activitiesHandler := handlers.NewActivitiesByTownHandler(travelService)
	addTownHandler := handlers.NewAddTownHandler(travelService)
	addActivityHandler := handlers.NewAddActivityHandler(travelService, imageStore)
	addCommentHandler := handlers.NewAddCommentHandler(commentService)
	approveHandler := handlers.NewApproveHandler(moderationService)
	rejectHandler := handlers.NewRejectHandler(moderationService)
	kmlHandler := handlers.NewKMLDownloadHandler(travelService, exportService)
	kmzHandler := handlers.NewKMZDownloadHandler(travelService, exportService)
	gpxHandler := handlers.NewGPXDownloadHandler(travelService, exportService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionMiddleware(sessionService))

	// Pages
	r.Get("/", indexPageHandler)
	r.Get("/auth/login", loginPageHandler)
	r.Get("/auth/register", registerPageHandler)
	r.Get("/profile", profilePageHandler)
	r.Get("/travels", travelsPageHandler)
	r.Get("/travels/new", travelNewPageHandler)
	r.Get("/travels/view", travelViewPageHandler)
	r.Get("/travels/comments", commentsPageHandler)
	r.Get("/admins", adminsPageHandler)
	r.Get("/admins/view", adminViewPageHandler)

	// Auth API
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/logout", logoutHandler)
	r.Post("/api/auth/rename", renameHandler)
	r.Post("/api/auth/delete", deleteAccountHandler)
	r.Post("/api/auth/avatar", avatarHandler)

	// Travel API
	r.Get("/api/travels/get_activities", activitiesHandler)
	r.Post("/api/travels/create", travelCreateHandler)
	r.Post("/api/travels/add_town", addTownHandler)
	r.Post("/api/travels/add_activity", addActivityHandler)
	r.Post("/api/travels/add_comment", addCommentHandler)

	// Moderation API; approve runs inside a per-request DB transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Get("/api/admins/approve", approveHandler)
	})
	r.Get("/api/admins/delete", rejectHandler)

	// Export API
	r.Get("/api/download/kml", kmlHandler)
	r.Get("/api/download/kmz", kmzHandler)
	r.Get("/api/download/gpx", gpxHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
