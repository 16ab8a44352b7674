// MEGUI backend server.
//
// Wires configuration, database, storage, PDF generation, and the HTTP
// API together, then serves until SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	companyapp "github.com/megui/backend/internal/application/company"
	geoapp "github.com/megui/backend/internal/application/geo"
	maintenanceapp "github.com/megui/backend/internal/application/maintenance"
	printingapp "github.com/megui/backend/internal/application/printing"
	ticketingapp "github.com/megui/backend/internal/application/ticketing"
	"github.com/megui/backend/internal/infrastructure/auth"
	"github.com/megui/backend/internal/infrastructure/config"
	"github.com/megui/backend/internal/infrastructure/geolocation"
	"github.com/megui/backend/internal/infrastructure/lock"
	"github.com/megui/backend/internal/infrastructure/logger"
	"github.com/megui/backend/internal/infrastructure/media"
	"github.com/megui/backend/internal/infrastructure/pdf"
	"github.com/megui/backend/internal/infrastructure/persistence"
	"github.com/megui/backend/internal/infrastructure/storage"
	"github.com/megui/backend/internal/interfaces/http/handler"
	"github.com/megui/backend/internal/interfaces/http/middleware"
	"github.com/megui/backend/internal/interfaces/http/router"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// 3. Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("Database ping failed", zap.Error(err))
	}
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// 4. Generation guard (memory or redis)
	var guard lock.Guard
	var redisClient *redis.Client
	switch cfg.Lock.Backend {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Redis ping failed", zap.Error(err))
		}
		cancel()
		defer func() { _ = redisClient.Close() }()
		guard = lock.NewRedisGuard(redisClient)
		log.Info("Using redis generation guard", zap.String("addr", cfg.Redis.Addr()))
	default:
		guard = lock.NewMemoryGuard()
		log.Info("Using in-memory generation guard")
	}

	// 5. JWT service. The service token authenticates our own calls to
	// the upstream media API.
	jwtService := auth.NewJWTService(cfg.JWT)
	tokenProvider := media.TokenProvider(jwtService.GenerateServiceToken)

	// 6. PDF storage backend
	var pdfStorage storage.PDFStorage
	switch cfg.Storage.Backend {
	case "s3":
		s3Store, err := storage.NewS3Storage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", zap.Error(err))
		}
		bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Store.EnsureBucket(bucketCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure S3 bucket", zap.Error(err))
		}
		cancel()
		pdfStorage = s3Store
		log.Info("Using S3 PDF storage", zap.String("bucket", cfg.Storage.S3Bucket))
	case "remote":
		uploadClient := media.NewUploadClient(cfg.Media.BaseURL, cfg.Media.FetchTimeout, tokenProvider, log)
		pdfStorage = storage.NewRemoteStorage(uploadClient, log)
		log.Info("Using remote PDF storage", zap.String("base_url", cfg.Media.BaseURL))
	default:
		fsStore, err := storage.NewFileSystemStorage(&storage.FileSystemStorageConfig{
			BasePath: cfg.Storage.BasePath,
			BaseURL:  cfg.Storage.BaseURL,
			Logger:   log,
		})
		if err != nil {
			log.Fatal("Failed to initialize filesystem storage", zap.Error(err))
		}
		pdfStorage = fsStore
		log.Info("Using filesystem PDF storage", zap.String("base_path", cfg.Storage.BasePath))
	}

	// 7. Company logo source. Without a media base URL tickets render
	// with the text fallback header.
	var logos pdf.LogoSource
	if cfg.Media.BaseURL != "" {
		logos = media.NewLogoClient(cfg.Media.BaseURL, cfg.Media.FetchTimeout, tokenProvider, log)
	} else {
		log.Warn("Media base URL not configured, tickets will render without logos")
	}

	// 8. PDF pipeline
	measurer := pdf.NewMeasurer()
	qrEncoder := pdf.NewQREncoder()
	ticketBuilder := pdf.NewTicketBuilder(measurer, qrEncoder, logos, log)
	woBuilder := pdf.NewWorkOrderBuilder(measurer)
	renderer := pdf.NewRenderer()

	// 9. Geolocation capture (optional)
	var capture *geolocation.Service
	if cfg.Geo.ProviderURL != "" {
		provider := geolocation.NewHTTPProvider(cfg.Geo.ProviderURL)
		capture = geolocation.NewService(provider, geolocation.Options{
			HighAccuracy: cfg.Geo.HighAccuracy,
			Timeout:      cfg.Geo.CaptureTimeout,
		}, log)
		log.Info("Geolocation capture enabled", zap.String("provider", cfg.Geo.ProviderURL))
	} else {
		log.Warn("Geolocation provider not configured, position capture disabled")
	}

	// 10. Repositories
	ticketRepo := persistence.NewGormTicketRepository(db.DB)
	workOrderRepo := persistence.NewGormWorkOrderRepository(db.DB)
	printJobRepo := persistence.NewGormPrintJobRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)

	// 11. Application services
	ticketService := ticketingapp.NewTicketService(ticketRepo, companyRepo, log)
	workOrderService := maintenanceapp.NewWorkOrderService(workOrderRepo, log)
	companyService := companyapp.NewCompanyService(companyRepo, log)
	geoService := geoapp.NewService(capture, log)
	printService := printingapp.NewPrintService(
		ticketRepo,
		workOrderRepo,
		printJobRepo,
		ticketBuilder,
		woBuilder,
		renderer,
		pdfStorage,
		guard,
		cfg.Lock.TTL,
		log,
	)

	// 12. HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.JWTAuthMiddleware(jwtService))

	// 13. Handlers and routes
	systemHandler := handler.NewSystemHandler(cfg.App.Name)
	handler.RegisterHealth(engine, systemHandler)

	router.NewRouter(engine).
		Register(handler.TicketRoutes(handler.NewTicketHandler(ticketService))).
		Register(handler.WorkOrderRoutes(handler.NewWorkOrderHandler(workOrderService))).
		Register(handler.CompanyRoutes(handler.NewCompanyHandler(companyService))).
		Register(handler.PrintRoutes(handler.NewPrintHandler(printService))).
		Register(handler.GeoRoutes(handler.NewGeoHandler(geoService))).
		Register(handler.SystemRoutes(systemHandler)).
		Setup()

	// 14. Expired-PDF cleanup loop
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	if cfg.Storage.Retention > 0 {
		go runCleanup(cleanupCtx, printService, cfg.Storage.Retention, log)
	}

	// 15. Serve
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stopCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runCleanup periodically deletes PDFs older than the retention window
// along with their job records.
func runCleanup(ctx context.Context, svc *printingapp.PrintService, retention time.Duration, log *zap.Logger) {
	interval := retention / 4
	if interval > time.Hour {
		interval = time.Hour
	}
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("PDF cleanup loop started",
		zap.Duration("retention", retention),
		zap.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := svc.CleanupExpired(ctx, retention)
			if err != nil {
				log.Error("PDF cleanup failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Info("Expired PDFs removed", zap.Int("count", removed))
			}
		}
	}
}
