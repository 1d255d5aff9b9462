package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	contactapp "github.com/hsati/directory-backend/internal/application/contact"
	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	identityapp "github.com/hsati/directory-backend/internal/application/identity"
	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/infrastructure/auth"
	"github.com/hsati/directory-backend/internal/infrastructure/config"
	"github.com/hsati/directory-backend/internal/infrastructure/logger"
	"github.com/hsati/directory-backend/internal/infrastructure/mail"
	"github.com/hsati/directory-backend/internal/infrastructure/persistence"
	"github.com/hsati/directory-backend/internal/infrastructure/storage"
	"github.com/hsati/directory-backend/internal/interfaces/http/handler"
	"github.com/hsati/directory-backend/internal/interfaces/http/middleware"
	"github.com/hsati/directory-backend/internal/interfaces/http/router"
)

func main() {
	// .env is optional; containers inject real environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting directory backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Object storage. Falls back to an in-memory stub when no credentials
	// are configured so local development works without MinIO running;
	// uploaded image URLs then point nowhere, which is fine for dev.
	var store directoryapp.ObjectStore
	if cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}

		ensureCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		for _, bucket := range []string{
			directoryapp.BucketMembers,
			directoryapp.BucketAllMembers,
			directoryapp.BucketEvents,
			directoryapp.BucketCirculars,
			directoryapp.BucketCleanGreen,
		} {
			if err := s3Store.EnsureBucket(ensureCtx, bucket); err != nil {
				cancel()
				log.Fatal("Failed to ensure bucket", zap.String("bucket", bucket), zap.Error(err))
			}
		}
		cancel()
		store = s3Store
		log.Info("Object storage ready", zap.String("endpoint", cfg.Storage.Endpoint))
	} else {
		store = storage.NewStubObjectStorage()
		log.Warn("No object storage credentials configured, image uploads are stored in memory only")
	}

	// Token verification: a locally-configured JWT secret takes priority;
	// otherwise tokens are verified against the hosted identity provider.
	// Password login is only available through the provider.
	var (
		verifier      identity.TokenVerifier
		authenticator identity.PasswordAuthenticator
	)
	if cfg.Auth.JWTSecret != "" {
		verifier = auth.NewLocalVerifier(cfg.Auth.JWTSecret)
		log.Info("Verifying tokens locally")
	} else {
		provider := auth.NewProviderClient(cfg.Auth.ProviderURL, cfg.Auth.APIKey, cfg.Auth.RequestTimeout)
		verifier = provider
		authenticator = provider
		log.Info("Verifying tokens against identity provider", zap.String("provider_url", cfg.Auth.ProviderURL))
	}

	// Repositories
	memberRepo := persistence.NewGormMemberRepository(db.DB)
	allMemberRepo := persistence.NewGormAllMemberRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	circularRepo := persistence.NewGormCircularRepository(db.DB)
	cleanGreenRepo := persistence.NewGormCleanGreenRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	memberCategoryRepo := persistence.NewGormMemberCategoryRepository(db.DB)
	industryRepo := persistence.NewGormIndustryRepository(db.DB)
	userRoleRepo := persistence.NewGormUserRoleRepository(db.DB)

	// Application services
	ingestor := directoryapp.NewImageIngestor(store)
	memberService := directoryapp.NewMemberService(memberRepo, ingestor)
	allMemberService := directoryapp.NewAllMemberService(allMemberRepo, ingestor)
	eventService := directoryapp.NewEventService(eventRepo, ingestor)
	circularService := directoryapp.NewCircularService(circularRepo, ingestor)
	cleanGreenService := directoryapp.NewCleanGreenService(cleanGreenRepo, ingestor)
	categoryService := directoryapp.NewCategoryService(categoryRepo, memberCategoryRepo)
	industryService := directoryapp.NewIndustryService(industryRepo)
	authService := identityapp.NewAuthService(verifier, authenticator, userRoleRepo)
	contactService := contactapp.NewService(mail.NewSMTPMailer(&cfg.SMTP))

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	guard := handler.Guard(func(required ...identity.Role) gin.HandlerFunc {
		return middleware.RequireRole(authService, required...)
	})

	router.NewRouter(engine).
		Register(handler.NewAuthHandler(authService, guard)).
		Register(handler.NewMemberHandler(memberService, guard)).
		Register(handler.NewAllMemberHandler(allMemberService, guard)).
		Register(handler.NewEventHandler(eventService, guard)).
		Register(handler.NewCircularHandler(circularService, guard)).
		Register(handler.NewCleanGreenHandler(cleanGreenService, guard)).
		Register(handler.NewCategoryHandler(categoryService, guard)).
		Register(handler.NewIndustryHandler(industryService, guard)).
		Register(handler.NewContactHandler(contactService)).
		Register(handler.NewSystemHandler(db)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
