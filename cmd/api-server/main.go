package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vmachado/escritorio-api/api/swagger"
	"github.com/vmachado/escritorio-api/internal/handler"
	"github.com/vmachado/escritorio-api/internal/middleware"
	"github.com/vmachado/escritorio-api/internal/refdata"
	"github.com/vmachado/escritorio-api/internal/repository"
	"github.com/vmachado/escritorio-api/internal/seed"
	"github.com/vmachado/escritorio-api/internal/service"
	"github.com/vmachado/escritorio-api/internal/session"
	"github.com/vmachado/escritorio-api/pkg/cache"
	"github.com/vmachado/escritorio-api/pkg/config"
	"github.com/vmachado/escritorio-api/pkg/database"
	"github.com/vmachado/escritorio-api/pkg/export"
	"github.com/vmachado/escritorio-api/pkg/logger"
	corsmiddleware "github.com/vmachado/escritorio-api/pkg/middleware/cors"
	reqidmiddleware "github.com/vmachado/escritorio-api/pkg/middleware/requestid"
	"github.com/vmachado/escritorio-api/pkg/storage"
)

// @title Escritório API
// @version 1.0.0
// @description Record management API for law offices: clients, physical documents and legal document templates.
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	files, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload storage", "error", err)
	}

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	documentoRepo := repository.NewDocumentoRepository(db)
	statusRepo := repository.NewStatusDocumentoRepository(db)
	juridicoRepo := repository.NewDocumentoJuridicoRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Session and signing primitives.
	codec := session.NewTokenCodec(cfg.Session.Secret)
	store := session.NewRedisStore(redisClient)
	signer := storage.NewDownloadTokenSigner(cfg.Session.Secret, cfg.Uploads.DownloadTokenTTL)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	// Services.
	auditSvc := service.NewAuditService(auditRepo, export.NewCSVExporter(), logr)
	authSvc := service.NewAuthService(userRepo, auditSvc, store, codec, cfg.Session.TTL, validate, logr)
	userSvc := service.NewUserService(userRepo, auditSvc, validate, logr)
	clienteSvc := service.NewClienteService(clienteRepo, auditSvc, validate, logr)
	documentoSvc := service.NewDocumentoService(documentoRepo, clienteRepo, statusRepo, files, signer, auditSvc, cfg.Uploads.MaxFileSizeBytes, cfg.Uploads.AllowedMIMEs, validate, logr)
	statusSvc := service.NewStatusDocumentoService(statusRepo, auditSvc, validate, logr)
	juridicoSvc := service.NewDocumentoJuridicoService(juridicoRepo, clienteRepo, export.NewPDFExporter(), auditSvc, validate, logr)
	dashboardSvc := service.NewDashboardService(clienteRepo, documentoRepo, juridicoRepo, auditRepo, logr)

	viacep := refdata.NewViaCEPClient(cfg.RefData.ViaCEPBaseURL, cfg.RefData.RequestTimeout)
	ibge := refdata.NewIBGEClient(cfg.RefData.IBGEBaseURL, cfg.RefData.RequestTimeout)
	refdataSvc := service.NewRefDataService(viacep, ibge, redisClient, cfg.RefData.CacheTTL, metricsSvc, logr)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Run(seedCtx, userRepo, statusRepo, logr); err != nil {
		cancelSeed()
		logr.Sugar().Fatalw("failed to seed initial data", "error", err)
	}
	cancelSeed()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Session(cfg.Session.CookieName, codec, store, userRepo))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router := &handler.Router{
		Auth: handler.NewAuthHandler(authSvc, handler.CookieSettings{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Env == config.EnvProduction,
		}),
		Clientes:            handler.NewClienteHandler(clienteSvc),
		Documentos:          handler.NewDocumentoHandler(documentoSvc, cfg.APIPrefix),
		StatusDocumentos:    handler.NewStatusDocumentoHandler(statusSvc),
		DocumentosJuridicos: handler.NewDocumentoJuridicoHandler(juridicoSvc),
		Usuarios:            handler.NewUserHandler(userSvc),
		Logs:                handler.NewAuditHandler(auditSvc),
		Dashboard:           handler.NewDashboardHandler(dashboardSvc),
		RefData:             handler.NewRefDataHandler(refdataSvc),
	}
	router.Register(r, cfg.APIPrefix)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
		return
	}
	logr.Sugar().Infow("server stopped")
}
