package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"realty-office-api/config"
	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/application/services"
	"realty-office-api/internal/infrastructure/db/postgres"
	boardDB "realty-office-api/internal/infrastructure/db/postgres/board"
	inquiryDB "realty-office-api/internal/infrastructure/db/postgres/inquiry"
	pageDB "realty-office-api/internal/infrastructure/db/postgres/page"
	postDB "realty-office-api/internal/infrastructure/db/postgres/post"
	propertyDB "realty-office-api/internal/infrastructure/db/postgres/property"
	settingsDB "realty-office-api/internal/infrastructure/db/postgres/settings"
	watermarkDB "realty-office-api/internal/infrastructure/db/postgres/watermark"
	"realty-office-api/internal/infrastructure/jwt"
	"realty-office-api/internal/infrastructure/metrics"
	"realty-office-api/internal/infrastructure/mq"
	"realty-office-api/internal/infrastructure/storage"
	"realty-office-api/internal/interface/api/rest"
	"realty-office-api/internal/interface/api/rest/middleware"
	"realty-office-api/internal/media"
	"realty-office-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	storage    ports.Storage
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// object storage
	store, err := storage.New(ctx, logger, cfg.S3)
	if err != nil {
		logger.Fatal("failed to connect to object storage", zap.Error(err))
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	//rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		storage:    store,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	// "errgroup" instead of "WaitGroup" because:
	// - allows return an error from gorutine
	// - group errors from multiple gorutines into one
	// - wg.Add(1), wg.Done() - automatically under the hood, so never catch deadlock if you forget something ;-)
	// - allows orchestration of parallel processes through the context.Context(gracefull shut down)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	propertyRepo := propertyDB.NewRepository(a.db)
	boardRepo := boardDB.NewRepository(a.db)
	postRepo := postDB.NewRepository(a.db)
	inquiryRepo := inquiryDB.NewRepository(a.db)
	settingsRepo := settingsDB.NewRepository(a.db)
	pageRepo := pageDB.NewRepository(a.db)
	watermarkRepo := watermarkDB.NewRepository(a.db)

	// media pipeline
	watermarkService := services.NewWatermarkService(a.logger, watermarkRepo, a.cfg.Media.OverlayTTL, a.cfg.Media.TextMark)
	transformer := media.NewTransformer(a.cfg.Media.MaxImageWidth, a.cfg.Media.JPEGQuality)
	compositor := media.NewCompositor(watermarkService.Provider(), a.cfg.Media.JPEGQuality, a.logger)
	pipeline := services.NewUploadService(a.logger, a.storage, transformer, compositor, a.cfg.Media.MaxUploadFiles)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(jwtService, a.cfg.App)
	propertyService := services.NewPropertyService(a.logger, propertyRepo, pipeline, a.storage, a.mCounter)
	postService := services.NewPostService(a.logger, boardRepo, postRepo, pipeline, a.storage, a.mCounter)
	inquiryService := services.NewInquiryService(inquiryRepo, a.mq, a.mCounter)
	settingsService := services.NewSettingsService(settingsRepo)
	pageService := services.NewPageService(pageRepo)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewPropertyController(a.router, propertyService, a.logger, jwtService)
	rest.NewPostController(a.router, postService, a.logger, jwtService)
	rest.NewInquiryController(a.router, inquiryService, a.logger, jwtService)
	rest.NewSettingsController(a.router, settingsService, a.logger, jwtService)
	rest.NewPageController(a.router, pageService, a.logger, jwtService)
	rest.NewWatermarkController(a.router, watermarkService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
