package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "github.com/kuntarvishnuprasad41/sparelab-epc/docs"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/handlers"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/persistence/repository"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/infrastructure/config"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/infrastructure/database"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/infrastructure/observability"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/infrastructure/storage"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Catalog      *handlers.CatalogHandler
	JobCards     *handlers.JobCardHandler
	Hotspots     *handlers.HotspotHandler
	Registration *handlers.RegistrationHandler
}

// App is the fully wired service.
type App struct {
	Router   *gin.Engine
	Registry *prometheus.Registry
}

// Build wires repositories, use cases and handlers from cfg and returns the
// router. Job cards live in memory; the annotation store follows
// cfg.Annotations.Store.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	catalog, err := repository.NewStaticCatalogRepository(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	uploads, err := storage.NewLocalUploadStore(cfg.Storage.UploadsDir)
	if err != nil {
		return nil, err
	}
	hotspotRepo, diagramRepo, err := newAnnotationStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jobCardUseCase := usecase.NewJobCardUseCase(
		repository.NewJobCardMemoryRepository(),
		usecase.NewLineItemNormalizer(catalog, cfg.JobCard.StrictParts()),
		usecase.JobCardOptions{
			IDPrefix:          cfg.JobCard.IDPrefix,
			StrictTransitions: cfg.JobCard.StrictTransitions(),
			Events:            metrics,
		},
	)

	h := Handlers{
		Catalog:      handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalog)),
		JobCards:     handlers.NewJobCardHandler(jobCardUseCase),
		Hotspots:     handlers.NewHotspotHandler(usecase.NewHotspotUseCase(hotspotRepo, diagramRepo, catalog, uploads)),
		Registration: handlers.NewRegistrationHandler(usecase.NewRegistrationUseCase(uploads, nil)),
	}

	return &App{
		Router:   NewRouter(cfg, log, metrics, registry, h),
		Registry: registry,
	}, nil
}

// NewRouter mounts middlewares, operational endpoints and the /api routes.
func NewRouter(cfg *config.Config, log zerolog.Logger, metrics *observability.Metrics, gatherer prometheus.Gatherer, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(recovery())
	router.Use(corsMiddleware(cfg.App.AllowedOrigins()))
	router.Use(metrics.GinMiddleware())

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static(storage.PublicPrefix, cfg.Storage.UploadsDir)

	api := router.Group("/api")
	addCatalogRoutes(api, h.Catalog)
	addJobCardRoutes(api, h.JobCards)
	addAnnotationRoutes(api, h.Hotspots, h.Registration)

	return router
}

func newAnnotationStore(ctx context.Context, cfg *config.Config) (interfaces.IHotspotRepository, interfaces.IDiagramRepository, error) {
	if cfg.Annotations.Store != config.AnnotationStoreDynamoDB {
		store := repository.NewAnnotationMemoryRepository()
		return store, store, nil
	}

	client, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, nil, err
	}
	store := repository.NewAnnotationDynamoRepository(client, cfg.Annotations.HotspotsTable, cfg.Annotations.DiagramsTable)
	return store, store, nil
}

// Run starts the server and blocks until ctx is canceled, then drains
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.App.Env).Msg("starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
