package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "quote_matrix/docs" // generated by swag init
	"quote_matrix/internal/adapter/http/handlers"
	"quote_matrix/internal/adapter/persistence/memory"
	"quote_matrix/internal/adapter/persistence/repository"
	"quote_matrix/internal/infrastructure/config"
	"quote_matrix/internal/infrastructure/database"
	"quote_matrix/internal/infrastructure/logging"
	"quote_matrix/internal/usecase"
	"quote_matrix/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

// Run will start the server and block until ctx ends or the listener fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	catalogs, err := newCatalogRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	matrixUseCase := usecase.NewMatrixSessionUseCase(catalogs, memory.NewSessionStore(), logger)
	matrixHandler := handlers.NewMatrixHandler(matrixUseCase, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(matrixHandler, logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runSessionSweeper(gctx, matrixUseCase, cfg.Session, logger)
	})
	g.Go(func() error {
		return serve(gctx, srv, cfg.ShutdownTimeout, logger)
	})
	return g.Wait()
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(matrixHandler *handlers.MatrixHandler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMatrixRoutes(v1, matrixHandler)
	return router
}

func newCatalogRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.ICatalogRepository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		logger.Info("[matrix][catalog] reading yaml fixtures", zap.String("dir", cfg.Catalog.FixturesDir))
		return repository.NewCatalogFileRepository(cfg.Catalog.FixturesDir), nil
	case config.CatalogSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		logger.Info("[matrix][catalog] reading dynamodb",
			zap.String("options_table", cfg.Catalog.OptionsTable),
			zap.String("items_table", cfg.Catalog.ItemsTable),
			zap.String("endpoint", cfg.AWS.DynamoDBEndpoint),
		)
		return repository.NewCatalogDynamoRepository(ddb, cfg.Catalog.OptionsTable, cfg.Catalog.ItemsTable), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownCatalogSource, cfg.Catalog.Source)
	}
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	serveErr := make(chan error, 1)
	logger.Info("[matrix][http] listening", zap.String("addr", srv.Addr))
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("[matrix][http] stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
