package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/adapter/database"
	handlers "github.com/turmab/helpdesk/internal/adapter/http"
	"github.com/turmab/helpdesk/internal/app/auth"
	"github.com/turmab/helpdesk/internal/app/chamado"
	"github.com/turmab/helpdesk/internal/app/cliente"
	"github.com/turmab/helpdesk/internal/app/tecnico"
	"github.com/turmab/helpdesk/internal/infra/metrics"
	"github.com/turmab/helpdesk/internal/infra/middleware"
	"github.com/turmab/helpdesk/internal/logging"
	"github.com/turmab/helpdesk/pkg/cache"
	"github.com/turmab/helpdesk/pkg/config"
	"github.com/turmab/helpdesk/pkg/ratelimit"
	"github.com/turmab/helpdesk/pkg/security"
	"github.com/turmab/helpdesk/pkg/telemetry"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// App agrega as dependências da aplicação montadas na inicialização.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Database *database.Database
	Router   *gin.Engine

	cache          cache.Cache
	tracerProvider *telemetry.TracerProvider
	server         *http.Server
}

// NewApp monta a aplicação: configuração, logger, banco, cache, serviços,
// middlewares e rotas.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging)

	db, err := database.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar banco de dados: %w", err)
	}

	var apiMetrics *metrics.APIMetrics
	if cfg.Metrics.Enabled {
		apiMetrics = metrics.NewAPIMetrics()
	}

	var tracerProvider *telemetry.TracerProvider
	if cfg.Tracing.Enabled {
		tracerProvider, err = telemetry.NewTracerProvider(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, logger)
		if err != nil {
			logger.Warn("tracing desabilitado por falha na inicialização", zap.Error(err))
		}
	}

	cacheStore, redisCache := buildCache(cfg, apiMetrics, logger)

	pessoaRepo := database.NewPessoaRepository(db.DB(), logger)
	chamadoRepo := database.NewChamadoRepository(db.DB(), logger)

	keyManager, err := security.NewKeyManager(
		security.ResolveJWTSecret(cfg.Auth.JWTSecret),
		cfg.Auth.TokenExpiration,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao inicializar gerenciador de tokens: %w", err)
	}

	authService := auth.NewService(pessoaRepo, keyManager, logger)
	tecnicoService := tecnico.NewService(pessoaRepo, chamadoRepo, logger)
	clienteService := cliente.NewService(pessoaRepo, chamadoRepo, logger)
	chamadoService := chamado.NewService(chamadoRepo, pessoaRepo, cacheStore, cfg.Cache.TTL, logger)

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.Auth.PublicPaths, logger)

	var metricsMiddleware *middleware.MetricsMiddleware
	if apiMetrics != nil {
		metricsMiddleware = middleware.NewMetricsMiddleware(apiMetrics, logger)
	}

	var tracingMiddleware *middleware.TracingMiddleware
	if tracerProvider != nil {
		tracingMiddleware = middleware.NewTracingMiddleware(logger, cfg.Tracing.ServiceName)
	}

	var rateLimitMiddleware *middleware.RateLimitMiddleware
	if cfg.Features.RateLimiter && redisCache != nil {
		limiter := ratelimit.NewRedisLimiter(redisCache.Client(), logger)
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, apiMetrics, cfg.Features.RequestsPerMinute, logger)
	}

	mw := middleware.NewMiddleware(logger, authMiddleware, metricsMiddleware, tracingMiddleware, rateLimitMiddleware)

	router := buildRouter(cfg, logger, mw)

	authHandler := handlers.NewAuthHandler(authService, logger)
	tecnicoHandler := handlers.NewTecnicoHandler(tecnicoService, logger)
	clienteHandler := handlers.NewClienteHandler(clienteService, logger)
	chamadoHandler := handlers.NewChamadoHandler(chamadoService, logger)
	healthHandler := handlers.NewHealthHandler(db, cacheStore, logger)

	registerRoutes(router, mw, authHandler, tecnicoHandler, clienteHandler, chamadoHandler, healthHandler)

	if apiMetrics != nil {
		metricsHandler := &middleware.MetricsHandler{Metrics: apiMetrics, Logger: logger}
		metricsHandler.RegisterEndpoint(router, cfg.Metrics.PrometheusPath)
	}

	return &App{
		Config:         cfg,
		Logger:         logger,
		Database:       db,
		Router:         router,
		cache:          cacheStore,
		tracerProvider: tracerProvider,
	}, nil
}

// Run inicia o servidor HTTP e bloqueia até o contexto ser cancelado, quando
// então faz o shutdown gracioso.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)

	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("servidor HTTP iniciado", zap.String("addr", addr))
		if a.Config.Server.TLS {
			errCh <- a.server.ListenAndServeTLS(a.Config.Server.CertFile, a.Config.Server.KeyFile)
			return
		}
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("encerrando servidor HTTP")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("falha no shutdown do servidor", zap.Error(err))
	}

	a.Close(shutdownCtx)
	return nil
}

// Close libera os recursos da aplicação.
func (a *App) Close(ctx context.Context) {
	if a.tracerProvider != nil {
		a.tracerProvider.Shutdown(ctx)
	}
	if err := a.Database.Close(); err != nil {
		a.Logger.Error("falha ao fechar banco de dados", zap.Error(err))
	}
	_ = a.Logger.Sync()
}

func databaseConfig(cfg *config.Config) database.Config {
	logLevel := gormlogger.Warn
	if cfg.Logging.Level == "debug" {
		logLevel = gormlogger.Info
	}
	return database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        logLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
		MigrationDir:    cfg.Database.MigrationDir,
		SkipMigrations:  cfg.Database.SkipMigrations,
	}
}

// buildCache monta o cache configurado. Retorna também a instância Redis,
// quando existir, para compartilhar a conexão com o rate limiter.
func buildCache(cfg *config.Config, apiMetrics *metrics.APIMetrics, logger *zap.Logger) (cache.Cache, *cache.RedisCache) {
	if !cfg.Cache.Enabled || cfg.Cache.Type == "none" {
		return cache.NewNoopCache(), nil
	}

	if cfg.Cache.Type == "redis" && cfg.Cache.Redis.Address != "" {
		redisCache, err := cache.NewRedisCache(
			cfg.Cache.Redis.Address,
			cfg.Cache.Redis.Password,
			cfg.Cache.Redis.DB,
			logger,
		)
		if err != nil {
			logger.Warn("Redis indisponível, usando cache em memória", zap.Error(err))
		} else {
			return redisCache, redisCache
		}
	}

	return cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute, apiMetrics, logger), nil
}

func buildRouter(cfg *config.Config, logger *zap.Logger, mw *middleware.Middleware) *gin.Engine {
	if cfg.Logging.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(mw.Recovery())
	router.Use(middleware.RequestID())
	router.Use(mw.Logger())
	router.Use(mw.SecurityHeaders())
	router.Use(mw.CORS())
	router.Use(mw.Metrics())
	router.Use(mw.Tracing())
	router.Use(mw.RateLimit())

	return router
}

// registerRoutes registra as rotas da API. Login e saúde são públicas; todo
// o CRUD exige token.
func registerRoutes(
	router *gin.Engine,
	mw *middleware.Middleware,
	authHandler *handlers.AuthHandler,
	tecnicoHandler *handlers.TecnicoHandler,
	clienteHandler *handlers.ClienteHandler,
	chamadoHandler *handlers.ChamadoHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.POST("/login", authHandler.Login)
	router.GET("/health", healthHandler.Liveness)
	router.GET("/health/ready", healthHandler.Readiness)

	tecnicos := router.Group("/tecnicos", mw.Authenticate)
	{
		tecnicos.GET("", tecnicoHandler.FindAll)
		tecnicos.GET("/:id", tecnicoHandler.FindByID)
		tecnicos.POST("", tecnicoHandler.Create)
		tecnicos.PUT("/:id", tecnicoHandler.Update)
		tecnicos.DELETE("/:id", tecnicoHandler.Delete)
	}

	clientes := router.Group("/clientes", mw.Authenticate)
	{
		clientes.GET("", clienteHandler.FindAll)
		clientes.GET("/:id", clienteHandler.FindByID)
		clientes.POST("", clienteHandler.Create)
		clientes.PUT("/:id", clienteHandler.Update)
		clientes.DELETE("/:id", clienteHandler.Delete)
	}

	chamados := router.Group("/chamados", mw.Authenticate)
	{
		chamados.GET("", chamadoHandler.FindAll)
		chamados.GET("/:id", chamadoHandler.FindByID)
		chamados.POST("", chamadoHandler.Create)
		chamados.PUT("/:id", chamadoHandler.Update)
		chamados.DELETE("/:id", chamadoHandler.Delete)
	}
}
