// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/castlemill/tms-proxy/config"
	"github.com/castlemill/tms-proxy/internal/http"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/castlemill/tms-proxy/internal/middleware"
	"github.com/castlemill/tms-proxy/internal/repository"
	"github.com/castlemill/tms-proxy/internal/service"
	"github.com/castlemill/tms-proxy/internal/upstream"
	"github.com/gin-gonic/gin"
)

// App holds the wired application and the resources it owns.
type App struct {
	Router *gin.Engine

	auditRecorder *middleware.AuditRecorder
	mongo         *repository.MongoDB
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	app := &App{}
	healthHandler := http.NewHealthHandler()

	if cfg.Audit.Enabled {
		mongo, recorder, err := initializeAudit(cfg.Audit)
		if err != nil {
			return nil, fmt.Errorf("initialize audit store: %w", err)
		}
		app.mongo = mongo
		app.auditRecorder = recorder
		healthHandler.RegisterChecker("audit_store", mongoChecker{mongo: mongo})
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.MaxBodyBytes = cfg.Server.MaxBodyBytes
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.Fallbacks = middleware.Fallbacks{
		Token:     cfg.Upstream.FallbackToken,
		ProjectID: cfg.Upstream.FallbackProjectID,
	}
	routerCfg.API = client
	routerCfg.ProjectService = service.NewProjectService(client)
	routerCfg.TranslationService = service.NewTranslationService(client)
	routerCfg.AuditRecorder = app.auditRecorder

	app.Router = http.NewRouter(healthHandler, routerCfg)
	return app, nil
}

// initializeAudit connects the MongoDB audit store and starts the async
// recorder behind it.
func initializeAudit(cfg config.AuditConfig) (*repository.MongoDB, *middleware.AuditRecorder, error) {
	mongo, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongo.EnsureAuditTTL(ctx, cfg.EntriesTTL); err != nil {
		_ = mongo.Close(ctx)
		return nil, nil, err
	}

	auditService := service.NewAuditService(repository.NewAuditRepository(mongo))
	recorder := middleware.NewAuditRecorder(auditService, middleware.DefaultAuditRecorderConfig())

	log := logger.Logger()
	log.Info().
		Str("database", cfg.DatabaseName).
		Dur("entries_ttl", cfg.EntriesTTL).
		Msg("Audit trail enabled")
	return mongo, recorder, nil
}

// Shutdown releases the resources the app owns: the audit recorder drains its
// buffer before the store connection closes.
func (a *App) Shutdown(ctx context.Context) {
	a.auditRecorder.Shutdown()
	if a.mongo != nil {
		if err := a.mongo.Close(ctx); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Msg("Audit store close failed")
		}
	}
}

// mongoChecker adapts the audit store to the readiness probe.
type mongoChecker struct {
	mongo *repository.MongoDB
}

func (m mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.mongo.Client.Ping(ctx, nil)
}
