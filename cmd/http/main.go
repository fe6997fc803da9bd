package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentalbridge-service/internal/app/config"
	"dentalbridge-service/internal/app/contracts"
	"dentalbridge-service/internal/app/delivery/http/middlewares"
	"dentalbridge-service/internal/app/delivery/http/routers"
	"dentalbridge-service/internal/app/delivery/mcptools"
	"dentalbridge-service/internal/app/drivers/database"
	"dentalbridge-service/internal/app/drivers/logger"
	"dentalbridge-service/internal/app/services/charts"
	"dentalbridge-service/internal/app/services/opendental"
	"dentalbridge-service/internal/app/services/patients"
	"dentalbridge-service/internal/app/services/reports"
	"dentalbridge-service/internal/app/services/shared/audit"
	"dentalbridge-service/internal/app/services/shared/ratelimiter"
	sharedRedis "dentalbridge-service/internal/app/services/shared/redis"
	"dentalbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}

	mcpServer := bootstrapingTheApp(bootstrap)

	switch internalConfig.App.Transport {
	case constvars.TransportStdio:
		runStdio(mcpServer, zapLogger)
	default:
		runHTTP(bootstrap, mcpServer)
	}
}

// bootstrapingTheApp wires the backend client, the tool usecases and the
// supporting repositories into the MCP server.
func bootstrapingTheApp(bootstrap *config.Bootstrap) *server.MCPServer {
	openDentalClient := opendental.NewOpenDentalClient(bootstrap.InternalConfig, bootstrap.Logger)

	patientUsecase := patients.NewPatientUsecase(openDentalClient, bootstrap.Logger)
	chartUsecase := charts.NewChartUsecase(openDentalClient, bootstrap.Logger)
	reportUsecase := reports.NewReportUsecase(openDentalClient, bootstrap.Logger)

	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = sharedRedis.NewRedisRepository(bootstrap.Redis)
	}
	limiter := ratelimiter.NewToolRateLimiter(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)

	var auditRepository contracts.AuditRepository
	if bootstrap.InternalConfig.Audit.Enabled && bootstrap.MongoDB != nil {
		auditRepository = audit.NewAuditMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	}

	registry := mcptools.NewRegistry(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		patientUsecase,
		chartUsecase,
		reportUsecase,
		limiter,
		auditRepository,
	)

	mcpServer := server.NewMCPServer(
		bootstrap.InternalConfig.App.Name,
		bootstrap.InternalConfig.App.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registry.Attach(mcpServer)

	mcpHandler := server.NewStreamableHTTPServer(mcpServer)
	m := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig.MCP.AuthSecret)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, m, mcpHandler, auditRepository)

	return mcpServer
}

func runStdio(mcpServer *server.MCPServer, zapLogger *zap.Logger) {
	zapLogger.Info("serving MCP over stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logrus.Fatalf("stdio server stopped: %v", err)
	}
}

func runHTTP(bootstrap *config.Bootstrap, _ *server.MCPServer) {
	httpServer := &http.Server{
		Addr:    bootstrap.InternalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		bootstrap.Logger.Info("http server listening",
			zap.String("address", bootstrap.InternalConfig.App.Port),
			zap.String("transport", bootstrap.InternalConfig.App.Transport),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("http server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	bootstrap.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(bootstrap.InternalConfig.App.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if bootstrap.MongoDB != nil {
		if err := bootstrap.MongoDB.Disconnect(shutdownCtx); err != nil {
			logrus.Errorf("mongo disconnect failed: %v", err)
		}
	}
	if bootstrap.Redis != nil {
		if err := bootstrap.Redis.Close(); err != nil {
			logrus.Errorf("redis close failed: %v", err)
		}
	}
}
