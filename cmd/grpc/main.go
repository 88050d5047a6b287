package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-weighing-service/config"
	"github.com/fekuna/omnipos-weighing-service/internal/database"
	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/middleware"
	pb "github.com/fekuna/omnipos-weighing-service/internal/rpc/weighingv1"

	calcH "github.com/fekuna/omnipos-weighing-service/internal/calculator/handler"

	recH "github.com/fekuna/omnipos-weighing-service/internal/record/handler"
	recRepoPkg "github.com/fekuna/omnipos-weighing-service/internal/record/repository"
	recUCPkg "github.com/fekuna/omnipos-weighing-service/internal/record/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	bundle, err := i18n.NewBundle()
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	// 4. Open Database
	db, err := database.NewSQLite(&database.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMS: cfg.SQLite.BusyTimeoutMS,
		JournalMode:   cfg.SQLite.JournalMode,
	})
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Opened SQLite database", zap.String("path", cfg.SQLite.Path))

	// 5. Initialize Repositories
	recRepo := recRepoPkg.NewSQLiteRepository(db)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := recRepo.Initialize(initCtx); err != nil {
		appLogger.Fatal("Could not initialize schema", zap.Error(err))
	}

	// 6. Initialize UseCases
	recUC := recUCPkg.NewRecordUseCase(recRepo, recUCPkg.Options{
		ReportDir:          cfg.Report.OutputDir,
		TextFileName:       cfg.Report.TextFileName,
		PDFFileName:        cfg.Report.PDFFileName,
		BulkDeletePassword: cfg.Security.BulkDeletePassword,
	}, appLogger)

	// 7. Initialize Handlers
	recHandler := recH.NewRecordHandler(recUC, bundle, cfg.Server.Locale, appLogger)
	calcHandler := calcH.NewCalculatorHandler(bundle, cfg.Server.Locale, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
	)

	// Register Services
	pb.RegisterRecordServiceServer(grpcServer, recHandler)
	pb.RegisterCalculatorServiceServer(grpcServer, calcHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.RecordService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pb.CalculatorService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
