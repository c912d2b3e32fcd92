package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	contactspb "github.com/aferraro/badge-scanner/gen/proto/contacts/v1"
	"github.com/aferraro/badge-scanner/internal/async"
	"github.com/aferraro/badge-scanner/internal/common"
	"github.com/aferraro/badge-scanner/internal/contacts"
	"github.com/aferraro/badge-scanner/internal/crm/hubspot"
	"github.com/aferraro/badge-scanner/internal/export"
	"github.com/aferraro/badge-scanner/internal/groups"
	"github.com/aferraro/badge-scanner/internal/ocr"
	"github.com/aferraro/badge-scanner/internal/pipeline"
	repo "github.com/aferraro/badge-scanner/internal/repository"
	svc "github.com/aferraro/badge-scanner/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.RequestIDUnaryInterceptor(logger)),
	)

	contactsRepo := repo.NewContactRepository(entc, logger)
	groupsRepo := repo.NewGroupRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	var ocrClient *ocr.Client
	if cfg.OCR.APIURL != "" {
		ocrClient = ocr.NewClient(cfg.OCR, logger)
	}
	crmClient := hubspot.NewClient(cfg.HubSpot, logger)

	contactsService := contacts.NewService(contactsRepo, groupsRepo, crmClient, logger)
	groupsService := groups.NewService(groupsRepo, logger)
	exportService := export.NewService(contactsRepo, groupsRepo, logger)
	scanner := pipeline.NewScanner(logger, jobsRepo, contactsService, ocrClient)

	queue := async.NewScanQueue(scanner, logger,
		async.WithWorkers(cfg.Scan.Workers),
		async.WithQueueSize(cfg.Scan.QueueSize),
		async.WithProcessTimeout(cfg.Scan.JobTimeout),
	)

	contactspb.RegisterContactsServiceServer(grpcServer, svc.NewContactsServer(contactsService, groupsService, exportService, logger))
	contactspb.RegisterScanServiceServer(grpcServer, svc.NewScanServer(scanner, queue, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("badge-scanner listening", "addr", addr, "ocr_enabled", ocrClient != nil, "hubspot_enabled", crmClient.Enabled())
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
