package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslib/circulation-service/config"
	"github.com/campuslib/circulation-service/internal/handler"
	"github.com/campuslib/circulation-service/internal/notify"
	"github.com/campuslib/circulation-service/internal/repository"
	"github.com/campuslib/circulation-service/internal/server"
	"github.com/campuslib/circulation-service/internal/service"
	"github.com/campuslib/circulation-service/migrations"
	"github.com/campuslib/circulation-service/pkg/kafka"
	"github.com/campuslib/circulation-service/pkg/logger"
	"github.com/campuslib/circulation-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	identityRepo, err := repository.NewIdentityRepository(db, log)
	if err != nil {
		log.Fatal("identity repo", zap.Error(err))
	}
	inventoryRepo, err := repository.NewInventoryRepository(db, log)
	if err != nil {
		log.Fatal("inventory repo", zap.Error(err))
	}
	ledgerRepo, err := repository.NewLedgerRepository(db, log)
	if err != nil {
		log.Fatal("ledger repo", zap.Error(err))
	}

	var notifier service.Notifier = service.NopNotifier{}
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		notifier = notify.NewNotifier(producer, log)
	}

	registrySvc := service.NewRegistryService(identityRepo, ledgerRepo, notifier, log)
	inventorySvc := service.NewInventoryService(inventoryRepo, log)
	circulationSvc := service.NewCirculationService(ledgerRepo, identityRepo, notifier, cfg.Circulation.BorrowLimit, log)
	reconcilerSvc := service.NewReconcilerService(ledgerRepo, log)

	h := handler.New(registrySvc, inventorySvc, circulationSvc, reconcilerSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		return reconcilerSvc.Run(ctx, cfg.Circulation.ReconcileInterval)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("app stopped", zap.Error(err))
	}
	db.Close()
	log.Info("graceful shutdown finished")
}
