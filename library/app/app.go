package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gh215tth/QLTV-dart/library/config"
	"github.com/gh215tth/QLTV-dart/library/internal/handler"
	"github.com/gh215tth/QLTV-dart/library/internal/repository"
	"github.com/gh215tth/QLTV-dart/library/internal/server"
	"github.com/gh215tth/QLTV-dart/library/internal/service"
	"github.com/gh215tth/QLTV-dart/library/migrations"
	"github.com/gh215tth/QLTV-dart/pkg/circuit_breaker"
	"github.com/gh215tth/QLTV-dart/pkg/kafka"
	"github.com/gh215tth/QLTV-dart/pkg/logger"
	"github.com/gh215tth/QLTV-dart/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) error {
	log, err := logger.NewLogger(cfg.Log, "library")
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}

	publisher, closePublisher, err := newPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer closePublisher()

	svc := service.NewService(repo, log, service.WithPublisher(publisher))
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		return errors.Wrap(err, "server")
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// newPublisher falls back to a no-op publisher when no brokers are configured.
func newPublisher(cfg *config.Config, log *zap.Logger) (kafka.Publisher, func(), error) {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka disabled, loan events are dropped")
		return kafka.NewNopPublisher(), func() {}, nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka.NewProducer")
	}
	cb := circuit_breaker.New(
		cfg.Publisher.RecordLength,
		cfg.Publisher.Timeout,
		cfg.Publisher.Percentile,
		cfg.Publisher.RecoveryRequests,
	)
	closeFn := func() {
		if err := producer.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
	return kafka.NewPublisher(producer, cfg.Publisher.Topic, cb), closeFn, nil
}
