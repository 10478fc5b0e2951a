package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/config"
	"github.com/za-dev/roomfinder-service/internal/handler"
	"github.com/za-dev/roomfinder-service/internal/repository"
	"github.com/za-dev/roomfinder-service/internal/server"
	"github.com/za-dev/roomfinder-service/internal/service"
	"github.com/za-dev/roomfinder-service/pkg/kafka"
	"github.com/za-dev/roomfinder-service/pkg/logger"
	"github.com/za-dev/roomfinder-service/pkg/s3"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "roomfinder")

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.DPanic("kafka producer", zap.Error(err))
		} else {
			producer = p
		}
	}

	repo := repository.NewRepository(log)
	svc := service.NewService(repo, log)
	hub := handler.NewHub(log)

	var bucket handler.Bucket
	if cfg.S3.Enabled() {
		b, err := s3.NewBucket(context.Background(), cfg.S3)
		if err != nil {
			log.DPanic("s3 bucket", zap.Error(err))
		} else {
			bucket = b
		}
	}

	h := handler.New(svc, bucket, hub, handler.NewEnqueuer(producer, cfg.Kafka.Topic), log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	log.Info("Graceful shutdown finished")
}
