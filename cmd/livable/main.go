package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/livable-cities/internal/adapter/file"
	kafkaadapter "github.com/couchcryptid/livable-cities/internal/adapter/kafka"
	"github.com/couchcryptid/livable-cities/internal/adapter/stdout"
	"github.com/couchcryptid/livable-cities/internal/config"
	"github.com/couchcryptid/livable-cities/internal/domain"
	"github.com/couchcryptid/livable-cities/internal/observability"
	"github.com/couchcryptid/livable-cities/internal/pipeline"
)

// pushTimeout bounds the metrics push, which runs after the run deadline.
const pushTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is normal; the environment is used as-is.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loaders := []pipeline.Loader{stdout.NewWriter(os.Stdout)}
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		loaders = append(loaders, writer)
		logger.Info("kafka sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	}

	p := pipeline.New(
		file.NewReader(cfg.CitiesPath, logger),
		pipeline.NewRanker(domain.TopN, logger),
		logger,
		metrics,
		loaders...,
	)

	runCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	_, runErr := p.Run(runCtx)
	if runErr != nil {
		logger.Error("ranking failed", "error", runErr, "dataset", cfg.CitiesPath)
	}

	if cfg.PushgatewayURL != "" {
		if err := pushMetrics(ctx, metrics, cfg.PushgatewayURL, cfg.PushJobName); err != nil {
			logger.Error("metrics push failed", "error", err)
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}

// pushMetrics delivers metrics even when the run itself hit its deadline or was
// interrupted, so failure counters still reach the Pushgateway.
func pushMetrics(ctx context.Context, metrics *observability.Metrics, url, job string) error {
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()
	return metrics.Push(pushCtx, url, job)
}
