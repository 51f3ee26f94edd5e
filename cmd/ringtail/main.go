// Command ringtail tails a NATS subject into a bounded in-memory window
// and serves the retained lines over HTTP. Old messages fall off the back;
// memory stays fixed no matter how long the stream runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360/ringkit/logring"
	"github.com/c360/ringkit/metric"
	"github.com/c360/ringkit/ring"
)

const (
	// Version is the application version
	Version = "0.1.0"
	// BuildTime is set during build
	BuildTime = "dev"
	// appName is the application name
	appName = "ringtail"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\n%s\n", r, buf[:n])
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func initializeCLI() (*CLIConfig, bool) {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("%s %s (built %s)\n", appName, Version, BuildTime)
		return cfg, true
	}

	if cfg.ShowHelp {
		flag.Usage()
		return cfg, true
	}

	if err := validateFlags(cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	return cfg, false
}

func run() error {
	cfg, shouldExit := initializeCLI()
	if shouldExit {
		return nil
	}

	runID := uuid.NewString()
	registry := metric.NewMetricsRegistry()

	tail, err := logring.New(appName, cfg.LogTail,
		logring.WithLevel(parseLevel(cfg.LogLevel)),
		logring.WithMetrics(registry, metricsComponent),
	)
	if err != nil {
		return fmt.Errorf("log tail: %w", err)
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat, runID, tail)
	slog.SetDefault(logger)

	logger.Info("Starting ringtail",
		"nats_url", cfg.NATSURL,
		"subject", cfg.Subject,
		"capacity", cfg.Capacity,
		"slot_width", cfg.SlotWidth,
		"listen", cfg.Listen,
		"metrics_port", cfg.MetricsPort,
	)

	svcMetrics, err := newServiceMetrics(registry)
	if err != nil {
		return fmt.Errorf("service metrics: %w", err)
	}

	store, err := newTailStore(cfg.Capacity, cfg.SlotWidth,
		ring.WithMetrics[[]byte](registry, "tailstore"))
	if err != nil {
		return fmt.Errorf("tail store: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := connectNATS(ctx, cfg, svcMetrics, logger)
	if err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	defer conn.Close()

	cons := &consumer{
		conn:    conn,
		subject: cfg.Subject,
		store:   store,
		metrics: svcMetrics,
		logger:  logger,
	}

	httpSrv := newHTTPServer(cfg.Listen, cfg.Subject, store, tail, logger, cfg.ShutdownTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return cons.run(gctx) })
	g.Go(func() error { return httpSrv.run(gctx) })

	if cfg.MetricsPort > 0 {
		metricsSrv := metric.NewServer(cfg.MetricsPort, "/metrics", registry)
		g.Go(func() error {
			logger.Info("Metrics server listening", "addr", metricsSrv.Address())
			return metricsSrv.Start()
		})
		g.Go(func() error {
			<-gctx.Done()
			return metricsSrv.Stop()
		})
	}

	err = g.Wait()

	// Drain flushes buffered messages before the deferred Close.
	if derr := conn.Drain(); derr != nil {
		logger.Warn("NATS drain failed", "error", derr)
	}

	if err != nil {
		return err
	}

	logger.Info("Shutdown complete", "run_id", runID)
	return nil
}
