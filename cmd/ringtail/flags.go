package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	NATSURL         string
	Subject         string
	Capacity        int
	SlotWidth       int
	Listen          string
	MetricsPort     int
	LogLevel        string
	LogFormat       string
	LogTail         int
	ShutdownTimeout time.Duration
	ShowVersion     bool
	ShowHelp        bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.NATSURL, "nats-url",
		getEnv("RINGTAIL_NATS_URL", nats.DefaultURL),
		"NATS server URL (env: RINGTAIL_NATS_URL)")

	flag.StringVar(&cfg.Subject, "subject",
		getEnv("RINGTAIL_SUBJECT", "events.>"),
		"NATS subject to tail, wildcards allowed (env: RINGTAIL_SUBJECT)")

	flag.IntVar(&cfg.Capacity, "capacity",
		getEnvInt("RINGTAIL_CAPACITY", 512),
		"Number of retained message lines (env: RINGTAIL_CAPACITY)")

	flag.IntVar(&cfg.SlotWidth, "slot-width",
		getEnvInt("RINGTAIL_SLOT_WIDTH", 256),
		"Bytes per line slot including terminator (env: RINGTAIL_SLOT_WIDTH)")

	flag.StringVar(&cfg.Listen, "listen",
		getEnv("RINGTAIL_LISTEN", ":8080"),
		"HTTP listen address for tail endpoints (env: RINGTAIL_LISTEN)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("RINGTAIL_METRICS_PORT", 9090),
		"Prometheus metrics port, 0 to disable (env: RINGTAIL_METRICS_PORT)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("RINGTAIL_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: RINGTAIL_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("RINGTAIL_LOG_FORMAT", "json"),
		"Log format: json, text (env: RINGTAIL_LOG_FORMAT)")

	flag.IntVar(&cfg.LogTail, "log-tail",
		getEnvInt("RINGTAIL_LOG_TAIL", 256),
		"Number of own log lines retained for /logs (env: RINGTAIL_LOG_TAIL)")

	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout",
		getEnvDuration("RINGTAIL_SHUTDOWN_TIMEOUT", 10*time.Second),
		"Graceful shutdown timeout (env: RINGTAIL_SHUTDOWN_TIMEOUT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.NATSURL == "" {
		return fmt.Errorf("nats-url must not be empty")
	}

	if strings.TrimSpace(cfg.Subject) == "" {
		return fmt.Errorf("subject must not be empty")
	}

	if cfg.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d", cfg.Capacity)
	}

	// One byte per slot is the terminator; demand room for text
	if cfg.SlotWidth < 2 {
		return fmt.Errorf("invalid slot width: %d", cfg.SlotWidth)
	}

	if cfg.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.LogTail <= 0 {
		return fmt.Errorf("invalid log tail size: %d", cfg.LogTail)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - bounded NATS message tail

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Tail all sensor subjects with a 1024-line window
  %s --subject='sensors.>' --capacity=1024

  # Wider slots for verbose payloads, text logs
  %s --slot-width=512 --log-format=text --log-level=debug

  # Run with environment variables
  export RINGTAIL_NATS_URL=nats://nats.internal:4222
  export RINGTAIL_SUBJECT='orders.*'
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
