package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/pkg/retry"
	"github.com/c360/ringkit/ring"
	"github.com/c360/ringkit/strslot"
)

// formatLine renders one received message as a single tail line.
// Payloads are treated as text; binary subjects will render whatever
// bytes arrive, truncated later by the slot width.
func formatLine(ts time.Time, subject string, payload []byte) string {
	return ts.Format("15:04:05.000") + " " + subject + " " + string(payload)
}

// tailStore wraps a fixed-slot ring with a mutex so the NATS callback
// goroutine and HTTP handlers can share it. The ring itself is
// single-goroutine; all access funnels through these methods.
type tailStore struct {
	mu   sync.Mutex
	ring *strslot.Ring
}

func newTailStore(capacity, width int, opts ...ring.Option[[]byte]) (*tailStore, error) {
	r, err := strslot.New(capacity, width, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "tailStore", "New", "line ring")
	}
	return &tailStore{ring: r}, nil
}

func (s *tailStore) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring.Push(line)
}

// Tail returns up to n retained lines, oldest first. n <= 0 returns
// everything retained.
func (s *tailStore) Tail(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.ring.Snapshot()
	if n > 0 && n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines
}

func (s *tailStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Size()
}

func (s *tailStore) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Capacity()
}

func (s *tailStore) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Width()
}

func (s *tailStore) Summary() ring.StatsSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Stats().Summary()
}

// consumer subscribes to one subject and appends every message to the
// tail store until its context ends.
type consumer struct {
	conn    *nats.Conn
	subject string
	store   *tailStore
	metrics *serviceMetrics
	logger  *slog.Logger
}

func (c *consumer) run(ctx context.Context) error {
	sub, err := c.conn.Subscribe(c.subject, c.handleMessage)
	if err != nil {
		return errors.WrapTransient(err, "consumer", "run",
			fmt.Sprintf("subscribe to %s", c.subject))
	}

	// Round-trip so the subscription is live on the server before we
	// report it.
	if err := c.conn.Flush(); err != nil {
		return errors.WrapTransient(err, "consumer", "run", "flush subscription")
	}
	c.logger.Info("Subscribed", "subject", c.subject)

	<-ctx.Done()

	if err := sub.Unsubscribe(); err != nil {
		c.logger.Warn("Unsubscribe failed", "subject", c.subject, "error", err)
	}
	return nil
}

func (c *consumer) handleMessage(msg *nats.Msg) {
	start := time.Now()
	c.store.Append(formatLine(start, msg.Subject, msg.Data))
	c.metrics.recordMessage(time.Since(start))
	c.logger.Debug("Message appended", "subject", msg.Subject, "bytes", len(msg.Data))
}

// connectNATS establishes the connection with reconnection handlers that
// keep the connected gauge and logs current. The initial dial is retried
// with backoff so the tailer survives starting before its broker.
func connectNATS(ctx context.Context, cfg *CLIConfig, metrics *serviceMetrics, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := retry.DoWithResult(ctx, retry.Quick(), func() (*nats.Conn, error) {
		return nats.Connect(cfg.NATSURL,
			nats.Name(appName),
			nats.Timeout(5*time.Second),
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
			nats.PingInterval(30*time.Second),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				metrics.recordConnected(false)
				logger.Warn("NATS disconnected", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				metrics.recordConnected(true)
				metrics.recordReconnect()
				logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
			}),
			nats.ClosedHandler(func(_ *nats.Conn) {
				metrics.recordConnected(false)
				logger.Info("NATS connection closed")
			}),
			nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
				if sub != nil {
					logger.Error("NATS async error", "subject", sub.Subject, "error", err)
					return
				}
				logger.Error("NATS async error", "error", err)
			}),
		)
	})
	if err != nil {
		return nil, errors.WrapTransient(err, "consumer", "connectNATS",
			fmt.Sprintf("connect to %s", cfg.NATSURL))
	}

	metrics.recordConnected(true)
	logger.Info("Connected to NATS", "url", conn.ConnectedUrl())
	return conn, nil
}
