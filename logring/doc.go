// Package logring keeps the last N log lines in memory for tail-style
// diagnostics: a slog.Handler backed by a fixed-capacity ring.
//
// # Overview
//
// The handler formats every record as one line,
//
//	15:04:05.000 [I] (consumer): connected url=nats://localhost:4222
//
// and pushes it into a ring.Buffer[string], overwriting the oldest line
// when full. Tail and Lines return copies for HTTP endpoints or crash
// reports; the process keeps a bounded, allocation-predictable window of
// its own recent activity without any log shipping.
//
// # Quick Start
//
//	handler, err := logring.New("consumer", 512)
//	if err != nil {
//		return err
//	}
//	logger := slog.New(handler)
//
//	logger.Info("connected", "url", url)
//	recent := handler.Tail(50)
//
// Fan out to stderr as well by pairing the handler with a sink:
//
//	logring.WithSink(func(line string) { fmt.Fprintln(os.Stderr, line) })
//
// # Runtime Controls
//
// The minimum level starts at slog.LevelInfo and can be changed with
// SetLevel. Disable drops records wholesale until Enable; both are atomic
// and safe from any goroutine. Retained lines survive a disable.
//
// # Threading
//
// The ring engine itself is single-goroutine; this handler is the package's
// example of wrapping it for shared use. A mutex serializes all ring access,
// so one handler may back loggers on many goroutines. Level letters are
// D, I, W and E for debug, info, warn and error.
package logring
