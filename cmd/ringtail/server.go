package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/logring"
	"github.com/c360/ringkit/ring"
)

// httpServer exposes the retained tail over HTTP.
//
//	GET /        index page
//	GET /tail    retained message lines, oldest first (?n= limits)
//	GET /stats   ring statistics as JSON
//	GET /logs    recent service log lines (?n= limits)
//	GET /healthz liveness probe
type httpServer struct {
	addr            string
	subject         string
	store           *tailStore
	logs            *logring.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
	server          *http.Server
}

type statsResponse struct {
	Subject  string            `json:"subject"`
	Capacity int               `json:"capacity"`
	Width    int               `json:"slot_width"`
	Size     int               `json:"size"`
	Ring     ring.StatsSummary `json:"ring"`
}

func newHTTPServer(
	addr, subject string,
	store *tailStore,
	logs *logring.Handler,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
) *httpServer {
	s := &httpServer{
		addr:            addr,
		subject:         subject,
		store:           store,
		logs:            logs,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/tail", s.handleTail)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/logs", s.handleLogs)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/", s.handleIndex)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// run serves until the context ends, then shuts down gracefully.
func (s *httpServer) run(ctx context.Context) error {
	s.logger.Info("HTTP server listening", "addr", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.WrapFatal(err, "httpServer", "run",
				fmt.Sprintf("serve on %s", s.addr))
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.WrapTransient(err, "httpServer", "run", "graceful shutdown")
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *httpServer) handleTail(w http.ResponseWriter, r *http.Request) {
	writeLines(w, s.store.Tail(lineLimit(r)))
}

func (s *httpServer) handleLogs(w http.ResponseWriter, r *http.Request) {
	var lines []string
	if n := lineLimit(r); n > 0 {
		lines = s.logs.Tail(n)
	} else {
		lines = s.logs.Lines()
	}
	writeLines(w, lines)
}

func (s *httpServer) handleStats(w http.ResponseWriter, _ *http.Request) {
	resp := statsResponse{
		Subject:  s.subject,
		Capacity: s.store.Capacity(),
		Width:    s.store.Width(),
		Size:     s.store.Size(),
		Ring:     s.store.Summary(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("Stats encoding failed", "error", err)
	}
}

func (s *httpServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *httpServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h1>%s</h1>
<p>Bounded tail of subject <code>%s</code>.</p>
<ul>
<li><a href="/tail">/tail</a> retained message lines</li>
<li><a href="/stats">/stats</a> ring statistics</li>
<li><a href="/logs">/logs</a> recent service logs</li>
<li><a href="/healthz">/healthz</a> liveness</li>
</ul>
</body>
</html>
`, appName, appName, html.EscapeString(s.subject))
}

// lineLimit reads the optional n query parameter. Zero means no limit.
func lineLimit(r *http.Request) int {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func writeLines(w http.ResponseWriter, lines []string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if len(lines) == 0 {
		return
	}
	_, _ = w.Write([]byte(strings.Join(lines, "\n") + "\n"))
}
