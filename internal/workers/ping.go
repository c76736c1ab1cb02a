package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chart-board/internal/adapter"
	"github.com/MKhiriev/go-chart-board/internal/logger"
)

// PingWorker periodically probes the backend health endpoint and logs
// connectivity transitions. The editing surface keeps working against the
// in-memory state either way; the log is the only place a user-facing client
// records that deferred saves are currently failing to reach the server.
type PingWorker struct {
	server   adapter.ServerAdapter
	interval time.Duration

	logger *logger.Logger

	once sync.Once
	stop chan struct{}
}

func NewPingWorker(server adapter.ServerAdapter, interval time.Duration, log *logger.Logger) *PingWorker {
	if interval <= 0 {
		interval = time.Minute
	}

	return &PingWorker{
		server:   server,
		interval: interval,
		logger:   log,
		stop:     make(chan struct{}),
	}
}

// Run starts the probe loop in a background goroutine and returns.
func (w *PingWorker) Run() {
	go w.loop()
}

// Stop terminates the probe loop. Safe to call more than once.
func (w *PingWorker) Stop() {
	w.once.Do(func() { close(w.stop) })
}

func (w *PingWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	reachable := w.probe()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			now := w.probe()
			if now != reachable {
				if now {
					w.logger.Info().Msg("server is reachable again")
				} else {
					w.logger.Warn().Msg("server is unreachable")
				}
				reachable = now
			}
		}
	}
}

func (w *PingWorker) probe() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.server.Ping(ctx); err != nil {
		w.logger.Debug().Err(err).Msg("health probe failed")
		return false
	}
	return true
}
