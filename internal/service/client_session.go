package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
)

// Session is the editing surface of the client: it holds the effective
// configuration in memory, applies edits immediately, and defers persistence
// through the [AutosaveJob] so a burst of edits results in a single save.
type Session struct {
	config   ConfigService
	autosave AutosaveJob

	logger *logger.Logger

	mu      sync.Mutex
	symbols []models.Symbol
	charts  []models.ChartInterval
	opts    models.ChartOptions
}

func NewSession(config ConfigService, autosave AutosaveJob, logger *logger.Logger) *Session {
	return &Session{
		config:   config,
		autosave: autosave,
		logger:   logger,
	}
}

// Open loads the effective configuration into the session.
func (s *Session) Open(ctx context.Context) {
	effective := s.config.GetAllConfig(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = effective.Symbols
	s.charts = effective.Charts
	s.opts = effective.ChartConfig
}

// Symbols returns a copy of the in-memory symbol list.
func (s *Session) Symbols() []models.Symbol {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Symbol(nil), s.symbols...)
}

// Charts returns a copy of the in-memory interval list.
func (s *Session) Charts() []models.ChartInterval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChartInterval(nil), s.charts...)
}

// Options returns the in-memory global chart options.
func (s *Session) Options() models.ChartOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// SetSymbols replaces the in-memory symbol list and schedules a deferred
// save. Returns [ErrDuplicateSymbol] when two entries carry the same ticker;
// the in-memory state is left intact in that case.
func (s *Session) SetSymbols(symbols []models.Symbol) error {
	if ticker := models.DuplicateTicker(symbols); ticker != "" {
		s.logger.Warn().Str("ticker", ticker).Msg("duplicate ticker rejected")
		return ErrDuplicateSymbol
	}

	s.mu.Lock()
	s.symbols = append([]models.Symbol(nil), symbols...)
	s.mu.Unlock()

	s.scheduleSave()
	return nil
}

// SetCharts replaces the in-memory interval list and schedules a deferred save.
func (s *Session) SetCharts(charts []models.ChartInterval) {
	s.mu.Lock()
	s.charts = append([]models.ChartInterval(nil), charts...)
	s.mu.Unlock()

	s.scheduleSave()
}

// SetOptions replaces the in-memory global chart options and schedules a
// deferred save.
func (s *Session) SetOptions(opts models.ChartOptions) {
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()

	s.scheduleSave()
}

// Reset drops any pending save, resets persisted state to the built-in
// defaults, and reloads the session from the result. The autosave job stays
// armed so later edits are still persisted.
func (s *Session) Reset(ctx context.Context) {
	s.autosave.Cancel()

	document := s.config.ResetToDefaults(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols = document.Symbols
	s.charts = document.Charts
	if document.ChartConfig != nil {
		s.opts = *document.ChartConfig
	}
}

// Close cancels any pending save without flushing it.
func (s *Session) Close() {
	s.autosave.Stop()
}

func (s *Session) scheduleSave() {
	s.mu.Lock()
	symbols := append([]models.Symbol(nil), s.symbols...)
	charts := append([]models.ChartInterval(nil), s.charts...)
	opts := s.opts
	s.mu.Unlock()

	s.autosave.Schedule(func() {
		ctx := context.Background()
		if _, err := s.config.SaveSymbols(ctx, symbols); err != nil {
			s.logger.Err(err).Str("func", "*Session.scheduleSave").Msg("error saving symbols")
		}
		s.config.SaveCharts(ctx, charts)
		s.config.SaveChartConfig(ctx, opts)
	})
}
