package proxy

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"proxypool-server/internal/infrastructure/metrics"
)

// Source produces raw candidate endpoints from one external provider.
// Implementations live in internal/infrastructure/source.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Endpoint, error)
}

// Manager coordinates refresh cycles: fetch from all sources, merge and
// dedupe, validate, then atomically swap the pool. At most one refresh
// runs at any instant; the periodic timer and manual triggers share the
// same guard.
type Manager struct {
	pool      *Pool
	sources   []Source
	validator *Validator

	fetchTimeout time.Duration
	interval     time.Duration

	// refreshMu is the single-slot Idle/Running guard. TryLock makes
	// contending refresh requests observable instead of queueing them.
	refreshMu sync.Mutex

	log zerolog.Logger
}

func NewManager(pool *Pool, sources []Source, validator *Validator, fetchTimeout, interval time.Duration, log zerolog.Logger) *Manager {
	return &Manager{
		pool:         pool,
		sources:      sources,
		validator:    validator,
		fetchTimeout: fetchTimeout,
		interval:     interval,
		log:          log.With().Str("component", "proxy-manager").Logger(),
	}
}

// Pool exposes read access to the managed pool.
func (m *Manager) Pool() *Pool {
	return m.pool
}

// Refresh runs one fetch -> validate -> replace cycle. If a refresh is
// already running, a forced request gets ErrRefreshInProgress and a timer
// tick is skipped with Triggered=false. The guard is released on every
// exit path, so the manager always returns to idle.
func (m *Manager) Refresh(ctx context.Context, force bool) (RefreshResult, error) {
	if !m.refreshMu.TryLock() {
		if force {
			return RefreshResult{}, ErrRefreshInProgress
		}
		m.log.Debug().Msg("refresh tick skipped, cycle already running")
		return RefreshResult{Triggered: false}, nil
	}
	defer m.refreshMu.Unlock()

	trigger := "timer"
	if force {
		trigger = "manual"
	}

	start := time.Now()
	candidates := m.fetchCandidates(ctx)
	valid := m.validator.Validate(ctx, candidates)
	m.pool.Replace(valid, len(candidates))

	status := "ok"
	if len(candidates) == 0 {
		// All sources came back empty; keep serving an empty pool and
		// let /stats and the metrics expose it.
		status = "empty"
		m.log.Warn().Msg("refresh cycle produced no candidates")
	}
	metrics.RecordRefresh(trigger, status, time.Since(start).Seconds())
	metrics.SetPoolSize(len(valid))
	metrics.RecordValidation(len(valid), len(candidates)-len(valid))

	m.log.Info().
		Str("trigger", trigger).
		Int("fetched", len(candidates)).
		Int("valid", len(valid)).
		Dur("elapsed", time.Since(start)).
		Msg("refresh cycle finished")

	return RefreshResult{Triggered: true, ValidCount: len(valid)}, nil
}

// fetchCandidates queries every source concurrently. A failing source
// contributes nothing; the cycle continues with whatever succeeded.
func (m *Manager) fetchCandidates(ctx context.Context) []Endpoint {
	fetched := make([][]Endpoint, len(m.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.sources {
		i, src := i, src
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, m.fetchTimeout)
			defer cancel()

			endpoints, err := src.Fetch(fetchCtx)
			if err != nil {
				m.log.Warn().Err(err).Str("source", src.Name()).Msg("source fetch failed")
				return nil
			}
			metrics.RecordCandidates(src.Name(), len(endpoints))
			fetched[i] = endpoints
			return nil
		})
	}
	_ = g.Wait()

	var merged []Endpoint
	for _, endpoints := range fetched {
		merged = append(merged, endpoints...)
	}
	return Dedupe(merged)
}

// RunPeriodic fires refresh cycles on the configured interval until the
// context is cancelled. A failed or skipped cycle never stops the loop.
func (m *Manager) RunPeriodic(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.log.Info().Dur("interval", m.interval).Msg("periodic refresh started")
	for {
		select {
		case <-ctx.Done():
			m.log.Info().Msg("periodic refresh stopped")
			return
		case <-ticker.C:
			if _, err := m.Refresh(ctx, false); err != nil {
				m.log.Error().Err(err).Msg("periodic refresh cycle failed")
			}
		}
	}
}
