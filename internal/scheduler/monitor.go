package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/upnotif/internal/domain"
	"github.com/hamed0406/upnotif/internal/ledger"
	"github.com/hamed0406/upnotif/internal/notify"
	"github.com/hamed0406/upnotif/internal/probe"
)

// Monitor probes a fixed list of endpoints and notifies on status changes.
// All of its state is touched only from the goroutine calling Run.
type Monitor struct {
	Logger    *zap.Logger
	Checker   probe.Checker
	Notifier  notify.Notifier
	Endpoints []string
	Interval  time.Duration
	TestMode  bool

	ledger *ledger.Ledger
}

func NewMonitor(
	logger *zap.Logger,
	checker probe.Checker,
	notifier notify.Notifier,
	endpoints []string,
	interval time.Duration,
	testMode bool,
) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		Logger:    logger,
		Checker:   checker,
		Notifier:  notifier,
		Endpoints: endpoints,
		Interval:  interval,
		TestMode:  testMode,
		ledger:    ledger.New(),
	}
}

// Run reports the initial status, then checks every Interval until ctx is
// cancelled. The first tick comes one full interval after startup.
//
// A cycle that outlasts Interval delays the next one; missed ticks are
// dropped, not queued.
func (m *Monitor) Run(ctx context.Context) {
	m.ReportInitial(ctx)

	m.Logger.Info("monitoring",
		zap.Int("urls", len(m.Endpoints)),
		zap.Duration("interval", m.Interval),
	)

	t := time.NewTicker(m.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Logger.Info("monitor_stopped")
			return
		case <-t.C:
			m.RunCycle(ctx)
		}
	}
}

// CheckAll probes every endpoint in order and records each verdict. If ctx
// is cancelled mid-cycle it stops with ctx.Err() before recording the result
// that the cancellation spoiled.
func (m *Monitor) CheckAll(ctx context.Context) ([]domain.Transition, error) {
	out := make([]domain.Transition, 0, len(m.Endpoints))
	for _, ep := range m.Endpoints {
		v, res := probe.Classify(ctx, m.Checker, ep)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.Logger.Debug("checked",
			zap.String("url", ep),
			zap.Stringer("status", v),
			zap.Int("http_status", res.StatusCode),
			zap.Float64("latency_ms", res.LatencyMS),
			zap.String("reason", res.Message),
		)
		if res.StatusCode == 0 && m.Logger.Core().Enabled(zap.DebugLevel) {
			dns := probe.Diagnose(ctx, ep)
			m.Logger.Debug("dns_check",
				zap.String("url", ep),
				zap.String("host", dns.Host),
				zap.String("class", dns.Class),
				zap.String("resolver_error", dns.ResolverError),
			)
		}
		out = append(out, domain.Transition{
			Endpoint: ep,
			Verdict:  v,
			Changed:  m.ledger.Evaluate(ep, v),
		})
	}
	return out, nil
}

// ReportInitial runs the startup cycle and always sends the full snapshot.
func (m *Monitor) ReportInitial(ctx context.Context) {
	log := m.Logger.With(zap.String("cycle_id", uuid.NewString()))
	log.Info("monitor_started")

	results, err := m.CheckAll(ctx)
	if err != nil {
		log.Info("cycle_abandoned", zap.Error(err))
		return
	}
	for _, r := range results {
		log.Info(statusLine(r), zap.String("url", r.Endpoint), zap.Stringer("status", r.Verdict))
	}

	if err := m.Notifier.Send(ctx, startupMessage(results)); err != nil {
		if m.TestMode {
			log.Error("notify_failed", zap.String("detail", "failed to log initial status"), zap.Error(err))
		} else {
			log.Error("notify_failed", zap.String("detail", "failed to send initial status to Slack"), zap.Error(err))
		}
	}
}

// RunCycle runs one steady-state cycle. It notifies only when at least one
// endpoint changed, and reports whether it did.
func (m *Monitor) RunCycle(ctx context.Context) bool {
	log := m.Logger.With(zap.String("cycle_id", uuid.NewString()))

	results, err := m.CheckAll(ctx)
	if err != nil {
		log.Info("cycle_abandoned", zap.Error(err))
		return false
	}
	var changed []domain.Transition
	for _, r := range results {
		if !r.Changed {
			continue
		}
		changed = append(changed, r)
		log.Info("status_change",
			zap.String("url", r.Endpoint),
			zap.Stringer("status", r.Verdict),
			zap.String("line", changeLine(r)),
		)
	}
	if len(changed) == 0 {
		return false
	}

	if err := m.Notifier.Send(ctx, changesMessage(changed)); err != nil {
		if m.TestMode {
			log.Error("notify_failed", zap.String("detail", "failed to log status change"), zap.Error(err))
		} else {
			log.Error("notify_failed", zap.String("detail", "failed to send status change to Slack"), zap.Error(err))
		}
	}
	return true
}

// Last returns the recorded verdict for endpoint.
func (m *Monitor) Last(endpoint string) (domain.Verdict, bool) {
	return m.ledger.Get(endpoint)
}
