package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"regguard/internal/audit"
	"regguard/internal/sanctions/cache"
	"regguard/internal/sanctions/match"
	"regguard/internal/sanctions/metrics"
	"regguard/internal/sanctions/models"
	"regguard/internal/sanctions/report"
	"regguard/pkg/platform/sentinel"
)

// DefaultThreshold is the fuzzy cutoff used when a caller supplies none.
const DefaultThreshold = 85

// DatasetSource yields the current watchlist snapshot.
type DatasetSource interface {
	Get(ctx context.Context) (cache.Snapshot, error)
}

// Checker is the engine facade the agent layer calls.
type Checker struct {
	source  DatasetSource
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   *audit.Publisher
}

type Option func(*Checker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

func WithAudit(p *audit.Publisher) Option {
	return func(c *Checker) {
		c.audit = p
	}
}

func New(source DatasetSource, opts ...Option) (*Checker, error) {
	if source == nil {
		return nil, fmt.Errorf("dataset source is required")
	}
	c := &Checker{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CheckName screens a name against the watchlist and returns the rendered
// report. Environmental failures come back as a failure report, not an error;
// the only hard failure is an empty name, which signals a caller bug.
func (c *Checker) CheckName(ctx context.Context, name string, fuzzyMode bool, threshold int) (string, error) {
	start := time.Now()

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be empty", sentinel.ErrInvalidInput)
	}

	mode := models.ModeExact
	if fuzzyMode {
		mode = models.ModeFuzzy
	}
	threshold = clampThreshold(threshold)
	c.metrics.Check(mode.String())

	snap, err := c.source.Get(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "sanctions dataset unavailable", "error", err)
		c.metrics.Outcome(audit.OutcomeUnavailable)
		c.emit(ctx, audit.Event{
			Query:     name,
			Mode:      mode.String(),
			Threshold: threshold,
			Outcome:   audit.OutcomeUnavailable,
		})
		return report.RenderFailure(err), nil
	}

	candidates, err := match.Search(snap.Dataset, name, mode, threshold)
	if err != nil {
		return "", err
	}

	outcome := audit.OutcomeNoMatch
	if len(candidates) > 0 {
		outcome = audit.OutcomeMatch
	}
	c.metrics.Outcome(outcome)
	c.metrics.ObserveCheckDuration(time.Since(start).Seconds())
	c.emit(ctx, audit.Event{
		Query:     name,
		Mode:      mode.String(),
		Threshold: threshold,
		Matches:   len(candidates),
		Stale:     snap.Stale,
		Outcome:   outcome,
	})

	c.logger.InfoContext(ctx, "sanctions check completed",
		"mode", mode.String(),
		"threshold", threshold,
		"matches", len(candidates),
		"stale_data", snap.Stale,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report.Render(candidates, name, mode, snap.Dataset.PublicationDate), nil
}

func (c *Checker) emit(ctx context.Context, event audit.Event) {
	if c.audit == nil {
		return
	}
	if err := c.audit.Emit(ctx, event); err != nil {
		c.logger.WarnContext(ctx, "audit emit failed", "error", err)
	}
}

// clampThreshold keeps the score invariant (0 <= threshold <= score <= 100)
// intact for out-of-range caller values.
func clampThreshold(threshold int) int {
	if threshold < 0 {
		return 0
	}
	if threshold > 100 {
		return 100
	}
	return threshold
}
