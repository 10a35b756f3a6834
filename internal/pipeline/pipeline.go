// Package pipeline feeds one bar stream through an ordered set of named indicators.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/datasource"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/writer"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/indicator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Stats summarises one run.
type Stats struct {
	RunID    string
	Bars     int
	Skipped  int
	Pending  int
	Pivots   int
	Duration time.Duration
}

// Pipeline owns one instance of every configured indicator. It is not safe for
// concurrent use; bars are processed one at a time in stream order.
type Pipeline struct {
	runID   string
	symbol  string
	stages  []*stage
	columns []string
	logger  *logger.Logger
	metrics *Metrics
	onBar   func()
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress registers fn to be called after every input row, including
// rejected ones.
func WithProgress(fn func()) Option {
	return func(p *Pipeline) {
		p.onBar = fn
	}
}

// WithMetrics records run counters in m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// New builds every indicator declared in cfg, in order, through registry.
func New(cfg *config.Config, registry indicator.Registry, log *logger.Logger, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		runID:  uuid.New().String(),
		symbol: cfg.Symbol,
		logger: log,
		onBar:  func() {},
	}

	for _, decl := range cfg.Indicators {
		ind, err := registry.Build(decl.Type, decl.Params())
		if err != nil {
			return nil, errors.Wrapf(errors.GetCode(err), err, "failed to build indicator %s", decl.Name)
		}

		s, err := newStage(decl.Name, ind)
		if err != nil {
			return nil, err
		}

		p.stages = append(p.stages, s)
		p.columns = append(p.columns, s.columns...)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// RunID identifies this pipeline in logs.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Columns returns the output column names in row order.
func (p *Pipeline) Columns() []string {
	return p.columns
}

// Step feeds bar to every indicator in declaration order and returns the row.
func (p *Pipeline) Step(bar types.MarketData) types.IndicatorRow {
	row := types.IndicatorRow{
		Time:   bar.Time,
		Symbol: bar.Symbol,
		Values: make([]optional.Option[decimal.Decimal], len(p.columns)),
	}

	offset := 0
	for _, s := range p.stages {
		s.step(bar, row.Values[offset:offset+len(s.columns)])
		offset += len(s.columns)
	}

	return row
}

// Reset returns every indicator to its freshly constructed state.
func (p *Pipeline) Reset() {
	for _, s := range p.stages {
		s.indicator.Reset()
	}
}

// Run streams every bar of source for the configured symbol through the pipeline
// and writes one row per accepted bar. Invalid bars are logged and skipped; a
// source or writer failure stops the run, and so does a source without a single
// bar for the symbol.
func (p *Pipeline) Run(ctx context.Context, source datasource.MarketDataSource, out writer.RowWriter) (Stats, error) {
	start := time.Now()
	stats := Stats{RunID: p.runID}

	log := p.logger.With(zap.String("run_id", p.runID), zap.String("symbol", p.symbol))
	log.Info("pipeline started", zap.Strings("columns", p.columns))

	if err := out.WriteHeader(p.columns); err != nil {
		return stats, err
	}

	for bar, err := range source.Iterator(p.symbol) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, ctxErr
		}

		if err != nil {
			if !errors.HasCode(err, errors.ErrCodeInvalidBar) {
				return stats, err
			}

			stats.Skipped++
			if p.metrics != nil {
				p.metrics.barsSkipped.WithLabelValues(p.symbol).Inc()
			}

			log.Warn("skipping invalid bar", zap.Time("time", bar.Time), zap.Error(err))
			p.onBar()

			continue
		}

		row := p.Step(bar)
		p.recordPivots(log, bar, row, &stats)

		if row.Pending() {
			stats.Pending++
		}

		if err := out.WriteRow(row); err != nil {
			return stats, err
		}

		stats.Bars++
		if p.metrics != nil {
			p.metrics.barsProcessed.WithLabelValues(p.symbol).Inc()
		}

		p.onBar()
	}

	stats.Duration = time.Since(start)
	if stats.Bars == 0 && stats.Skipped == 0 {
		return stats, errors.Newf(errors.ErrCodeDataNotFound, "no bars found for symbol %q", p.symbol)
	}

	log.Info("pipeline finished",
		zap.Int("bars", stats.Bars),
		zap.Int("skipped", stats.Skipped),
		zap.Int("pivots", stats.Pivots),
		zap.Duration("duration", stats.Duration),
	)

	return stats, nil
}

func (p *Pipeline) recordPivots(log *zap.Logger, bar types.MarketData, row types.IndicatorRow, stats *Stats) {
	for _, s := range p.stages {
		pp, ok := s.indicator.(*indicator.PivotPoints)
		if !ok {
			continue
		}

		for _, pivot := range pp.Found() {
			stats.Pivots++
			if p.metrics != nil {
				p.metrics.pivots.WithLabelValues(p.symbol, s.name, pivot.Type.String()).Inc()
			}

			log.Debug("pivot detected",
				zap.String("indicator", s.name),
				zap.Stringer("type", pivot.Type),
				zap.Stringer("price", pivot.Price),
				zap.Time("time", row.Time),
				zap.Stringer("bar_close", bar.Close),
			)
		}
	}
}
