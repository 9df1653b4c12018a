package calculation

import (
	"github.com/retsim/genreturns/internal/domain"
	"github.com/retsim/genreturns/pkg/timeutil"
)

// Engine orchestrates one generation pass: resolve the grid, scale the
// annual targets, draw the samples, and optionally compound them. The
// whole pass is a single synchronous computation with cost O(num_points).
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// Generate runs the full pipeline for a request. All configuration errors
// surface before any sampling occurs; once sampling starts the operation
// cannot fail.
func (e *Engine) Generate(req *domain.GenerationRequest) (*domain.RunResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	grid, err := ResolveGrid(req.NumPoints, req.Time)
	if err != nil {
		return nil, err
	}
	params, err := IntervalParams(grid, req.YearlyMean, req.YearlyStddev)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("resolved grid: interval=%gs points=%d span=%s",
		grid.IntervalSeconds, grid.NumPoints, timeutil.FormatSeconds(grid.TotalSeconds()))
	e.Logger.Debugf("per-interval params: mean_log=%g stddev_log=%g", params.MeanLog, params.StddevLog)

	sampler := NewSampler(req.Seed)
	series := sampler.Draw(params, grid.NumPoints)
	if req.Accumulate {
		series = Accumulate(series, req.StartValue, req.Leverage)
	}

	stats := Summarize(series)
	e.Logger.Debugf("series stats: count=%d mean=%s stddev=%s min=%s max=%s final=%s",
		stats.Count, stats.Mean.StringFixed(8), stats.StdDev.StringFixed(8),
		stats.Min.StringFixed(8), stats.Max.StringFixed(8), stats.Final.StringFixed(8))

	return &domain.RunResult{
		Grid:        grid,
		Params:      params,
		Accumulated: req.Accumulate,
		Seed:        req.Seed,
		Series:      series,
	}, nil
}
