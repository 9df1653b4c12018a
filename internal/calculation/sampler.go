package calculation

import (
	"math"
	"math/rand"

	"github.com/retsim/genreturns/internal/domain"
	"github.com/retsim/genreturns/pkg/timeutil"
)

// IntervalParams converts annualized targets into per-interval log-return
// distribution parameters. Log-returns add under compounding, so the
// annual log-mean divides evenly across the intervals of a year, while
// volatility scales with the square root of time.
func IntervalParams(grid domain.ResolvedGrid, yearlyMean, yearlyStddev float64) (domain.PerIntervalParams, error) {
	if yearlyMean <= 0 {
		return domain.PerIntervalParams{}, domain.NewConfigError("yearly-mean must be a positive growth factor, got %g", yearlyMean)
	}
	if yearlyStddev < 0 {
		return domain.PerIntervalParams{}, domain.NewConfigError("yearly-stddev cannot be negative, got %g", yearlyStddev)
	}
	n := timeutil.IntervalsPerYear(grid.IntervalSeconds)
	return domain.PerIntervalParams{
		MeanLog:   math.Log(yearlyMean) / n,
		StddevLog: yearlyStddev / math.Sqrt(n),
	}, nil
}

// Sampler draws interval returns from a locally owned pseudo-random
// source. The source is owned by a single generation call and is never
// shared or reused across invocations.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a sampler. With a seed the draw sequence is
// bit-identical across runs; without one the source is seeded from
// entropy and runs are independent.
func NewSampler(seed *uint64) *Sampler {
	s := seedFunc()
	if seed != nil {
		s = int64(*seed)
	}
	return &Sampler{rng: rand.New(rand.NewSource(s))}
}

// Draw samples n independent interval returns: one normal log-return per
// interval, mapped to a simple return via exp(x)-1. Out-of-range results
// (NaN, infinities) are not trapped; they indicate a configuration whose
// numeric range exceeds representable bounds.
func (s *Sampler) Draw(params domain.PerIntervalParams, n int) domain.ReturnSeries {
	series := make(domain.ReturnSeries, n)
	for i := range series {
		x := s.rng.NormFloat64()*params.StddevLog + params.MeanLog
		series[i] = math.Exp(x) - 1
	}
	return series
}
