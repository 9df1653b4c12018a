package calculation

import (
	"github.com/retsim/genreturns/internal/domain"
)

// ResolveGrid derives the canonical sampling grid from the point count
// and the one supplied time parameter. Pure arithmetic, no randomness.
// The quotient is kept exact (no rounding to a whole-second grid) so
// downstream timestamp math stays consistent with the requested span.
func ResolveGrid(numPoints int, spec domain.TimeSpec) (domain.ResolvedGrid, error) {
	if numPoints < 1 {
		return domain.ResolvedGrid{}, domain.NewConfigError("num-points must be at least 1, got %d", numPoints)
	}
	if total, ok := spec.Total(); ok {
		if total <= 0 {
			return domain.ResolvedGrid{}, domain.NewConfigError("total-seconds must be positive, got %g", total)
		}
		return domain.ResolvedGrid{
			IntervalSeconds: total / float64(numPoints),
			NumPoints:       numPoints,
		}, nil
	}
	if interval, ok := spec.Interval(); ok {
		if interval <= 0 {
			return domain.ResolvedGrid{}, domain.NewConfigError("interval-seconds must be positive, got %g", interval)
		}
		return domain.ResolvedGrid{
			IntervalSeconds: interval,
			NumPoints:       numPoints,
		}, nil
	}
	return domain.ResolvedGrid{}, domain.NewConfigError("one of total-seconds or interval-seconds is required")
}
