package calculation

import (
	"math"

	"github.com/retsim/genreturns/internal/domain"
)

// Accumulate compounds interval returns into a value path starting from
// start. The starting value itself is not emitted; element i is the value
// after interval i. Leverage adjusts each interval's growth factor per
// the requested mode.
func Accumulate(returns domain.ReturnSeries, start float64, lev domain.Leverage) domain.ReturnSeries {
	path := make(domain.ReturnSeries, len(returns))
	switch lev.Mode {
	case domain.LeverageContinuous:
		acc := start
		for i, r := range returns {
			acc *= math.Pow(1+r, lev.Factor)
			path[i] = acc
		}
	case domain.LeveragePointwise:
		// A leveraged loss past -100% wipes the position; the factor is
		// floored at zero rather than going negative.
		acc := start
		for i, r := range returns {
			acc *= math.Max(1+r*lev.Factor, 0)
			path[i] = acc
		}
	case domain.LeverageInitial:
		// The borrowed portion start*(factor-1) compounds inside acc but
		// is owed back, so each emitted value nets it out.
		acc := start * lev.Factor
		owed := start * (lev.Factor - 1)
		for i, r := range returns {
			acc *= 1 + r
			path[i] = acc - owed
		}
	default:
		acc := start
		for i, r := range returns {
			acc *= 1 + r
			path[i] = acc
		}
	}
	return path
}
