package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/retsim/genreturns/internal/domain"
)

// SeriesStatistics is a fixed-precision summary of a generated series.
type SeriesStatistics struct {
	Count  int             `json:"count"`
	Mean   decimal.Decimal `json:"mean"`
	StdDev decimal.Decimal `json:"std_dev"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Final  decimal.Decimal `json:"final"`
}

// Summarize computes summary statistics over a series. Moments are
// accumulated in float64 and converted to decimal for display. The
// sample standard deviation uses the n-1 denominator.
func Summarize(series domain.ReturnSeries) SeriesStatistics {
	if len(series) == 0 {
		return SeriesStatistics{}
	}
	lo, hi := series[0], series[0]
	var sum float64
	for _, v := range series {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	mean := sum / float64(len(series))
	var ss float64
	for _, v := range series {
		d := v - mean
		ss += d * d
	}
	std := 0.0
	if len(series) > 1 {
		std = math.Sqrt(ss / float64(len(series)-1))
	}
	return SeriesStatistics{
		Count:  len(series),
		Mean:   fromFloat(mean),
		StdDev: fromFloat(std),
		Min:    fromFloat(lo),
		Max:    fromFloat(hi),
		Final:  fromFloat(series[len(series)-1]),
	}
}

// fromFloat converts for display; NaN and infinities (which the sampler
// deliberately lets through) collapse to zero here since decimal cannot
// represent them. The raw series still carries them.
func fromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}
	}
	return decimal.NewFromFloat(v)
}
