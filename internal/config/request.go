package config

import (
	"github.com/retsim/genreturns/internal/domain"
)

// Options carries the raw CLI flag values before they are shaped into a
// GenerationRequest. Presence of optional flags is tracked explicitly
// because zero is a meaningful value for several of them.
type Options struct {
	NumPoints       int
	TotalSeconds    float64
	TotalSet        bool
	IntervalSeconds float64
	IntervalSet     bool
	Accumulate      bool
	StartValue      float64
	YearlyMean      float64
	YearlyStddev    float64
	Seed            uint64
	SeedSet         bool

	ContinuousLeverage float64
	ContinuousSet      bool
	PointwiseLeverage  float64
	PointwiseSet       bool
	InitialLeverage    float64
	InitialSet         bool
}

// BuildRequest validates the flag combination and constructs an immutable
// request. Mutual exclusivity of the time parameters and of the leverage
// modes is enforced here, before any derived state exists.
func BuildRequest(opts Options) (*domain.GenerationRequest, error) {
	if opts.TotalSet && opts.IntervalSet {
		return nil, domain.NewConfigError("total-seconds and interval-seconds are mutually exclusive")
	}
	if !opts.TotalSet && !opts.IntervalSet {
		return nil, domain.NewConfigError("one of total-seconds or interval-seconds is required")
	}
	var ts domain.TimeSpec
	if opts.TotalSet {
		ts = domain.TotalSeconds(opts.TotalSeconds)
	} else {
		ts = domain.IntervalSeconds(opts.IntervalSeconds)
	}

	lev, err := buildLeverage(opts)
	if err != nil {
		return nil, err
	}

	var seed *uint64
	if opts.SeedSet {
		s := opts.Seed
		seed = &s
	}

	req := &domain.GenerationRequest{
		NumPoints:    opts.NumPoints,
		Time:         ts,
		Accumulate:   opts.Accumulate,
		StartValue:   opts.StartValue,
		YearlyMean:   opts.YearlyMean,
		YearlyStddev: opts.YearlyStddev,
		Seed:         seed,
		Leverage:     lev,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func buildLeverage(opts Options) (domain.Leverage, error) {
	set := 0
	for _, b := range []bool{opts.ContinuousSet, opts.PointwiseSet, opts.InitialSet} {
		if b {
			set++
		}
	}
	if set > 1 {
		return domain.Leverage{}, domain.NewConfigError("continuous-leverage, pointwise-leverage and initial-leverage are mutually exclusive")
	}
	switch {
	case opts.ContinuousSet:
		return domain.ContinuousLeverage(opts.ContinuousLeverage), nil
	case opts.PointwiseSet:
		return domain.PointwiseLeverage(opts.PointwiseLeverage), nil
	case opts.InitialSet:
		return domain.InitialLeverage(opts.InitialLeverage), nil
	}
	return domain.Leverage{}, nil
}
