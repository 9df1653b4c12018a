package domain

// timeSpecKind discriminates the TimeSpec variant.
type timeSpecKind int

const (
	timeUnspecified timeSpecKind = iota
	timeTotal
	timeInterval
)

// TimeSpec holds the one supplied time parameter of the sampling grid:
// either the total span of the series or the spacing between points. The
// zero value means neither was supplied; the constructors make the
// both-supplied state unrepresentable.
type TimeSpec struct {
	kind    timeSpecKind
	seconds float64
}

// TotalSeconds specifies the span of the whole series.
func TotalSeconds(sec float64) TimeSpec {
	return TimeSpec{kind: timeTotal, seconds: sec}
}

// IntervalSeconds specifies the spacing between points.
func IntervalSeconds(sec float64) TimeSpec {
	return TimeSpec{kind: timeInterval, seconds: sec}
}

// IsZero reports whether no time parameter was supplied.
func (ts TimeSpec) IsZero() bool { return ts.kind == timeUnspecified }

// Total returns the total duration in seconds and whether that is the
// supplied variant.
func (ts TimeSpec) Total() (float64, bool) {
	return ts.seconds, ts.kind == timeTotal
}

// Interval returns the interval duration in seconds and whether that is
// the supplied variant.
func (ts TimeSpec) Interval() (float64, bool) {
	return ts.seconds, ts.kind == timeInterval
}

// LeverageMode selects how leverage is applied while compounding.
type LeverageMode int

const (
	// LeverageNone compounds the raw returns.
	LeverageNone LeverageMode = iota
	// LeverageContinuous holds leverage constant by releveraging
	// continuously between points.
	LeverageContinuous
	// LeveragePointwise holds leverage constant by releveraging
	// discretely at every point.
	LeveragePointwise
	// LeverageInitial applies leverage at t=0 and never releverages.
	LeverageInitial
)

// Leverage is the leverage applied in accumulated mode. The modes are
// mutually exclusive; the zero value means no leverage.
type Leverage struct {
	Mode   LeverageMode
	Factor float64
}

// ContinuousLeverage builds a continuously releveraged spec.
func ContinuousLeverage(factor float64) Leverage {
	return Leverage{Mode: LeverageContinuous, Factor: factor}
}

// PointwiseLeverage builds a discretely releveraged spec.
func PointwiseLeverage(factor float64) Leverage {
	return Leverage{Mode: LeveragePointwise, Factor: factor}
}

// InitialLeverage builds a never-releveraged spec.
func InitialLeverage(factor float64) Leverage {
	return Leverage{Mode: LeverageInitial, Factor: factor}
}

// GenerationRequest describes one synthetic return series. It is built
// once from external input (flags or a scenario file), validated, and
// never mutated afterwards.
type GenerationRequest struct {
	// NumPoints is how many returns to generate; must be >= 1.
	NumPoints int
	// Time is the one supplied time parameter; the other is derived.
	Time TimeSpec
	// Accumulate selects the compounded value path instead of raw returns.
	Accumulate bool
	// StartValue is the base value at t=0 in accumulated mode.
	StartValue float64
	// YearlyMean is the target annualized geometric mean return as a
	// growth factor (1.10 = +10%/year). Must be strictly positive.
	YearlyMean float64
	// YearlyStddev is the target annualized volatility; must be >= 0.
	YearlyStddev float64
	// Seed makes the draw sequence reproducible when non-nil.
	Seed *uint64
	// Leverage applies only in accumulated mode.
	Leverage Leverage
}

// Validate checks every configuration constraint the request can violate
// on its own. Grid arithmetic re-checks the time parameter against the
// point count.
func (r *GenerationRequest) Validate() error {
	if r.NumPoints < 1 {
		return NewConfigError("num-points must be at least 1, got %d", r.NumPoints)
	}
	if r.Time.IsZero() {
		return NewConfigError("one of total-seconds or interval-seconds is required")
	}
	if total, ok := r.Time.Total(); ok && total <= 0 {
		return NewConfigError("total-seconds must be positive, got %g", total)
	}
	if interval, ok := r.Time.Interval(); ok && interval <= 0 {
		return NewConfigError("interval-seconds must be positive, got %g", interval)
	}
	if r.YearlyMean <= 0 {
		return NewConfigError("yearly-mean must be a positive growth factor, got %g", r.YearlyMean)
	}
	if r.YearlyStddev < 0 {
		return NewConfigError("yearly-stddev cannot be negative, got %g", r.YearlyStddev)
	}
	return nil
}

// ResolvedGrid is the canonical sampling grid handed to the sampler.
type ResolvedGrid struct {
	IntervalSeconds float64 `json:"interval_seconds"`
	NumPoints       int     `json:"num_points"`
}

// TotalSeconds recovers the span of the whole series.
func (g ResolvedGrid) TotalSeconds() float64 {
	return g.IntervalSeconds * float64(g.NumPoints)
}

// PerIntervalParams are the log-return distribution parameters scaled
// from annual to per-interval units.
type PerIntervalParams struct {
	MeanLog   float64 `json:"mean_log_return"`
	StddevLog float64 `json:"stddev_log_return"`
}

// ReturnSeries is the ordered generation output: raw interval returns in
// independent mode, cumulative values in accumulated mode.
type ReturnSeries []float64

// RunResult bundles a generated series with the inputs that produced it,
// for output formatting.
type RunResult struct {
	Grid        ResolvedGrid      `json:"grid"`
	Params      PerIntervalParams `json:"params"`
	Accumulated bool              `json:"accumulated"`
	Seed        *uint64           `json:"seed,omitempty"`
	Series      ReturnSeries      `json:"series"`
}
