package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/retsim/genreturns/internal/domain"
)

// ScenarioFile is the YAML document shape: a list of named, fully
// specified generation requests.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one named generation request in file form. Optional fields
// are pointers so "absent" and "zero" stay distinguishable, mirroring
// flag presence on the command line.
type Scenario struct {
	Name               string   `yaml:"name"`
	NumPoints          int      `yaml:"num_points"`
	TotalSeconds       *float64 `yaml:"total_seconds,omitempty"`
	IntervalSeconds    *float64 `yaml:"interval_seconds,omitempty"`
	Accumulate         bool     `yaml:"accumulate,omitempty"`
	StartValue         *float64 `yaml:"start_value,omitempty"`
	YearlyMean         *float64 `yaml:"yearly_mean,omitempty"`
	YearlyStddev       *float64 `yaml:"yearly_stddev,omitempty"`
	Seed               *uint64  `yaml:"seed,omitempty"`
	ContinuousLeverage *float64 `yaml:"continuous_leverage,omitempty"`
	PointwiseLeverage  *float64 `yaml:"pointwise_leverage,omitempty"`
	InitialLeverage    *float64 `yaml:"initial_leverage,omitempty"`
}

// LoadScenarioFile reads and structurally validates a scenario file.
// Request-level constraints are checked when a scenario is selected.
func LoadScenarioFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(sf.Scenarios) == 0 {
		return nil, domain.NewConfigError("no scenarios defined in %s", filename)
	}
	seen := make(map[string]bool, len(sf.Scenarios))
	for i := range sf.Scenarios {
		name := sf.Scenarios[i].Name
		if name == "" {
			return nil, domain.NewConfigError("scenario %d: name is required", i)
		}
		if seen[name] {
			return nil, domain.NewConfigError("duplicate scenario name %q", name)
		}
		seen[name] = true
	}
	return &sf, nil
}

// Find returns the named scenario.
func (sf *ScenarioFile) Find(name string) (*Scenario, error) {
	for i := range sf.Scenarios {
		if sf.Scenarios[i].Name == name {
			return &sf.Scenarios[i], nil
		}
	}
	return nil, domain.NewConfigError("scenario %q not found", name)
}

// Request shapes the scenario into a validated GenerationRequest,
// applying the same defaults the CLI flags carry.
func (s *Scenario) Request() (*domain.GenerationRequest, error) {
	opts := Options{
		NumPoints:    s.NumPoints,
		Accumulate:   s.Accumulate,
		StartValue:   1.0,
		YearlyMean:   1.0,
		YearlyStddev: 0.0,
	}
	if s.TotalSeconds != nil {
		opts.TotalSeconds, opts.TotalSet = *s.TotalSeconds, true
	}
	if s.IntervalSeconds != nil {
		opts.IntervalSeconds, opts.IntervalSet = *s.IntervalSeconds, true
	}
	if s.StartValue != nil {
		opts.StartValue = *s.StartValue
	}
	if s.YearlyMean != nil {
		opts.YearlyMean = *s.YearlyMean
	}
	if s.YearlyStddev != nil {
		opts.YearlyStddev = *s.YearlyStddev
	}
	if s.Seed != nil {
		opts.Seed, opts.SeedSet = *s.Seed, true
	}
	if s.ContinuousLeverage != nil {
		opts.ContinuousLeverage, opts.ContinuousSet = *s.ContinuousLeverage, true
	}
	if s.PointwiseLeverage != nil {
		opts.PointwiseLeverage, opts.PointwiseSet = *s.PointwiseLeverage, true
	}
	if s.InitialLeverage != nil {
		opts.InitialLeverage, opts.InitialSet = *s.InitialLeverage, true
	}
	return BuildRequest(opts)
}

// CreateExampleScenarios returns a starter scenario set covering the
// common modes; callers can marshal it to YAML as a template.
func CreateExampleScenarios() *ScenarioFile {
	daily := 86400.0
	halfYear := 15552000.0
	mean := 1.10
	stddev := 0.25
	seed := uint64(42)
	lev := 2.0

	return &ScenarioFile{
		Scenarios: []Scenario{
			{
				Name:         "daily-returns-half-year",
				NumPoints:    180,
				TotalSeconds: &halfYear,
				YearlyMean:   &mean,
				YearlyStddev: &stddev,
				Seed:         &seed,
			},
			{
				Name:            "accumulated-daily-path",
				NumPoints:       365,
				IntervalSeconds: &daily,
				Accumulate:      true,
				YearlyMean:      &mean,
				YearlyStddev:    &stddev,
				Seed:            &seed,
			},
			{
				Name:               "leveraged-daily-path",
				NumPoints:          365,
				IntervalSeconds:    &daily,
				Accumulate:         true,
				YearlyMean:         &mean,
				YearlyStddev:       &stddev,
				Seed:               &seed,
				ContinuousLeverage: &lev,
			},
		},
	}
}
