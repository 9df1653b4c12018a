package timeutil

import "fmt"

// SecondsPerYear is the fixed year length used for annual-to-interval
// scaling: 365.25 days of 86400 seconds. Tests pin this value; changing
// it changes the output contract.
const SecondsPerYear = 31556952.0

// SecondsPerDay is one day in seconds.
const SecondsPerDay = 86400.0

// IntervalsPerYear returns how many sampling intervals of the given
// length fit in one year.
func IntervalsPerYear(intervalSeconds float64) float64 {
	return SecondsPerYear / intervalSeconds
}

// FormatSeconds renders a duration in the largest sensible unit. Used for
// diagnostics and chart labels, never for the value stream itself.
func FormatSeconds(sec float64) string {
	switch {
	case sec >= SecondsPerYear:
		return fmt.Sprintf("%.2fy", sec/SecondsPerYear)
	case sec >= SecondsPerDay:
		return fmt.Sprintf("%.2fd", sec/SecondsPerDay)
	case sec >= 3600:
		return fmt.Sprintf("%.2fh", sec/3600)
	case sec >= 60:
		return fmt.Sprintf("%.2fm", sec/60)
	default:
		return fmt.Sprintf("%gs", sec)
	}
}
