package output

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/retsim/genreturns/internal/domain"
)

// CSVFormatter emits one row per point with its index, grid offset in
// seconds, and value fixed to ten decimal places.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"index", "seconds", "value"}); err != nil {
		return nil, err
	}
	for i, v := range result.Series {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(result.Grid.IntervalSeconds*float64(i+1), 'f', -1, 64),
			fixedValue(v),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// fixedValue renders with fixed precision; NaN and infinities cannot be
// represented as decimal and pass through as-is.
func fixedValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(10)
}
