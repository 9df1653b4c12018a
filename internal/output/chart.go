package output

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/retsim/genreturns/internal/domain"
	"github.com/retsim/genreturns/pkg/timeutil"
)

// ChartFormatter renders the series as a PNG line chart with grid offsets
// on the x axis.
type ChartFormatter struct{}

func (ChartFormatter) Name() string { return "chart" }

// Binary marks the output as unsuitable for stdout.
func (ChartFormatter) Binary() bool { return true }

func (ChartFormatter) Format(result *domain.RunResult) ([]byte, error) {
	if len(result.Series) < 2 {
		return nil, fmt.Errorf("chart output needs at least two points, got %d", len(result.Series))
	}

	labels := make([]string, len(result.Series))
	for i := range labels {
		labels[i] = timeutil.FormatSeconds(result.Grid.IntervalSeconds * float64(i+1))
	}
	title := "interval returns"
	if result.Accumulated {
		title = "accumulated value"
	}

	painter, err := charts.LineRender(
		[][]float64{result.Series},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: 10,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
