package output

import (
	"encoding/json"

	"github.com/retsim/genreturns/internal/domain"
)

// JSONFormatter serializes the run result (grid, scaled parameters, and
// series) as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.RunResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
