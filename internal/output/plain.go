package output

import (
	"bytes"
	"strconv"

	"github.com/retsim/genreturns/internal/domain"
)

// PlainFormatter emits one value per line in generation order, using the
// shortest decimal representation that round-trips. This is the default,
// pipe-friendly output.
type PlainFormatter struct{}

func (PlainFormatter) Name() string { return "plain" }

func (PlainFormatter) Format(result *domain.RunResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, v := range result.Series {
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
