package output

import (
	"os"
	"sort"
	"strings"

	"github.com/retsim/genreturns/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(result *domain.RunResult) ([]byte, error)
	// Name returns a short identifier for flag values and diagnostics.
	Name() string
}

// binaryFormatter marks formats that cannot sensibly go to a terminal.
type binaryFormatter interface {
	Binary() bool
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	PlainFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	ChartFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "plain",
	"lines":       "plain",
	"png":         "chart",
	"json-pretty": "json",
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted runs a formatter and writes its output to path, or to
// stdout when path is empty. Binary formats always need a file.
func WriteFormatted(f Formatter, result *domain.RunResult, path string) error {
	if path == "" {
		if bf, ok := f.(binaryFormatter); ok && bf.Binary() {
			return domain.NewConfigError("%s output is binary; use --output to write it to a file", f.Name())
		}
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
