package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NotAShelf/ssa/pkg/adapters"
	"github.com/NotAShelf/ssa/pkg/models/domain"
)

const toolName = "ssa"

// JSONReporter renders the machine-readable report document, meant for CI
// consumption. No colorization, no decoration.
type JSONReporter struct {
	writer  io.Writer
	version string
}

// NewJSONReporter creates a JSON reporter writing to writer. The version is
// stamped into the report envelope.
func NewJSONReporter(writer io.Writer, version string) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer, version: version}
}

func (r *JSONReporter) Handle(analysis *domain.Analysis) error {
	report := adapters.MapAnalysisDomainToApi(*analysis)
	report.Tool = toolName
	report.Version = r.version
	report.GeneratedAt = time.Now().UTC()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	data = append(data, '\n')

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return nil
}
